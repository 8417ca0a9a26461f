//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	panel  Panel
	kbd    Keyboard
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// LCD: ILI9488 on SPI1, 320x320 RGB565.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var panel Panel
	if lcd, err := initILI9488(); err == nil {
		panel = newLCDPanel(lcd, lcdWidth, lcdHeight)
	} else {
		logger.WriteLineString("hal: display: " + err.Error())
		panel = newLCDPanel(nil, lcdWidth, lcdHeight)
	}

	var kbd Keyboard
	if kb, err := newI2CKeyboard(); err == nil {
		kbd = kb
	} else {
		logger.WriteLineString("hal: keyboard: " + err.Error())
		kbd = &stubKeyboard{}
	}

	return &tinyGoHAL{
		logger: logger,
		panel:  panel,
		kbd:    kbd,
	}
}

func (h *tinyGoHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHAL) Panel() Panel       { return h.panel }
func (h *tinyGoHAL) Keyboard() Keyboard { return h.kbd }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type stubKeyboard struct{}

func (k *stubKeyboard) Events() <-chan KeyEvent { return nil }
