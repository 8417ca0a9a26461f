//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"time"
)

const (
	kbdAddr uint16 = 0x1F
	kbdCmd         = 0x09
)

const (
	kbdKeyEsc   byte = 0xB1
	kbdKeyRight byte = 0xB7
)

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
	ch    chan KeyEvent
}

func newI2CKeyboard() (*i2cKeyboard, error) {
	// Prefer I2C1 (PicoCalc wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}

			k := &i2cKeyboard{i2c: bus, write: [1]byte{kbdCmd}, ch: make(chan KeyEvent, 16)}

			// The keyboard MCU can be slow to respond on boot.
			for i := 0; i < 50; i++ {
				if err := k.i2c.Tx(kbdAddr, k.write[:], k.read[:]); err == nil {
					go k.run()
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}
	return nil, errors.New("I2C unavailable")
}

func (k *i2cKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *i2cKeyboard) run() {
	for {
		if ev, ok := k.readEvent(); ok {
			select {
			case k.ch <- ev:
			default:
			}
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.i2c.Tx(kbdAddr, k.write[:], k.read[:]); err != nil {
		return KeyEvent{}, false
	}
	state, key := k.read[0], k.read[1]
	if state == 0 && key == 0 {
		return KeyEvent{}, false
	}

	var press bool
	switch state {
	case 0x01:
		press = true
	case 0x03:
		press = false
	default:
		return KeyEvent{}, false
	}

	switch key {
	case kbdKeyEsc:
		return KeyEvent{Code: KeyEscape, Press: press}, true
	case kbdKeyRight:
		return KeyEvent{Code: KeyRight, Press: press}, true
	case ' ':
		return KeyEvent{Code: KeySpace, Press: press}, true
	}
	if !press || key == 0 || key >= 0x80 {
		return KeyEvent{}, false
	}
	return KeyEvent{Press: true, Rune: rune(key)}, true
}
