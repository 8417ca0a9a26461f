//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// HostConfig describes the simulated panel on a desktop host.
type HostConfig struct {
	Width  int
	Height int
	Scale  int
	Color  ColorFunc
	Title  string
	Out    io.Writer
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Width <= 0 {
		c.Width = 240
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Color == nil {
		c.Color = RGB888From565
	}
	if c.Out == nil {
		c.Out = os.Stderr
	}
	return c
}

type hostHAL struct {
	logger *hostLogger
	panel  *hostPanel
	kbd    *hostKeyboard
}

func newHost(cfg HostConfig) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		logger: &hostLogger{w: cfg.Out},
		panel:  newHostPanel(cfg.Width, cfg.Height, cfg.Color),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) Panel() Panel       { return h.panel }
func (h *hostHAL) Keyboard() Keyboard { return h.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}
