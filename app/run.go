package app

import (
	"errors"
	"log/slog"
	"time"

	"faceplate/hal"
)

// FramePeriod is the loop period on boards with no vsync to pace against.
const FramePeriod = 16 * time.Millisecond

// Run calls step every period until it returns an error. ErrQuit ends the loop
// with a nil error.
func Run(step func() error, period time.Duration) error {
	for {
		start := time.Now()
		if err := step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		if d := period - time.Since(start); d > 0 {
			time.Sleep(d)
		}
	}
}

// NewLogger returns a slog logger writing through the HAL's line sink.
func NewLogger(h hal.HAL, level slog.Leveler) *slog.Logger {
	return slog.New(hal.NewLogHandler(h.Logger(), level))
}
