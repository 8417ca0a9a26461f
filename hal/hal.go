package hal

import (
	"errors"
	"fmt"

	"faceplate/internal/raster"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrQuit is returned by a step function to end the run cleanly.
	ErrQuit = errors.New("quit")

	// ErrFrameSize means a frame does not match the panel it was flushed to.
	ErrFrameSize = errors.New("frame size does not match panel")
)

// Panel presents whole frames on a surface.
//
// Flush must treat the frame as read-only and must not keep it after returning.
type Panel interface {
	Size() (w, h int)
	Flush(f *raster.Frame) error
}

// ColorFunc splits a packed color into 8-bit channels for a concrete surface.
type ColorFunc func(raster.Color) (r, g, b uint8)

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyRight
	KeyEscape
	KeySpace
)

// KeyEvent is a keyboard event. Text input arrives with Code == KeyUnknown and Rune set.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// HAL is the face's only contact point with the outside world.
type HAL interface {
	Logger() Logger
	Panel() Panel
	Keyboard() Keyboard
}

func checkFrame(p Panel, f *raster.Frame) error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrFrameSize)
	}
	pw, ph := p.Size()
	fw, fh := f.Dimensions()
	if pw != fw || ph != fh {
		return fmt.Errorf("%w: frame %dx%d, panel %dx%d", ErrFrameSize, fw, fh, pw, ph)
	}
	return nil
}
