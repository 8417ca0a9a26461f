//go:build !tinygo

package hal

import (
	"sync"

	"faceplate/internal/raster"
)

// hostPanel converts each flushed frame into a private RGBA buffer that the window
// reads on its own schedule.
type hostPanel struct {
	mu     sync.Mutex
	width  int
	height int
	conv   ColorFunc
	rgba   []byte
	frames uint64
}

func newHostPanel(width, height int, conv ColorFunc) *hostPanel {
	return &hostPanel{
		width:  width,
		height: height,
		conv:   conv,
		rgba:   make([]byte, width*height*4),
	}
}

func (p *hostPanel) Size() (w, h int) { return p.width, p.height }

func (p *hostPanel) Flush(f *raster.Frame) error {
	if err := checkFrame(p, f); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	raster.FillRGBA(p.rgba, f, p.conv)
	p.frames++
	return nil
}

// snapshotRGBA copies the last flushed frame into dst and returns the flush count.
func (p *hostPanel) snapshotRGBA(dst []byte) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(dst, p.rgba)
	return p.frames
}
