package raster

import (
	"image"
	"iter"
)

// Frame is a row-major RGB565 pixel buffer addressed by y*w + x.
type Frame struct {
	w   int
	h   int
	pix []Color
}

// NewFrame allocates a frame. Non-positive sizes yield an empty frame.
func NewFrame(w, h int) *Frame {
	if w <= 0 || h <= 0 {
		return &Frame{}
	}
	return &Frame{w: w, h: h, pix: make([]Color, w*h)}
}

// Dimensions returns the frame's width and height in pixels.
func (f *Frame) Dimensions() (w, h int) { return f.w, f.h }

// Pix exposes the backing slice. Callers must not grow it.
func (f *Frame) Pix() []Color { return f.pix }

// At returns the color at (x, y), or Black when out of bounds.
func (f *Frame) At(x, y int) Color {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return Black
	}
	return f.pix[y*f.w+x]
}

// Clear fills every pixel with c.
func (f *Frame) Clear(c Color) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// DrawPoints writes each pixel of pts, dropping those outside the frame.
func (f *Frame) DrawPoints(pts iter.Seq[Pixel]) {
	if pts == nil {
		return
	}
	for p := range pts {
		if p.X < 0 || p.Y < 0 || p.X >= f.w || p.Y >= f.h {
			continue
		}
		f.pix[p.Y*f.w+p.X] = p.Color
	}
}

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	out := &Frame{w: f.w, h: f.h}
	if f.pix != nil {
		out.pix = make([]Color, len(f.pix))
		copy(out.pix, f.pix)
	}
	return out
}

// AppendLittleEndian appends the frame as little-endian RGB565 bytes, the layout the
// framebuffers and panel blits use.
func (f *Frame) AppendLittleEndian(dst []byte) []byte {
	for _, c := range f.pix {
		dst = append(dst, byte(c), byte(c>>8))
	}
	return dst
}

// Image converts the frame to RGBA using conv, or Color.RGB888 when conv is nil.
func (f *Frame) Image(conv func(Color) (r, g, b uint8)) *image.RGBA {
	if conv == nil {
		conv = Color.RGB888
	}
	img := image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	FillRGBA(img.Pix, f, conv)
	return img
}

// FillRGBA writes the frame into an RGBA byte slice of at least w*h*4 bytes.
func FillRGBA(dst []byte, f *Frame, conv func(Color) (r, g, b uint8)) {
	for i, c := range f.pix {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		r, g, b := conv(c)
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

// Points adapts a slice to the point-set form DrawPoints consumes.
func Points(px []Pixel) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for _, p := range px {
			if !yield(p) {
				return
			}
		}
	}
}
