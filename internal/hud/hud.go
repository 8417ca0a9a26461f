// Package hud draws debug text over a frame.
package hud

import (
	"image/color"

	"faceplate/internal/raster"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var font = &proggy.TinySZ8pt7b

// Margin is the inset of the first line from the top-left corner.
const Margin = 2

// Draw writes lines top-left in c, one font line apart.
func Draw(f *raster.Frame, c raster.Color, lines ...string) {
	d := frameDisplay{f: f}
	r, g, b := c.RGB888()
	fg := color.RGBA{R: r, G: g, B: b, A: 0xFF}

	adv := int16(font.GetYAdvance())
	y := int16(Margin) + adv
	_, h := f.Dimensions()
	for _, line := range lines {
		if int(y) > h {
			return
		}
		tinyfont.WriteLine(d, font, Margin, y, line, fg)
		y += adv
	}
}

// frameDisplay lets tinyfont draw into a raster.Frame.
type frameDisplay struct {
	f *raster.Frame
}

var _ drivers.Displayer = frameDisplay{}

func (d frameDisplay) Size() (x, y int16) {
	w, h := d.f.Dimensions()
	return int16(w), int16(h)
}

func (d frameDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.f.DrawPoints(func(yield func(raster.Pixel) bool) {
		yield(raster.Pixel{
			Point: raster.Point{X: int(x), Y: int(y)},
			Color: raster.RGB(c.R, c.G, c.B),
		})
	})
}

func (d frameDisplay) Display() error { return nil }

// Columns reports how many glyphs of the HUD font fit across width pixels.
func Columns(width int) int {
	_, adv := tinyfont.LineWidth(font, "0")
	if adv == 0 {
		return 1
	}
	n := width / int(adv)
	if n < 1 {
		n = 1
	}
	return n
}
