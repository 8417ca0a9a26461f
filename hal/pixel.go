package hal

import "faceplate/internal/raster"

// RGB888From565 scales each RGB565 channel to the full 0..255 range.
func RGB888From565(c raster.Color) (r, g, b uint8) {
	return c.RGB888()
}

// RGB888Shift widens each channel by shifting, leaving the low bits zero. Pure white
// comes out as (248, 252, 248). This matches panels and simulators that do no
// rescaling of their own.
func RGB888Shift(c raster.Color) (r, g, b uint8) {
	p := uint16(c)
	r = uint8((p>>11)&0x1F) << 3
	g = uint8((p>>5)&0x3F) << 2
	b = uint8(p&0x1F) << 3
	return r, g, b
}

// ColorFuncByName resolves the -color flag.
func ColorFuncByName(name string) (ColorFunc, bool) {
	switch name {
	case "", "scale":
		return RGB888From565, true
	case "shift":
		return RGB888Shift, true
	}
	return nil, false
}
