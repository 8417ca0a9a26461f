package raster

// Color is a packed RGB565 pixel: rrrrrggggggbbbbb.
type Color uint16

const (
	Black  Color = 0x0000
	Blue   Color = 0x001F
	Green  Color = 0x07E0
	Purple Color = 0x8010 // CSS purple, #800080
	White  Color = 0xFFFF
)

// RGB packs 8-bit channels, dropping the low bits.
func RGB(r, g, b uint8) Color {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return Color((rr << 11) | (gg << 5) | bb)
}

// RGB888 expands the color to 8-bit channels scaled over the full 0..255 range.
func (c Color) RGB888() (r, g, b uint8) {
	p := uint16(c)
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((uint32(rr) * 255) / 31)
	g = uint8((uint32(gg) * 255) / 63)
	b = uint8((uint32(bb) * 255) / 31)
	return r, g, b
}
