package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"faceplate/hal"
	"faceplate/internal/hud"
	"faceplate/internal/raster"
)

// Fatal reports err on the logger and the panel, then blocks forever.
func Fatal(h hal.HAL, err error) {
	_ = paintFatal(h, err)
	select {}
}

func paintFatal(h hal.HAL, err error) error {
	msg := fmt.Sprintf("%v", err)
	if l := h.Logger(); l != nil {
		l.WriteLineString("faceplate: fatal: " + msg)
	}

	p := h.Panel()
	if p == nil {
		return hal.ErrNotImplemented
	}
	w, ht := p.Size()
	f := raster.NewFrame(w, ht)
	f.Clear(raster.White)

	cols := hud.Columns(w - 2*hud.Margin)
	lines := []string{"faceplate fatal:"}
	for _, line := range strings.Split(msg, "\n") {
		for line != "" {
			var chunk string
			chunk, line = takeRunes(line, cols)
			lines = append(lines, chunk)
			line = strings.TrimLeft(line, " ")
		}
	}
	hud.Draw(f, raster.Black, lines...)
	return p.Flush(f)
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
