package hud

import (
	"testing"

	"faceplate/internal/raster"
)

func inked(f *raster.Frame, c raster.Color) (n, maxY int) {
	w, h := f.Dimensions()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if f.At(x, y) == c {
				n++
				maxY = y
			}
		}
	}
	return n, maxY
}

func TestDrawWritesText(t *testing.T) {
	f := raster.NewFrame(120, 60)
	Draw(f, raster.White, "tick 42", "happy")
	n, _ := inked(f, raster.White)
	if n == 0 {
		t.Fatalf("Draw() left the frame untouched")
	}

	one := raster.NewFrame(120, 60)
	Draw(one, raster.White, "tick 42")
	_, maxOne := inked(one, raster.White)
	_, maxTwo := inked(f, raster.White)
	if maxTwo <= maxOne {
		t.Fatalf("second line not below the first: %d <= %d", maxTwo, maxOne)
	}
}

func TestDrawNothing(t *testing.T) {
	f := raster.NewFrame(40, 40)
	Draw(f, raster.White)
	if n, _ := inked(f, raster.White); n != 0 {
		t.Fatalf("Draw() with no lines inked %d pixels", n)
	}
}

func TestDrawClipsTinyFrame(t *testing.T) {
	f := raster.NewFrame(4, 4)
	Draw(f, raster.White, "overflowing text", "and more", "and more")
}

func TestColumns(t *testing.T) {
	wide, narrow := Columns(240), Columns(120)
	if wide <= narrow {
		t.Fatalf("Columns(240) = %d, Columns(120) = %d, want wider to fit more", wide, narrow)
	}
	if got := Columns(0); got != 1 {
		t.Fatalf("Columns(0) = %d, want 1", got)
	}
}
