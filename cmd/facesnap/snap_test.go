package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"faceplate/internal/anim"
	"faceplate/internal/config"
	"faceplate/internal/raster"
)

func writeFaces(t *testing.T) string {
	t.Helper()
	var lines []string
	for n, mood := range []string{"calm", "alert"} {
		var pts []string
		for i, l := range anim.FaceLabels {
			pts = append(pts, fmt.Sprintf(`%q:{"x":%d,"y":%d}`, l, 20+10*i+n*30, 15+8*i))
		}
		lines = append(lines, fmt.Sprintf(`{"level":"info","message":{"emo":%q,"points":{%s}}}`, mood, strings.Join(pts, ",")))
	}
	path := filepath.Join(t.TempDir(), "faces.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestCaptureDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Faces = writeFaces(t)
	cfg.Width, cfg.Height = 64, 64
	cfg.Seed = 7
	log := slog.New(slog.DiscardHandler)

	a, err := capture(cfg, 20, 5, log)
	if err != nil {
		t.Fatalf("capture() error = %v", err)
	}
	b, err := capture(cfg, 20, 5, log)
	if err != nil {
		t.Fatalf("capture() error = %v", err)
	}
	if len(a) != 4 {
		t.Fatalf("capture() kept %d frames, want 4", len(a))
	}
	for i := range a {
		if string(a[i].AppendLittleEndian(nil)) != string(b[i].AppendLittleEndian(nil)) {
			t.Fatalf("frame %d differs between runs with the same seed", i)
		}
	}
}

func TestWritePNGs(t *testing.T) {
	f := raster.NewFrame(4, 3)
	f.Clear(raster.Purple)
	dir := t.TempDir()

	paths, err := writePNGs(dir, []*raster.Frame{f, f}, 3, nil)
	if err != nil {
		t.Fatalf("writePNGs() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("writePNGs() = %d paths, want 2", len(paths))
	}

	fh, err := os.Open(paths[1])
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer fh.Close()
	img, err := png.Decode(fh)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Fatalf("png size = %dx%d, want 12x9", b.Dx(), b.Dy())
	}
	r, g, b, _ := img.At(11, 8).RGBA()
	if !near(r>>8, 131) || !near(g>>8, 0) || !near(b>>8, 131) {
		t.Fatalf("pixel = (%d,%d,%d), want (131,0,131)", r>>8, g>>8, b>>8)
	}
}

func near(got, want uint32) bool {
	return got+1 >= want && got <= want+1
}
