package shape

import (
	"testing"

	"faceplate/internal/raster"
)

func count(f *raster.Frame, c raster.Color) int {
	n := 0
	for _, p := range f.Pix() {
		if p == c {
			n++
		}
	}
	return n
}

func TestTriangleWindingIndependent(t *testing.T) {
	a := raster.Point{X: 1, Y: 1}
	b := raster.Point{X: 8, Y: 1}
	c := raster.Point{X: 1, Y: 8}

	cw := raster.NewFrame(10, 10)
	Triangle(cw, a, b, c, raster.Green)
	ccw := raster.NewFrame(10, 10)
	Triangle(ccw, a, c, b, raster.Green)

	for i := range cw.Pix() {
		if cw.Pix()[i] != ccw.Pix()[i] {
			t.Fatalf("pix[%d] differs between windings", i)
		}
	}
	for _, p := range []raster.Point{a, b, c, {X: 3, Y: 3}} {
		if cw.At(p.X, p.Y) != raster.Green {
			t.Fatalf("At(%d,%d) not covered", p.X, p.Y)
		}
	}
	if cw.At(8, 8) != raster.Black {
		t.Fatalf("At(8,8) covered, want outside")
	}
}

func TestTriangleDegenerate(t *testing.T) {
	f := raster.NewFrame(10, 10)
	Triangle(f, raster.Point{X: 1, Y: 1}, raster.Point{X: 5, Y: 5}, raster.Point{X: 9, Y: 9}, raster.Green)
	if n := count(f, raster.Green); n != 0 {
		t.Fatalf("degenerate triangle drew %d pixels, want 0", n)
	}
}

func TestTriangleClipsHugeVertices(t *testing.T) {
	f := raster.NewFrame(8, 8)
	Triangle(f,
		raster.Point{X: -1_000_000, Y: -1_000_000},
		raster.Point{X: 1_000_000, Y: -1_000_000},
		raster.Point{X: 0, Y: 1_000_000},
		raster.Purple)
	if n := count(f, raster.Purple); n != 64 {
		t.Fatalf("covering triangle drew %d pixels, want 64", n)
	}
}

func TestLineClipsHugeEndpoints(t *testing.T) {
	n := 0
	for range LinePoints(raster.Point{X: 0, Y: 0}, raster.Point{X: 200_000_000, Y: 10}, 2, raster.Black, 240, 240) {
		n++
	}
	// At most one brush stamp per step across the grown target.
	if limit := 4 * (240 + 4) * 2; n == 0 || n > limit {
		t.Fatalf("LinePoints() to x=2e8 yielded %d pixels, want 1..%d", n, limit)
	}

	f := raster.NewFrame(8, 8)
	Line(f, raster.Point{X: -1_000_000_000, Y: 3}, raster.Point{X: 1_000_000_000, Y: 3}, 1, raster.White)
	if got := count(f, raster.White); got != 8 {
		t.Fatalf("line across the frame drew %d pixels, want 8", got)
	}
	for x := 0; x < 8; x++ {
		if f.At(x, 3) != raster.White {
			t.Fatalf("pixel (%d,3) not drawn", x)
		}
	}

	g := raster.NewFrame(8, 8)
	Line(g, raster.Point{X: -1_000_000_000, Y: 50}, raster.Point{X: 1_000_000_000, Y: 50}, 2, raster.White)
	if got := count(g, raster.White); got != 0 {
		t.Fatalf("line below the frame drew %d pixels, want 0", got)
	}
}

func TestClipSegmentInsideUnchanged(t *testing.T) {
	a, b := raster.Point{X: 1, Y: 2}, raster.Point{X: 6, Y: 5}
	ca, cb, ok := clipSegment(a, b, 0, 0, 7, 7)
	if !ok || ca != a || cb != b {
		t.Fatalf("clipSegment() = %v, %v, %v, want %v, %v, true", ca, cb, ok, a, b)
	}
}

func TestLineHorizontal(t *testing.T) {
	f := raster.NewFrame(10, 3)
	Line(f, raster.Point{X: 2, Y: 1}, raster.Point{X: 6, Y: 1}, 1, raster.White)
	if n := count(f, raster.White); n != 5 {
		t.Fatalf("line drew %d pixels, want 5", n)
	}
	for x := 2; x <= 6; x++ {
		if f.At(x, 1) != raster.White {
			t.Fatalf("At(%d,1) not set", x)
		}
	}
}

func TestLineWidthTwo(t *testing.T) {
	f := raster.NewFrame(10, 4)
	Line(f, raster.Point{X: 2, Y: 2}, raster.Point{X: 5, Y: 2}, 2, raster.White)
	// Brush spans x-1..x and y-1..y.
	if n := count(f, raster.White); n != 10 {
		t.Fatalf("wide line drew %d pixels, want 10", n)
	}
	if f.At(1, 1) != raster.White || f.At(5, 2) != raster.White {
		t.Fatalf("wide line missing brush corners")
	}
}

func TestLineEndpointsBothDirections(t *testing.T) {
	a := raster.Point{X: 0, Y: 0}
	b := raster.Point{X: 7, Y: 3}
	for _, pts := range [][2]raster.Point{{a, b}, {b, a}} {
		f := raster.NewFrame(8, 4)
		Line(f, pts[0], pts[1], 1, raster.White)
		if f.At(0, 0) != raster.White || f.At(7, 3) != raster.White {
			t.Fatalf("line %v->%v missing an endpoint", pts[0], pts[1])
		}
		if n := count(f, raster.White); n != 8 {
			t.Fatalf("line %v->%v drew %d pixels, want 8", pts[0], pts[1], n)
		}
	}
}

func TestPolylineSinglePoint(t *testing.T) {
	f := raster.NewFrame(4, 4)
	Polyline(f, []raster.Point{{X: 2, Y: 2}}, 1, raster.White)
	if n := count(f, raster.White); n != 1 {
		t.Fatalf("single point polyline drew %d pixels, want 1", n)
	}
}

func TestCircleSymmetric(t *testing.T) {
	f := raster.NewFrame(12, 12)
	Circle(f, raster.Point{X: 1, Y: 1}, 10, raster.Black+1)
	col := raster.Black + 1

	if f.At(1, 1) == col || f.At(10, 10) == col {
		t.Fatalf("circle covers its bounding box corners")
	}
	if f.At(5, 5) != col || f.At(6, 6) != col {
		t.Fatalf("circle misses its center")
	}
	for y := 1; y <= 10; y++ {
		for x := 1; x <= 10; x++ {
			mx, my := 11-x, 11-y
			if (f.At(x, y) == col) != (f.At(mx, y) == col) || (f.At(x, y) == col) != (f.At(x, my) == col) {
				t.Fatalf("circle not symmetric at %d,%d", x, y)
			}
		}
	}
	if f.At(0, 5) == col || f.At(11, 5) == col {
		t.Fatalf("circle spills outside its box")
	}
}

func TestCircleZeroDiameter(t *testing.T) {
	f := raster.NewFrame(4, 4)
	Circle(f, raster.Point{X: 1, Y: 1}, 0, raster.White)
	if n := count(f, raster.White); n != 0 {
		t.Fatalf("zero circle drew %d pixels, want 0", n)
	}
}
