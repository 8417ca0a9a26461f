// Package shape rasterizes the few primitives the face is built from.
//
// Every primitive is a point set handed to raster.Target.DrawPoints; the target does
// the final clipping. Triangles and lines also clip their own walk to the target
// bounds so a huge jittered vertex does not cost a huge loop.
package shape

import (
	"iter"
	"math"

	"faceplate/internal/raster"
)

// Triangle fills the triangle abc.
func Triangle(t raster.Target, a, b, c raster.Point, col raster.Color) {
	w, h := t.Dimensions()
	t.DrawPoints(TrianglePoints(a, b, c, col, w, h))
}

// TrianglePoints yields the covered pixels of abc inside [0,w)x[0,h).
//
// Either winding is accepted. Pixels on an edge are covered. Degenerate triangles
// yield nothing.
func TrianglePoints(a, b, c raster.Point, col raster.Color, w, h int) iter.Seq[raster.Pixel] {
	return func(yield func(raster.Pixel) bool) {
		area := edgeFn(a, b, c)
		if area == 0 {
			return
		}
		if area < 0 {
			b, c = c, b
		}

		minX, maxX := min(a.X, b.X, c.X), max(a.X, b.X, c.X)
		minY, maxY := min(a.Y, b.Y, c.Y), max(a.Y, b.Y, c.Y)
		minX, minY = max(minX, 0), max(minY, 0)
		maxX, maxY = min(maxX, w-1), min(maxY, h-1)

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				p := raster.Point{X: x, Y: y}
				w0 := edgeFn(b, c, p)
				w1 := edgeFn(c, a, p)
				w2 := edgeFn(a, b, p)
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
				if !yield(raster.Pixel{Point: p, Color: col}) {
					return
				}
			}
		}
	}
}

// Line strokes a to b with a square brush of the given width (minimum 1).
func Line(t raster.Target, a, b raster.Point, width int, col raster.Color) {
	w, h := t.Dimensions()
	t.DrawPoints(LinePoints(a, b, width, col, w, h))
}

// LinePoints yields a Bresenham line. Widths above 1 stamp a width x width square at
// each step, offset by -width/2 so the stroke stays roughly centered.
//
// The segment is first cut to [0,w)x[0,h) grown by width on every side, so the walk
// is bounded by the target size, not by the endpoints.
func LinePoints(a, b raster.Point, width int, col raster.Color, w, h int) iter.Seq[raster.Pixel] {
	if width < 1 {
		width = 1
	}
	off := -(width / 2)
	return func(yield func(raster.Pixel) bool) {
		a, b, ok := clipSegment(a, b, -width, -width, w-1+width, h-1+width)
		if !ok {
			return
		}
		x0, y0 := a.X, a.Y
		dx := absInt(b.X - x0)
		sx := -1
		if x0 < b.X {
			sx = 1
		}
		dy := -absInt(b.Y - y0)
		sy := -1
		if y0 < b.Y {
			sy = 1
		}
		err := dx + dy
		for {
			for by := 0; by < width; by++ {
				for bx := 0; bx < width; bx++ {
					p := raster.Point{X: x0 + off + bx, Y: y0 + off + by}
					if !yield(raster.Pixel{Point: p, Color: col}) {
						return
					}
				}
			}
			if x0 == b.X && y0 == b.Y {
				return
			}
			e2 := 2 * err
			if e2 >= dy {
				err += dy
				x0 += sx
			}
			if e2 <= dx {
				err += dx
				y0 += sy
			}
		}
	}
}

// clipSegment cuts ab to the closed box [minX,maxX]x[minY,maxY] (Liang-Barsky).
// Segments already inside come back unchanged.
func clipSegment(a, b raster.Point, minX, minY, maxX, maxY int) (raster.Point, raster.Point, bool) {
	inside := func(p raster.Point) bool {
		return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
	}
	if inside(a) && inside(b) {
		return a, b, true
	}
	if maxX < minX || maxY < minY {
		return a, b, false
	}

	ax, ay := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X)-ax, float64(b.Y)-ay
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, ax - float64(minX)},
		{dx, float64(maxX) - ax},
		{-dy, ay - float64(minY)},
		{dy, float64(maxY) - ay},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
		if t0 > t1 {
			return a, b, false
		}
	}

	at := func(t float64) raster.Point {
		p := raster.Point{
			X: int(math.Round(ax + t*dx)),
			Y: int(math.Round(ay + t*dy)),
		}
		p.X = min(max(p.X, minX), maxX)
		p.Y = min(max(p.Y, minY), maxY)
		return p
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = at(t0)
	}
	if t1 < 1 {
		cb = at(t1)
	}
	return ca, cb, true
}

// Polyline strokes consecutive segments of pts.
func Polyline(t raster.Target, pts []raster.Point, width int, col raster.Color) {
	if len(pts) == 1 {
		Line(t, pts[0], pts[0], width, col)
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		Line(t, pts[i], pts[i+1], width, col)
	}
}

// Circle fills the disc inscribed in the diameter x diameter box at topLeft.
func Circle(t raster.Target, topLeft raster.Point, diameter int, col raster.Color) {
	t.DrawPoints(CirclePoints(topLeft, diameter, col))
}

// CirclePoints yields the pixels whose centers fall inside the inscribed disc.
//
// Distances are measured in doubled coordinates so even diameters stay symmetric.
func CirclePoints(topLeft raster.Point, diameter int, col raster.Color) iter.Seq[raster.Pixel] {
	return func(yield func(raster.Pixel) bool) {
		if diameter <= 0 {
			return
		}
		r2 := diameter * diameter
		for py := 0; py < diameter; py++ {
			dy := 2*py + 1 - diameter
			for px := 0; px < diameter; px++ {
				dx := 2*px + 1 - diameter
				if dx*dx+dy*dy >= r2 {
					continue
				}
				p := raster.Point{X: topLeft.X + px, Y: topLeft.Y + py}
				if !yield(raster.Pixel{Point: p, Color: col}) {
					return
				}
			}
		}
	}
}

func edgeFn(a, b, p raster.Point) int {
	return (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
