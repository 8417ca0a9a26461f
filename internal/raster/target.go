// Package raster holds the pixel buffer every surface draws through.
//
// A Frame is a fixed-size RGB565 buffer. Shapes and text never index it directly:
// they emit point sets into a Target, which clips anything outside its bounds.
package raster

import "iter"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Pixel is a colored point.
type Pixel struct {
	Point
	Color Color
}

// Target is the minimal drawing surface.
//
// Implementations must drop out-of-bounds points silently.
type Target interface {
	Clear(c Color)
	DrawPoints(pts iter.Seq[Pixel])
	Dimensions() (w, h int)
}
