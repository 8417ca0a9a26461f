package anim

import (
	"faceplate/internal/face"
	"faceplate/internal/raster"
	"faceplate/internal/shape"
)

const (
	LineWidth     = 2
	PupilDiameter = 10
)

// Palette is the set of colors a frame is painted with.
type Palette struct {
	Background raster.Color
	Backdrop   raster.Color
	Face       raster.Color
	Ink        raster.Color
}

var DefaultPalette = Palette{
	Background: raster.Blue,
	Backdrop:   raster.Purple,
	Face:       raster.Green,
	Ink:        raster.Black,
}

// FaceLabels is the label alphabet RenderFrame draws from.
var FaceLabels = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i",
	"j", "k", "l", "m", "n", "o", "p", "q", "r",
}

// Corner labels of the face quad, split into two triangles.
var faceTriangles = [2][3]string{{"a", "b", "c"}, {"c", "d", "a"}}

// Brow and eye strokes, drawn in this order.
var strokes = [][2]string{
	{"e", "f"}, {"g", "h"},
	{"i", "j"}, {"k", "l"},
	{"m", "n"}, {"o", "p"},
}

var pupils = []string{"q", "r"}

// RenderFrame draws the current pose into a new frame.
//
// Every point gets a fresh jitter each frame; nothing is persisted. Layers paint in
// a fixed order, later ones over earlier ones: backdrop, face, strokes, pupils.
// Primitives whose labels are missing from the pose are skipped.
func (e *Engine) RenderFrame() *raster.Frame {
	pose := e.state.Current()

	e.rngMu.Lock()
	pts := e.jitterPose(pose)
	var backdrop [2][3]raster.Point
	var backdropOK [2]bool
	for i, tri := range faceTriangles {
		backdrop[i], backdropOK[i] = e.wobble(pts, tri)
	}
	e.rngMu.Unlock()

	f := raster.NewFrame(e.w, e.h)
	f.Clear(e.palette.Background)

	for i := range backdrop {
		if backdropOK[i] {
			v := backdrop[i]
			shape.Triangle(f, v[0], v[1], v[2], e.palette.Backdrop)
		}
	}
	for _, tri := range faceTriangles {
		a, okA := pts[tri[0]]
		b, okB := pts[tri[1]]
		c, okC := pts[tri[2]]
		if okA && okB && okC {
			shape.Triangle(f, a, b, c, e.palette.Face)
		}
	}
	for _, s := range strokes {
		a, okA := pts[s[0]]
		b, okB := pts[s[1]]
		if okA && okB {
			shape.Polyline(f, []raster.Point{a, b}, LineWidth, e.palette.Ink)
		}
	}
	for _, l := range pupils {
		if p, ok := pts[l]; ok {
			shape.Circle(f, p, PupilDiameter, e.palette.Ink)
		}
	}
	return f
}

// jitterPose offsets every point in label order. Caller holds rngMu.
func (e *Engine) jitterPose(pose face.Pose) map[string]raster.Point {
	pts := make(map[string]raster.Point, len(pose))
	for _, l := range pose.Labels() {
		kp := pose[l]
		pts[l] = raster.Point{
			X: kp.X + e.between(e.jitterMin, e.jitterMax),
			Y: kp.Y + e.between(e.jitterMin, e.jitterMax),
		}
	}
	return pts
}

// wobble returns the triangle's vertices with an extra backdrop jitter each. Caller
// holds rngMu.
func (e *Engine) wobble(pts map[string]raster.Point, tri [3]string) ([3]raster.Point, bool) {
	var out [3]raster.Point
	for i, l := range tri {
		p, ok := pts[l]
		if !ok {
			return out, false
		}
		n := e.backdropJitter
		out[i] = p.Add(raster.Point{X: e.between(-n, n), Y: e.between(-n, n)})
	}
	return out, true
}

func (e *Engine) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.IntN(hi-lo+1)
}
