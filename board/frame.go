package board

import (
	"honnef.co/go/polyoffset"
)

// Frame is everything a renderer needs to draw one tick of the board.
type Frame struct {
	// Distance the offsets were computed with.
	Distance float64
	// Polylines as drawn, in drawing order.
	Polylines []polyoffset.Polyline
	// Offsets[i] is the offset polyline of Polylines[i]. It is empty for
	// polylines with fewer than two vertices.
	Offsets []polyoffset.Polyline
	// Vertices of all polylines, for drawing vertex markers.
	Vertices []polyoffset.Point

	// Pointer is the pointer position, valid if HasPointer is set.
	Pointer    polyoffset.Point
	HasPointer bool
	// Preview is the segment from the last vertex of the active polyline to
	// the pointer, valid if HasPreview is set.
	Preview    polyoffset.Line
	HasPreview bool
}

// BoundingBox returns the smallest rectangle containing all polylines, their
// offsets and the preview segment. The second result is false if the frame
// contains no geometry.
func (f Frame) BoundingBox() (polyoffset.Rect, bool) {
	var r polyoffset.Rect
	ok := false
	add := func(pt polyoffset.Point) {
		if !ok {
			r = polyoffset.NewRectFromPoints(pt, pt)
			ok = true
			return
		}
		r = r.UnionPoint(pt)
	}
	for _, pls := range [][]polyoffset.Polyline{f.Polylines, f.Offsets} {
		for _, pl := range pls {
			for _, pt := range pl {
				add(pt)
			}
		}
	}
	if f.HasPreview {
		add(f.Preview.P0)
		add(f.Preview.P1)
	}
	return r, ok
}
