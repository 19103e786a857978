package polyoffset

import (
	"fmt"
	"iter"
	"math"
)

// Line represents a line segment. In a polyline it is an edge between two
// consecutive vertices.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// DegenerateEdgeError describes an edge whose endpoints coincide. Such an
// edge has no direction and therefore no normal.
type DegenerateEdgeError struct {
	// Index of the edge's start vertex in its polyline, or -1 if the edge
	// wasn't part of a polyline.
	Index int
	At    Point
}

func (err *DegenerateEdgeError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("degenerate edge at %s", err.At)
	}
	return fmt.Sprintf("degenerate edge %d at %s", err.Index, err.At)
}

// Normal returns the unit vector perpendicular to the direction a→b, which
// is b−a rotated by [Vec2.Perp]. The side an offset ends up on is thus
// determined by the order of a and b alone.
//
// a and b must differ. Normal panics with a *[DegenerateEdgeError] otherwise.
func Normal(a, b Point) Vec2 {
	d := b.Sub(a)
	if d.IsZero() {
		panic(&DegenerateEdgeError{Index: -1, At: a})
	}
	return d.Perp().Normalize()
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// IsDegenerate reports whether the line's endpoints coincide.
func (l Line) IsDegenerate() bool {
	return l.P0 == l.P1
}

// Normal returns the line's unit normal. See [Normal].
func (l Line) Normal() Vec2 {
	return Normal(l.P0, l.P1)
}

// Offset returns the line shifted sideways by d along its normal. Negative
// values of d shift to the other side.
func (l Line) Offset(d float64) Line {
	return l.Translate(l.Normal().Mul(d))
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It returns false if the lines are parallel, that is, if the
// determinant of their directions is smaller in magnitude than the float64
// machine epsilon.
//
// The crossing point isn't clamped to either segment and may lie far away from
// both of them when the lines are nearly parallel. The parallel threshold is
// absolute, not relative to the lines' lengths: lines whose direction
// components are around 1e-8 or smaller count as parallel even when they are
// perpendicular.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	p0, p1 := l.P0, l.P1
	q0, q1 := o.P0, o.P1
	det := (q1.X-q0.X)*(p1.Y-p0.Y) - (p1.X-p0.X)*(q1.Y-q0.Y)
	if math.Abs(det) < epsilon {
		return Point{}, false
	}
	t := ((p0.X-q0.X)*(q1.Y-q0.Y) - (q1.X-q0.X)*(p0.Y-q0.Y)) / det
	return p0.Translate(p1.Sub(p0).Mul(t)), true
}

// epsilon is the difference between 1 and the next larger float64.
const epsilon = 0x1p-52

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) isFinite() bool {
	return !l.IsNaN() && !l.IsInf()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.P0)) &&
			yield(LineTo(l.P1))
	}
}
