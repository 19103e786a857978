package polyoffset

import (
	"fmt"
	"math"
)

// Point is a location in screen space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// At returns the i-th coordinate of the point, where 0 is x and 1 is y. It
// panics for any other index.
func (pt Point) At(i int) float64 {
	switch i {
	case 0:
		return pt.X
	case 1:
		return pt.Y
	default:
		panic(fmt.Sprintf("polyoffset: Point coordinate index %d out of range [0, 2)", i))
	}
}

// Translate computes pt+o.
func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Untranslate computes pt−o.
func (pt Point) Untranslate(o Vec2) Point {
	return Point{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o, the displacement from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
