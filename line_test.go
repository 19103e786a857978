package polyoffset

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNormal(t *testing.T) {
	diff(t, Vec(0, 1), Normal(Pt(0, 0), Pt(10, 0)))
	diff(t, Vec(-1, 0), Normal(Pt(10, 0), Pt(10, 10)))
	// Reversing the edge flips the normal.
	diff(t, Vec(0, -1), Normal(Pt(10, 0), Pt(0, 0)))

	pairs := [][2]Point{
		{Pt(0, 0), Pt(1, 1)},
		{Pt(-3, 7), Pt(12, -0.5)},
		{Pt(100, 100), Pt(100.001, 99.999)},
		{Pt(1e6, -1e6), Pt(-1e6, 1e6)},
	}
	for _, p := range pairs {
		n := Normal(p[0], p[1])
		d := p[1].Sub(p[0])
		if h := n.Hypot(); math.Abs(h-1) > 1e-12 {
			t.Errorf("normal %s of %v has magnitude %g", n, p, h)
		}
		if dot := n.Dot(d.Normalize()); math.Abs(dot) > 1e-12 {
			t.Errorf("normal %s of %v not perpendicular: dot = %g", n, p, dot)
		}
		// Counter-clockwise in y-up terms.
		if d.Cross(n) <= 0 {
			t.Errorf("normal %s of %v on wrong side", n, p)
		}
	}
}

func TestNormalDegenerate(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("got panic value %v, want an error", r)
		}
		var derr *DegenerateEdgeError
		if !errors.As(err, &derr) {
			t.Fatalf("got %T, want *DegenerateEdgeError", err)
		}
		diff(t, Pt(3, 3), derr.At)
	}()
	Normal(Pt(3, 3), Pt(3, 3))
}

func TestLineOffset(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	diff(t, Line{Pt(0, 5), Pt(10, 5)}, l.Offset(5))
	diff(t, Line{Pt(0, -5), Pt(10, -5)}, l.Offset(-5))
	if got := l.Offset(5).Length(); got != l.Length() {
		t.Errorf("offset changed length from %v to %v", l.Length(), got)
	}
}

func TestCrossingPoint(t *testing.T) {
	hLine := Line{Pt(0, 5), Pt(10, 5)}
	vLine := Line{Pt(5, 0), Pt(5, 10)}
	pt, ok := hLine.CrossingPoint(vLine)
	if !ok {
		t.Fatal("expected crossing point")
	}
	diff(t, Pt(5, 5), pt)

	// The crossing point isn't clamped to the segments.
	far := Line{Pt(100, -1), Pt(100, -2)}
	pt, ok = hLine.CrossingPoint(far)
	if !ok {
		t.Fatal("expected crossing point")
	}
	diff(t, Pt(100, 5), pt, cmpopts.EquateApprox(0, 1e-9))

	diag0 := Line{Pt(0, 0), Pt(1, 1)}
	diag1 := Line{Pt(0, 2), Pt(2, 0)}
	pt, _ = diag0.CrossingPoint(diag1)
	diff(t, Pt(1, 1), pt, cmpopts.EquateApprox(0, 1e-12))
}

func TestCrossingPointAbsoluteThreshold(t *testing.T) {
	// A right angle whose edges are 1e-9 long has a determinant of 1e-18,
	// below the parallel threshold.
	l := Line{Pt(0, 0), Pt(1e-9, 0)}
	o := Line{Pt(0, 0), Pt(0, 1e-9)}
	if pt, ok := l.CrossingPoint(o); ok {
		t.Errorf("got crossing point %s, want none", pt)
	}
	// Scaled up, the same corner has a crossing point.
	l = Line{Pt(0, 0), Pt(1, 0)}
	o = Line{Pt(0, 0), Pt(0, 1)}
	if _, ok := l.CrossingPoint(o); !ok {
		t.Error("got no crossing point for unit right angle")
	}
}

func TestCrossingPointParallel(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	for _, o := range []Line{
		{Pt(0, 5), Pt(10, 5)},
		{Pt(20, 5), Pt(-3, 5)},
		{Pt(10, 0), Pt(20, 0)},
	} {
		if pt, ok := l.CrossingPoint(o); ok {
			t.Errorf("%v and %v are parallel, got crossing point %s", l, o, pt)
		}
	}
}
