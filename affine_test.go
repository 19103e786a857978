package polyoffset

import (
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(aInv).Transform(a), px, epsilon)
	assertNear(t, py.Transform(aInv).Transform(a), py, epsilon)
	assertNear(t, pxy.Transform(aInv).Transform(a), pxy, epsilon)
	assertNear(t, px.Transform(a).Transform(aInv), px, epsilon)
	assertNear(t, py.Transform(a).Transform(aInv), py, epsilon)
	assertNear(t, pxy.Transform(a).Transform(aInv), pxy, epsilon)
}

func TestFitRect(t *testing.T) {
	const epsilon = 1e-9
	src := Rect{0, 0, 10, 5}
	dst := Rect{0, 0, 120, 120}
	aff := FitRect(src, dst, 10)
	// Width constrains the scale: 100/10.
	assertNear(t, Pt(0, 0).Transform(aff), Pt(10, 35), epsilon)
	assertNear(t, Pt(10, 5).Transform(aff), Pt(110, 85), epsilon)
	if s := aff.ScaleFactor(); s < 10-epsilon || s > 10+epsilon {
		t.Errorf("got scale %g, want 10", s)
	}

	// A single point is centered without scaling.
	aff = FitRect(Rect{3, 3, 3, 3}, dst, 10)
	assertNear(t, Pt(3, 3).Transform(aff), Pt(60, 60), epsilon)
	assertNear(t, Pt(4, 3).Transform(aff), Pt(61, 60), epsilon)

	// A horizontal line is only constrained by its width.
	aff = FitRect(Rect{0, 7, 50, 7}, dst, 10)
	assertNear(t, Pt(50, 7).Transform(aff), Pt(110, 60), epsilon)
}
