package polyoffset

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(0, 0).Untranslate(Vec(-10, 0)), Pt(10, 0))
	diff(t, Pt(5, 5).Sub(Pt(2, 1)), Vec(3, 4))
	p := Pt(1.5, -2)
	v := Vec(7, 0.25)
	diff(t, p, p.Translate(v).Untranslate(v))
	diff(t, v, p.Translate(v).Sub(p))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointAt(t *testing.T) {
	p := Pt(1, 2)
	if p.At(0) != 1 || p.At(1) != 2 {
		t.Errorf("got coordinates %v, %v, want 1, 2", p.At(0), p.At(1))
	}
	defer func() {
		if recover() == nil {
			t.Error("At(2) didn't panic")
		}
	}()
	p.At(2)
}
