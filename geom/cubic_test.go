package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezEval(t *testing.T) {
	c := CubicBez{Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 1, 0), Pt(3, 1, 0)}
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, c.P0, c.Eval(0), approx)
	diff(t, c.P3, c.Eval(1), approx)
	diff(t, Pt(1.5, 0.5, 0), c.Eval(0.5), approx)
}

func TestCubicBezArclenLine(t *testing.T) {
	// A degenerate cubic along a straight line has the chord's length.
	c := CubicBez{Pt(0, 0, 0), Pt(1, 1, 1), Pt(2, 2, 2), Pt(3, 3, 3)}
	want := math.Sqrt(27)
	if got := c.Arclen(DefaultAccuracy); math.Abs(got-want) > 1e-9 {
		t.Errorf("got arclen %v, expected %v", got, want)
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0, 0), Pt(1, 2, 0), Pt(3, 2, 1), Pt(4, 0, 1)}
	c0, c1 := c.Subdivide()
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, c.Eval(0.25), c0.Eval(0.5), approx)
	diff(t, c.Eval(0.75), c1.Eval(0.5), approx)
	diff(t, c0.P3, c1.P0, approx)
}

func TestSplineEval(t *testing.T) {
	s := Spline{
		{Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0), Pt(3, 0, 0)},
		{Pt(3, 0, 0), Pt(3, 1, 0), Pt(3, 2, 0), Pt(3, 3, 0)},
	}
	t0, t1 := s.Domain()
	if t0 != 0 || t1 != 2 {
		t.Fatalf("got domain [%v, %v], expected [0, 2]", t0, t1)
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Pt(0, 0, 0), s.Eval(0), approx)
	diff(t, Pt(3, 0, 0), s.Eval(1), approx)
	diff(t, Pt(3, 3, 0), s.Eval(2), approx)
	diff(t, Pt(1.5, 0, 0), s.Eval(0.5), approx)
}

func TestSplineClosed(t *testing.T) {
	open := Spline{{Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0), Pt(3, 0, 0)}}
	if open.Closed() {
		t.Error("open spline reports closed")
	}
	closed := Spline{
		{Pt(0, 0, 0), Pt(2, 2, 0), Pt(4, 2, 0), Pt(4, 0, 0)},
		{Pt(4, 0, 0), Pt(2, -2, 0), Pt(0, -2, 0), Pt(0, 0, 0)},
	}
	if !closed.Closed() {
		t.Error("closed spline reports open")
	}
}

func TestArclenFallback(t *testing.T) {
	// A curve without an Arclener implementation falls back to chord
	// summation.
	c := chordOnly{Line{Pt(0, 0, 0), Pt(3, 4, 0)}}
	if got := Arclen(c, DefaultAccuracy); math.Abs(got-5) > 1e-9 {
		t.Errorf("got arclen %v, expected 5", got)
	}
	// Curves that do implement it are measured exactly.
	if got := Arclen(Line{Pt(0, 0, 0), Pt(3, 4, 0)}, DefaultAccuracy); got != 5 {
		t.Errorf("got arclen %v, expected exactly 5", got)
	}
}

// chordOnly hides every optional capability of the wrapped curve.
type chordOnly struct {
	c Curve
}

func (w chordOnly) Domain() (float64, float64) { return w.c.Domain() }
func (w chordOnly) Eval(t float64) Point       { return w.c.Eval(t) }
func (w chordOnly) Start() Point               { return w.c.Start() }
func (w chordOnly) End() Point                 { return w.c.End() }
func (w chordOnly) Closed() bool               { return w.c.Closed() }
