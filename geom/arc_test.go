package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestArcEval(t *testing.T) {
	a := Arc{
		Plane:      XYPlane(Pt(0, 0, 0)),
		Radius:     2,
		StartAngle: 0,
		SweepAngle: math.Pi / 2,
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Pt(2, 0, 0), a.Start(), approx)
	diff(t, Pt(0, 2, 0), a.End(), approx)
	diff(t, Pt(math.Sqrt2, math.Sqrt2, 0), a.Eval(0.5), approx)
}

func TestArcEvalTiltedPlane(t *testing.T) {
	// A quarter arc on the XZ plane (normal −Y) stays at y = 0.
	a := Arc{
		Plane:      NewPlane(Pt(0, 0, 0), Vec(0, -1, 0)),
		Radius:     3,
		StartAngle: 0,
		SweepAngle: math.Pi / 2,
	}
	for i := 0; i <= 8; i++ {
		pt := a.Eval(float64(i) / 8)
		if math.Abs(pt.Y) > 1e-12 {
			t.Errorf("sample %d: y = %v, expected 0", i, pt.Y)
		}
		if d := pt.Distance(Pt(0, 0, 0)); math.Abs(d-3) > 1e-12 {
			t.Errorf("sample %d: distance to center is %v, expected 3", i, d)
		}
	}
}

func TestArcArclen(t *testing.T) {
	a := Arc{
		Plane:      XYPlane(Pt(0, 0, 0)),
		Radius:     5,
		StartAngle: math.Pi / 4,
		SweepAngle: math.Pi,
	}
	if got := a.Arclen(DefaultAccuracy); math.Abs(got-5*math.Pi) > 1e-12 {
		t.Errorf("got arclen %v, expected %v", got, 5*math.Pi)
	}
}

func TestArcClosed(t *testing.T) {
	quarter := Arc{Plane: XYPlane(Pt(0, 0, 0)), Radius: 1, SweepAngle: math.Pi / 2}
	if quarter.Closed() {
		t.Error("quarter arc reports closed")
	}
	full := Arc{Plane: XYPlane(Pt(0, 0, 0)), Radius: 1, SweepAngle: 2 * math.Pi}
	if !full.Closed() {
		t.Error("full-turn arc reports open")
	}
}
