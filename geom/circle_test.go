package geom

import (
	"math"
	"testing"
)

func TestCircleEvalRadius(t *testing.T) {
	c := Circle{Plane: XYPlane(Pt(2, -3, 1)), Radius: 5}
	t0, t1 := c.Domain()
	if t0 != 0 || t1 != 2*math.Pi {
		t.Fatalf("got domain [%v, %v], expected [0, 2π]", t0, t1)
	}
	for i := 0; i <= 32; i++ {
		pt := c.Eval(t0 + (t1-t0)*float64(i)/32)
		if d := pt.Distance(c.Plane.Origin); math.Abs(d-5) > 1e-9 {
			t.Errorf("sample %d: distance to center is %v, expected 5", i, d)
		}
	}
}

func TestCircleExplode(t *testing.T) {
	c := Circle{Plane: XYPlane(Pt(0, 0, 0)), Radius: 2}
	pieces := c.Explode()
	if len(pieces) != 4 {
		t.Fatalf("got %d pieces, expected 4", len(pieces))
	}
	// Pieces must chain start-to-end and wrap around to the circle's seam.
	if got := pieces[0].Start().Distance(c.Start()); got > 1e-9 {
		t.Errorf("first piece starts %v away from the circle's seam", got)
	}
	for i := 1; i < len(pieces); i++ {
		gap := pieces[i].Start().Distance(pieces[i-1].End())
		if gap > 1e-9 {
			t.Errorf("gap of %v between pieces %d and %d", gap, i-1, i)
		}
	}
	if got := pieces[3].End().Distance(c.Start()); got > 1e-9 {
		t.Errorf("last piece ends %v away from the circle's seam", got)
	}
}

func TestCircleExplodeDegenerate(t *testing.T) {
	if pieces := (Circle{Radius: 1}).Explode(); pieces != nil {
		t.Errorf("degenerate plane: got %d pieces, expected none", len(pieces))
	}
	if pieces := (Circle{Plane: XYPlane(Pt(0, 0, 0))}).Explode(); pieces != nil {
		t.Errorf("zero radius: got %d pieces, expected none", len(pieces))
	}
}

func TestCircleApproxPolyline(t *testing.T) {
	opts := ApproxOptions{AngleTolDeg: 5, Tolerance: 0.01, MinEdges: 16, MaxEdges: 64}
	c := Circle{Plane: XYPlane(Pt(0, 0, 0)), Radius: 5}
	pl, ok := c.ApproxPolyline(opts)
	if !ok {
		t.Fatal("expected an approximation")
	}
	edges := len(pl) - 1
	if edges < 16 || edges > 64 {
		t.Errorf("got %d edges, expected between 16 and 64", edges)
	}
	if pl[0] != pl[len(pl)-1] {
		t.Errorf("approximation is not closed: %v vs %v", pl[0], pl[len(pl)-1])
	}
	if !pl.Closed() {
		t.Error("Closed() = false for the approximation")
	}
	for i, pt := range pl {
		if d := pt.Distance(Pt(0, 0, 0)); math.Abs(d-5) > 1e-9 {
			t.Errorf("vertex %d: distance to center is %v, expected 5", i, d)
		}
	}
}

func TestCircleApproxPolylineMaxEdges(t *testing.T) {
	// A tiny tolerance on a big circle must still respect MaxEdges.
	opts := ApproxOptions{AngleTolDeg: 0.01, Tolerance: 1e-9, MinEdges: 16, MaxEdges: 64}
	c := Circle{Plane: XYPlane(Pt(0, 0, 0)), Radius: 100}
	pl, ok := c.ApproxPolyline(opts)
	if !ok {
		t.Fatal("expected an approximation")
	}
	if edges := len(pl) - 1; edges != 64 {
		t.Errorf("got %d edges, expected the 64 edge cap", edges)
	}
}

func TestCircleParams(t *testing.T) {
	c := Circle{Plane: XYPlane(Pt(1, 2, 3)), Radius: 4}
	center, radius, ok := c.CircleParams()
	if !ok {
		t.Fatal("expected circle params")
	}
	diff(t, Pt(1, 2, 3), center)
	if radius != 4 {
		t.Errorf("got radius %v, expected 4", radius)
	}

	if _, _, ok := (Circle{Plane: XYPlane(Pt(0, 0, 0))}).CircleParams(); ok {
		t.Error("zero radius: expected ok=false")
	}
	if _, ok := (Circle{Radius: 1}).SupportPlane(); ok {
		t.Error("degenerate plane: expected ok=false")
	}
}
