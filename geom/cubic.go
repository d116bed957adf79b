package geom

import "math"

// CubicBez is a cubic Bézier segment, the building block for free-form
// curves. Its parametric domain is [0, 1].
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ Curve = CubicBez{}
var _ Arclener = CubicBez{}

func (c CubicBez) Domain() (t0, t1 float64) {
	return 0, 1
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec3(c.P0).Mul(mt * mt * mt)
	b := Vec3(c.P1).Mul(mt * mt * 3.0)
	cc := Vec3(c.P2).Mul(mt * 3.0)
	d := Vec3(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) Closed() bool {
	return c.P0.Distance(c.P3) <= closeEps
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec3(c.P0).Add(Vec3(c.P1).Mul(2.0)).Add(Vec3(c.P2)).Mul(0.25)),
			pm,
		}, CubicBez{
			pm,
			Point(Vec3(c.P1).Add(Vec3(c.P2).Mul(2.0)).Add(Vec3(c.P3)).Mul(0.25)),
			c.P3.Midpoint(c.P2),
			c.P3,
		}
}

// Arclen returns the arc length of the cubic, by adaptive subdivision.
//
// The estimate for a segment is (2·chord + control polygon)/3, whose error
// is bounded by the gap between the chord and the control polygon length.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	chord := c.P3.Sub(c.P0).Hypot()
	poly := c.P1.Sub(c.P0).Hypot() + c.P2.Sub(c.P1).Hypot() + c.P3.Sub(c.P2).Hypot()
	if poly-chord <= accuracy || depth >= 16 {
		return (2*chord + poly) / 3
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Spline is a piecewise cubic Bézier curve. Adjacent segments are assumed
// to share endpoints. The parametric domain of a spline with n segments is
// [0, n], parametrized by segment index.
type Spline []CubicBez

var _ Curve = Spline{}
var _ Arclener = Spline{}
var _ Exploder = Spline{}

func (s Spline) Domain() (t0, t1 float64) {
	return 0, float64(len(s))
}

func (s Spline) Eval(t float64) Point {
	if len(s) == 0 {
		return Point{}
	}
	if t <= 0 {
		return s[0].Eval(0)
	}
	if t >= float64(len(s)) {
		return s[len(s)-1].Eval(1)
	}
	i, frac := math.Modf(t)
	return s[int(i)].Eval(frac)
}

func (s Spline) Start() Point {
	if len(s) == 0 {
		return Point{}
	}
	return s[0].P0
}

func (s Spline) End() Point {
	if len(s) == 0 {
		return Point{}
	}
	return s[len(s)-1].P3
}

func (s Spline) Closed() bool {
	return len(s) > 0 && s.Start().Distance(s.End()) <= closeEps
}

// Arclen returns the summed arc length of the segments.
func (s Spline) Arclen(accuracy float64) float64 {
	if len(s) == 0 {
		return 0
	}
	per := accuracy / float64(len(s))
	var sum float64
	for _, c := range s {
		sum += c.Arclen(per)
	}
	return sum
}

// Explode splits the spline into its constituent cubic segments.
func (s Spline) Explode() []Curve {
	out := make([]Curve, len(s))
	for i, c := range s {
		out[i] = c
	}
	return out
}
