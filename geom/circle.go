package geom

import "math"

// Circle is a full circle on a supporting plane. Its parametric domain is
// [0, 2π], with Eval(0) on the plane's x axis.
type Circle struct {
	Plane  Plane
	Radius float64
}

var _ Curve = Circle{}
var _ Arclener = Circle{}
var _ Circular = Circle{}
var _ Exploder = Circle{}
var _ PolylineApproximator = Circle{}

func (c Circle) Domain() (t0, t1 float64) {
	return 0, 2 * math.Pi
}

func (c Circle) Eval(t float64) Point {
	return c.Plane.PolarPoint(t, c.Radius)
}

func (c Circle) Start() Point { return c.Eval(0) }
func (c Circle) End() Point   { return c.Eval(0) }

func (c Circle) Closed() bool {
	return true
}

// Arclen returns the circumference.
func (c Circle) Arclen(accuracy float64) float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

// CircleParams implements [Circular].
func (c Circle) CircleParams() (center Point, radius float64, ok bool) {
	if c.Radius <= 0 || math.IsNaN(c.Radius) || c.Plane.Origin.IsNaN() {
		return Point{}, 0, false
	}
	return c.Plane.Origin, c.Radius, true
}

// SupportPlane implements [Circular].
func (c Circle) SupportPlane() (pl Plane, ok bool) {
	if c.Plane.IsDegenerate() {
		return Plane{}, false
	}
	return c.Plane, true
}

// Explode splits the circle into four quarter arcs, starting at angle 0
// and ordered counterclockwise around the plane normal.
func (c Circle) Explode() []Curve {
	if c.Radius <= 0 || math.IsNaN(c.Radius) || c.Plane.IsDegenerate() {
		return nil
	}
	out := make([]Curve, 0, 4)
	for i := 0; i < 4; i++ {
		out = append(out, Arc{
			Plane:      c.Plane,
			Radius:     c.Radius,
			StartAngle: float64(i) * math.Pi / 2,
			SweepAngle: math.Pi / 2,
		})
	}
	return out
}

// ApproxPolyline implements [PolylineApproximator]. The result is closed:
// its last vertex coincides with its first.
func (c Circle) ApproxPolyline(opts ApproxOptions) (Polyline, bool) {
	return approxArc(c.Plane, c.Radius, 0, 2*math.Pi, opts)
}

func (c Circle) IsNaN() bool {
	return c.Plane.Origin.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec3) Circle {
	c.Plane.Origin = c.Plane.Origin.Translate(v)
	return c
}
