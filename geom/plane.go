package geom

import "math"

// Plane is the supporting plane of an arc or circle: an origin and an
// orthonormal frame. The normal's orientation determines the winding
// direction of curves evaluated on the plane.
type Plane struct {
	Origin Point
	XAxis  Vec3
	YAxis  Vec3
	Normal Vec3
}

// XYPlane returns the world XY plane translated to origin, with the normal
// pointing in +Z.
func XYPlane(origin Point) Plane {
	return Plane{
		Origin: origin,
		XAxis:  Vec(1, 0, 0),
		YAxis:  Vec(0, 1, 0),
		Normal: Vec(0, 0, 1),
	}
}

// NewPlane constructs a plane from an origin and a normal, choosing an
// arbitrary but deterministic in-plane frame. The normal need not be a
// unit vector. A (near) zero normal yields a degenerate plane.
func NewPlane(origin Point, normal Vec3) Plane {
	n := normal.Normalize()
	if n == (Vec3{}) {
		return Plane{Origin: origin}
	}
	// Pick the world axis least aligned with the normal to seed the frame.
	seed := Vec(1, 0, 0)
	if math.Abs(n.X) >= math.Abs(n.Y) && math.Abs(n.X) >= math.Abs(n.Z) {
		seed = Vec(0, 1, 0)
	}
	x := seed.Cross(n).Normalize()
	y := n.Cross(x)
	return Plane{
		Origin: origin,
		XAxis:  x,
		YAxis:  y,
		Normal: n,
	}
}

// IsDegenerate reports whether the plane lacks a usable frame.
func (p Plane) IsDegenerate() bool {
	return p.Normal.Hypot2() < 1e-18 ||
		p.XAxis.Hypot2() < 1e-18 ||
		p.YAxis.Hypot2() < 1e-18 ||
		p.Normal.IsNaN()
}

// PointAt evaluates the plane at in-plane coordinates (u, v).
func (p Plane) PointAt(u, v float64) Point {
	return p.Origin.Translate(p.XAxis.Mul(u).Add(p.YAxis.Mul(v)))
}

// PolarPoint returns the point at the given angle and radius around the
// plane's origin. At angle 0 the result lies along the plane's x axis.
func (p Plane) PolarPoint(angle, radius float64) Point {
	sin, cos := math.Sincos(angle)
	return p.PointAt(radius*cos, radius*sin)
}
