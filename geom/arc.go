package geom

import "math"

// Arc is a circular arc on a supporting plane, swept from StartAngle by
// SweepAngle (radians, positive counterclockwise around the plane normal).
// Its parametric domain is [0, 1] across the sweep.
type Arc struct {
	Plane      Plane
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ Curve = Arc{}
var _ Arclener = Arc{}
var _ Circular = Arc{}
var _ PolylineApproximator = Arc{}

func (a Arc) Domain() (t0, t1 float64) {
	return 0, 1
}

func (a Arc) Eval(t float64) Point {
	return a.Plane.PolarPoint(a.StartAngle+t*a.SweepAngle, a.Radius)
}

func (a Arc) Start() Point { return a.Eval(0) }
func (a Arc) End() Point   { return a.Eval(1) }

func (a Arc) Closed() bool {
	return math.Abs(a.SweepAngle) >= 2*math.Pi-closeEps
}

// Arclen returns the length of the arc.
func (a Arc) Arclen(accuracy float64) float64 {
	return math.Abs(a.SweepAngle) * math.Abs(a.Radius)
}

// CircleParams implements [Circular].
func (a Arc) CircleParams() (center Point, radius float64, ok bool) {
	if a.Radius <= 0 || math.IsNaN(a.Radius) || a.Plane.Origin.IsNaN() {
		return Point{}, 0, false
	}
	return a.Plane.Origin, a.Radius, true
}

// SupportPlane implements [Circular].
func (a Arc) SupportPlane() (pl Plane, ok bool) {
	if a.Plane.IsDegenerate() {
		return Plane{}, false
	}
	return a.Plane, true
}

// ApproxPolyline implements [PolylineApproximator].
func (a Arc) ApproxPolyline(opts ApproxOptions) (Polyline, bool) {
	return approxArc(a.Plane, a.Radius, a.StartAngle, a.SweepAngle, opts)
}

// approxArc produces a bounded chord approximation of an arc. The edge
// count is driven by both the per-edge angle tolerance and the chord
// sagitta tolerance, then clamped to [MinEdges, MaxEdges].
func approxArc(pl Plane, radius, startAngle, sweepAngle float64, opts ApproxOptions) (Polyline, bool) {
	if radius <= 0 || math.IsNaN(radius) || pl.IsDegenerate() || math.IsNaN(sweepAngle) {
		return nil, false
	}
	sweep := math.Abs(sweepAngle)
	if sweep < closeEps {
		return nil, false
	}

	n := 1
	if opts.AngleTolDeg > 0 {
		step := opts.AngleTolDeg * math.Pi / 180
		n = max(n, int(math.Ceil(sweep/step)))
	}
	if opts.Tolerance > 0 && opts.Tolerance < radius {
		// Sagitta of a chord spanning θ is r(1−cos(θ/2)).
		step := 2 * math.Acos(1-opts.Tolerance/radius)
		n = max(n, int(math.Ceil(sweep/step)))
	}
	if opts.MinEdges > 0 {
		n = max(n, opts.MinEdges)
	}
	if opts.MaxEdges > 0 {
		n = min(n, opts.MaxEdges)
	}

	out := make(Polyline, 0, n+1)
	for i := 0; i <= n; i++ {
		angle := startAngle + sweepAngle*float64(i)/float64(n)
		out = append(out, pl.PolarPoint(angle, radius))
	}
	if sweep >= 2*math.Pi-closeEps {
		// Snap the seam shut for full turns.
		out[len(out)-1] = out[0]
	}
	return out, true
}
