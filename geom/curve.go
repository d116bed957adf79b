package geom

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for general-purpose use.
const DefaultAccuracy = 1e-6

// closeEps is the coincidence tolerance used to detect closed curves.
const closeEps = 1e-9

// Curve describes a curve parametrized by a scalar over an explicit
// domain. The domain is curve specific; use [Curve.Domain] rather than
// assuming [0, 1].
type Curve interface {
	// Domain returns the parameter interval [t0, t1] over which the
	// curve is defined.
	Domain() (t0, t1 float64)
	// Eval evaluates the curve at parameter t. Behavior outside the
	// domain is curve specific; callers should clamp.
	Eval(t float64) Point
	Start() Point
	End() Point
	// Closed reports whether the curve's endpoints coincide.
	Closed() bool
}

// Arclener describes a curve that can have its arc length measured.
type Arclener interface {
	// Arclen returns the length of the curve.
	//
	// The result is accurate to the given accuracy (subject to roundoff
	// errors for ridiculously low values). Compute time may vary with
	// accuracy, if the curve needs to be subdivided.
	Arclen(accuracy float64) float64
}

// Arclen returns the length of a curve, using [Arclener] if the curve
// implements it and falling back to summing chords of a fixed sampling
// otherwise.
func Arclen(c Curve, accuracy float64) float64 {
	if al, ok := c.(Arclener); ok {
		return al.Arclen(accuracy)
	}
	const n = 256
	t0, t1 := c.Domain()
	var sum float64
	prev := c.Eval(t0)
	for i := 1; i <= n; i++ {
		pt := c.Eval(t0 + (t1-t0)*float64(i)/n)
		sum += pt.Distance(prev)
		prev = pt
	}
	return sum
}

// Circular describes curves that lie on a circle and can report its
// defining parameters. Both accessors are best effort: ok is false when
// the parameters cannot be recovered, and callers are expected to omit
// the corresponding output rather than fail.
type Circular interface {
	// CircleParams returns the circle's center and radius.
	CircleParams() (center Point, radius float64, ok bool)
	// SupportPlane returns the plane the circle lies on.
	SupportPlane() (pl Plane, ok bool)
}

// Exploder describes curves that can be split into simpler constituent
// curves, preserving order and orientation.
type Exploder interface {
	Explode() []Curve
}

// ApproxOptions bound a chord approximation produced by
// [PolylineApproximator].
type ApproxOptions struct {
	// AngleTolDeg is the maximum angle, in degrees, swept by a single
	// edge.
	AngleTolDeg float64
	// Tolerance is the maximum distance between the curve and an edge.
	Tolerance float64
	MinEdges  int
	MaxEdges  int
}

// MarkClosed wraps a curve whose document tracks closure as an explicit
// flag rather than by coincident endpoints. It reports Closed as true
// regardless of the underlying vertex data.
type MarkClosed struct {
	Curve
}

func (m MarkClosed) Closed() bool { return true }

// PolylineApproximator describes curves that can approximate themselves
// as a polyline within the given bounds. ok is false when the curve
// cannot produce an approximation, for instance because it is degenerate.
type PolylineApproximator interface {
	ApproxPolyline(opts ApproxOptions) (Polyline, bool)
}
