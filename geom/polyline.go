package geom

import "math"

// Polyline is a sequence of vertices joined by line segments. It is
// parametrized by segment index: the domain of a polyline with n vertices
// is [0, n−1], and Eval(i) for integral i returns vertex i.
type Polyline []Point

var _ Curve = Polyline{}
var _ Arclener = Polyline{}
var _ Exploder = Polyline{}

// Vertices returns the polyline's vertex list. The slice is shared with
// the polyline, not copied.
func (p Polyline) Vertices() []Point {
	return p
}

func (p Polyline) Domain() (t0, t1 float64) {
	if len(p) < 2 {
		return 0, 0
	}
	return 0, float64(len(p) - 1)
}

func (p Polyline) Eval(t float64) Point {
	if len(p) == 0 {
		return Point{}
	}
	if len(p) == 1 || t <= 0 {
		return p[0]
	}
	if t >= float64(len(p)-1) {
		return p[len(p)-1]
	}
	i, frac := math.Modf(t)
	idx := int(i)
	return p[idx].Lerp(p[idx+1], frac)
}

func (p Polyline) Start() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[0]
}

func (p Polyline) End() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[len(p)-1]
}

func (p Polyline) Closed() bool {
	return len(p) > 2 && p[0].Distance(p[len(p)-1]) <= closeEps
}

// Length returns the sum of the segment lengths.
func (p Polyline) Length() float64 {
	var sum float64
	for i := 1; i < len(p); i++ {
		sum += p[i].Distance(p[i-1])
	}
	return sum
}

// Arclen returns the length of the polyline.
func (p Polyline) Arclen(accuracy float64) float64 {
	return p.Length()
}

// Explode splits the polyline into its constituent line segments.
func (p Polyline) Explode() []Curve {
	if len(p) < 2 {
		return nil
	}
	out := make([]Curve, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		out = append(out, Line{P0: p[i-1], P1: p[i]})
	}
	return out
}

func (p Polyline) Translate(v Vec3) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = pt.Translate(v)
	}
	return out
}

func (p Polyline) IsNaN() bool {
	for _, pt := range p {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}
