package export

import (
	"errors"
	"log/slog"
	"math"

	"github.com/boreddesign/cloud-path/geom"
	"github.com/boreddesign/cloud-path/scene"
)

// Coord is one output point: [x, y] in profile mode, [x, y, z] in path
// mode.
type Coord []float64

// ErrEmpty is returned when no geometry survives extraction.
var ErrEmpty = errors.New("no geometry extracted")

// Extractor converts scene objects to visualizer output. Objects that
// fail to extract are logged and skipped; the run continues.
type Extractor struct {
	Mode Mode
	Opts Options
	Log  *slog.Logger
}

func NewExtractor(mode Mode, opts Options, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{Mode: mode, Opts: opts.withDefaults(), Log: log}
}

// Points extracts the point-cloud output: every object's points
// concatenated in selection order, deduplicated, and (in profile mode)
// closed into an explicit ring.
func (x *Extractor) Points(objs []scene.Object) ([]Coord, error) {
	var all []Coord
	for _, obj := range objs {
		c, err := obj.Curve()
		if err != nil {
			x.Log.Warn("skipping object", "id", obj.ID, "error", err)
			continue
		}
		all = append(all, x.curvePoints(c)...)
	}
	if len(all) == 0 {
		return nil, ErrEmpty
	}
	out := Dedup(all, x.Mode, x.Opts.Tolerance)
	if x.Mode == Profile {
		out = CloseProfile(out, x.Opts.Tolerance)
	}
	return out, nil
}

// curvePoints dispatches on the curve's concrete type. Circles go first:
// they satisfy the closed-polyline and arc shapes' roles too, and need
// their own explode-then-approximate treatment.
func (x *Extractor) curvePoints(c geom.Curve) []Coord {
	switch cc := unwrap(c).(type) {
	case geom.Circle:
		return x.circlePoints(cc)
	case geom.Polyline:
		return x.polylinePoints(cc, c.Closed())
	case geom.Arc:
		return x.samplePoints(cc, x.Opts.ArcSamples)
	default:
		return x.samplePoints(c, x.autoSamples(c))
	}
}

// circlePoints extracts a circle by, in order of preference: exploding it
// into arcs and extracting those, approximating it as a bounded polyline,
// or sampling it like any other curve.
func (x *Extractor) circlePoints(c geom.Curve) []Coord {
	if ex, ok := c.(geom.Exploder); ok {
		if pieces := ex.Explode(); len(pieces) > 0 {
			var all []Coord
			for _, piece := range pieces {
				all = append(all, x.curvePoints(piece)...)
			}
			return all
		}
	}
	if ap, ok := c.(geom.PolylineApproximator); ok {
		if pl, ok := ap.ApproxPolyline(x.Opts.Approx.geomOptions()); ok {
			return x.polylinePoints(pl, pl.Closed())
		}
	}
	return x.samplePoints(c, x.autoSamples(c))
}

// polylinePoints uses the stored vertices directly, never sampling. A
// closed polyline whose stored endpoints differ gets its first vertex
// appended.
func (x *Extractor) polylinePoints(pl geom.Polyline, closed bool) []Coord {
	v := pl.Vertices()
	out := make([]Coord, 0, len(v)+1)
	for _, pt := range v {
		out = append(out, x.coord(pt))
	}
	if closed && len(out) > 0 && !coordEqual(out[0], out[len(out)-1]) {
		out = append(out, out[0])
	}
	return out
}

// samplePoints evaluates n+1 evenly spaced parameters across the curve's
// domain.
func (x *Extractor) samplePoints(c geom.Curve, n int) []Coord {
	if n < 1 {
		n = 1
	}
	t0, t1 := c.Domain()
	out := make([]Coord, 0, n+1)
	for i := 0; i <= n; i++ {
		t := t0 + (t1-t0)*float64(i)/float64(n)
		out = append(out, x.coord(c.Eval(t)))
	}
	return out
}

// autoSamples picks a sample count from the curve's length: at least 20,
// or roughly 10 per length unit.
func (x *Extractor) autoSamples(c geom.Curve) int {
	if x.Opts.Samples > 0 {
		return x.Opts.Samples
	}
	length := geom.Arclen(c, geom.DefaultAccuracy)
	return max(20, int(length*10))
}

func (x *Extractor) coord(p geom.Point) Coord {
	if x.Mode == Profile {
		return Coord{p.X, p.Y}
	}
	return Coord{p.X, p.Y, p.Z}
}

// unwrap strips a closed-flag wrapper for type dispatch. The wrapper's
// Closed answer is still taken from the original curve.
func unwrap(c geom.Curve) geom.Curve {
	if mc, ok := c.(geom.MarkClosed); ok {
		return mc.Curve
	}
	return c
}

// Dedup walks the sequence once, keeping a point only if its distance
// from the last kept point exceeds tol. The first point is always kept.
// Distance is 2D in profile mode and 3D in path mode.
func Dedup(pts []Coord, mode Mode, tol float64) []Coord {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Coord, 0, len(pts))
	out = append(out, pts[0])
	for _, pt := range pts[1:] {
		if coordDist(out[len(out)-1], pt, mode) > tol {
			out = append(out, pt)
		}
	}
	return out
}

// CloseProfile appends the first point when a profile of at least 3
// points has a closing gap larger than tol, guaranteeing an explicitly
// closed ring.
func CloseProfile(pts []Coord, tol float64) []Coord {
	if len(pts) <= 2 {
		return pts
	}
	if coordDist(pts[0], pts[len(pts)-1], Profile) > tol {
		pts = append(pts, pts[0])
	}
	return pts
}

func coordDist(a, b Coord, mode Mode) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	if mode == Profile {
		return math.Hypot(dx, dy)
	}
	dz := coordZ(b) - coordZ(a)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func coordZ(c Coord) float64 {
	if len(c) > 2 {
		return c[2]
	}
	return 0
}

func coordEqual(a, b Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
