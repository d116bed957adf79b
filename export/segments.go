package export

import (
	"github.com/boreddesign/cloud-path/geom"
	"github.com/boreddesign/cloud-path/scene"
)

// Segment is one record of the compact output schema. Type is always
// present; everything else is best effort and omitted when it could not
// be extracted. Circles carry center/radius instead of endpoints.
type Segment struct {
	Type      string   `json:"type"`
	Start     Coord    `json:"start,omitempty"`
	End       Coord    `json:"end,omitempty"`
	Center    Coord    `json:"center,omitempty"`
	Radius    *float64 `json:"radius,omitempty"`
	Clockwise *bool    `json:"clockwise,omitempty"`
	Closed    *bool    `json:"closed,omitempty"`
}

// Segments extracts the compact segment output: one record per object,
// in selection order. Failed objects are logged and skipped.
func (x *Extractor) Segments(objs []scene.Object) ([]Segment, error) {
	var out []Segment
	for _, obj := range objs {
		c, err := obj.Curve()
		if err != nil {
			x.Log.Warn("skipping object", "id", obj.ID, "error", err)
			continue
		}
		out = append(out, x.segment(c))
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

func (x *Extractor) segment(c geom.Curve) Segment {
	// Circular curves take precedence: a closed one is a circle, an open
	// one an arc. Both keep whatever circle parameters could be read.
	if ci, ok := unwrap(c).(geom.Circular); ok {
		if c.Closed() {
			seg := Segment{Type: scene.TypeCircle, Closed: ptr(true)}
			x.circularFields(&seg, ci)
			return seg
		}
		seg := Segment{
			Type:  scene.TypeArc,
			Start: x.coord(c.Start()),
			End:   x.coord(c.End()),
		}
		x.circularFields(&seg, ci)
		return seg
	}

	switch cc := unwrap(c).(type) {
	case geom.Line:
		return Segment{
			Type:  scene.TypeLine,
			Start: x.coord(cc.P0),
			End:   x.coord(cc.P1),
		}

	case geom.Polyline:
		// A polyline with vertices is described by them directly, with
		// no closed flag. One with fewer than two vertices falls
		// through to the generic description below.
		if v := cc.Vertices(); len(v) >= 2 {
			return Segment{
				Type:  scene.TypePolyline,
				Start: x.coord(v[0]),
				End:   x.coord(v[len(v)-1]),
			}
		}
	}

	t0, t1 := c.Domain()
	seg := Segment{
		Type:  scene.TypeCurve,
		Start: x.coord(c.Eval(t0)),
		End:   x.coord(c.Eval(t1)),
	}
	if c.Closed() {
		seg.Closed = ptr(true)
	}
	return seg
}

// circularFields fills in the circle parameters that could be read.
// Winding is taken from the sign of the plane normal's Z component, in
// 2D and 3D mode alike.
func (x *Extractor) circularFields(seg *Segment, c geom.Circular) {
	if center, radius, ok := c.CircleParams(); ok {
		seg.Center = x.coord(center)
		seg.Radius = &radius
	}
	if pl, ok := c.SupportPlane(); ok {
		seg.Clockwise = ptr(pl.Normal.Z < 0)
	}
}

func ptr[T any](v T) *T {
	return &v
}
