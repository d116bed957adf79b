package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/boreddesign/cloud-path/geom"
)

// Geometry type tags accepted in scene documents.
const (
	TypeLine     = "line"
	TypePolyline = "polyline"
	TypeArc      = "arc"
	TypeCircle   = "circle"
	TypeCurve    = "curve"
)

// ErrUnknownType is returned by [Object.Curve] for a type tag the
// exporter does not recognize.
var ErrUnknownType = errors.New("unknown geometry type")

// Object is one curve entry in a scene document. Which geometry fields
// are meaningful depends on Type; coordinates are [x, y] or [x, y, z],
// with z defaulting to 0. Angles are stored in degrees.
type Object struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Layer string `json:"layer,omitempty" yaml:"layer,omitempty"`
	Type  string `json:"type" yaml:"type"`

	// polyline
	Points [][]float64 `json:"points,omitempty" yaml:"points,omitempty"`
	// line
	Start []float64 `json:"start,omitempty" yaml:"start,omitempty"`
	End   []float64 `json:"end,omitempty" yaml:"end,omitempty"`
	// arc, circle
	Center     []float64 `json:"center,omitempty" yaml:"center,omitempty"`
	Normal     []float64 `json:"normal,omitempty" yaml:"normal,omitempty"`
	Radius     float64   `json:"radius,omitempty" yaml:"radius,omitempty"`
	StartAngle float64   `json:"start_angle,omitempty" yaml:"start_angle,omitempty"`
	SweepAngle float64   `json:"sweep_angle,omitempty" yaml:"sweep_angle,omitempty"`
	// curve: cubic Bézier control points, 3n+1 of them
	Controls [][]float64 `json:"controls,omitempty" yaml:"controls,omitempty"`

	// Closed marks the curve as closed even when its stored endpoints do
	// not coincide, mirroring hosts that track closure as a flag.
	Closed bool `json:"closed,omitempty" yaml:"closed,omitempty"`
}

// Curve builds the kernel curve the object describes.
func (o Object) Curve() (geom.Curve, error) {
	cv, err := o.curve()
	if err != nil {
		return nil, err
	}
	if o.Closed && !cv.Closed() {
		cv = geom.MarkClosed{Curve: cv}
	}
	return cv, nil
}

func (o Object) curve() (geom.Curve, error) {
	switch o.Type {
	case TypeLine:
		p0, err := coordPoint(o.Start)
		if err != nil {
			return nil, fmt.Errorf("line start: %w", err)
		}
		p1, err := coordPoint(o.End)
		if err != nil {
			return nil, fmt.Errorf("line end: %w", err)
		}
		return geom.Line{P0: p0, P1: p1}, nil

	case TypePolyline:
		if len(o.Points) < 2 {
			return nil, fmt.Errorf("polyline needs at least 2 points, got %d", len(o.Points))
		}
		pl := make(geom.Polyline, len(o.Points))
		for i, c := range o.Points {
			pt, err := coordPoint(c)
			if err != nil {
				return nil, fmt.Errorf("polyline point %d: %w", i, err)
			}
			pl[i] = pt
		}
		return pl, nil

	case TypeArc:
		pl, err := o.plane()
		if err != nil {
			return nil, err
		}
		if o.Radius <= 0 {
			return nil, fmt.Errorf("arc radius must be positive, got %g", o.Radius)
		}
		if o.SweepAngle == 0 {
			return nil, errors.New("arc sweep angle must be nonzero")
		}
		return geom.Arc{
			Plane:      pl,
			Radius:     o.Radius,
			StartAngle: o.StartAngle * math.Pi / 180,
			SweepAngle: o.SweepAngle * math.Pi / 180,
		}, nil

	case TypeCircle:
		pl, err := o.plane()
		if err != nil {
			return nil, err
		}
		if o.Radius <= 0 {
			return nil, fmt.Errorf("circle radius must be positive, got %g", o.Radius)
		}
		return geom.Circle{Plane: pl, Radius: o.Radius}, nil

	case TypeCurve:
		n := len(o.Controls)
		if n < 4 || n%3 != 1 {
			return nil, fmt.Errorf("curve needs 3n+1 control points, got %d", n)
		}
		pts := make([]geom.Point, n)
		for i, c := range o.Controls {
			pt, err := coordPoint(c)
			if err != nil {
				return nil, fmt.Errorf("curve control %d: %w", i, err)
			}
			pts[i] = pt
		}
		s := make(geom.Spline, 0, (n-1)/3)
		for i := 0; i+3 < n; i += 3 {
			s = append(s, geom.CubicBez{P0: pts[i], P1: pts[i+1], P2: pts[i+2], P3: pts[i+3]})
		}
		return s, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, o.Type)
	}
}

// plane builds the supporting plane for arc and circle objects. A missing
// normal defaults to +Z.
func (o Object) plane() (geom.Plane, error) {
	center, err := coordPoint(o.Center)
	if err != nil {
		return geom.Plane{}, fmt.Errorf("center: %w", err)
	}
	if len(o.Normal) == 0 {
		return geom.XYPlane(center), nil
	}
	n, err := coordVec(o.Normal)
	if err != nil {
		return geom.Plane{}, fmt.Errorf("normal: %w", err)
	}
	pl := geom.NewPlane(center, n)
	if pl.IsDegenerate() {
		return geom.Plane{}, fmt.Errorf("normal %v is degenerate", o.Normal)
	}
	return pl, nil
}

func coordPoint(c []float64) (geom.Point, error) {
	switch len(c) {
	case 2:
		return geom.Pt(c[0], c[1], 0), nil
	case 3:
		return geom.Pt(c[0], c[1], c[2]), nil
	default:
		return geom.Point{}, fmt.Errorf("coordinate needs 2 or 3 components, got %d", len(c))
	}
}

func coordVec(c []float64) (geom.Vec3, error) {
	pt, err := coordPoint(c)
	if err != nil {
		return geom.Vec3{}, err
	}
	return geom.Vec3(pt), nil
}
