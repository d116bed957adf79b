package export

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boreddesign/cloud-path/geom"
)

// Options tune the extraction. The zero value of any field falls back to
// its default; see [DefaultOptions].
type Options struct {
	// Samples fixes the sample count for free-form curves. 0 picks the
	// count from the curve's length: max(20, ⌊length·10⌋).
	Samples int `yaml:"samples"`
	// ArcSamples is the sample count for arcs.
	ArcSamples int `yaml:"arc_samples"`
	// Tolerance is the minimum distance between consecutive output
	// points, and the gap below which a profile counts as closed.
	Tolerance float64 `yaml:"tolerance"`
	// Approx bounds the chord approximation used for circles that
	// cannot be exploded.
	Approx ApproxConfig `yaml:"approx"`
}

// ApproxConfig mirrors [geom.ApproxOptions] for YAML options files.
type ApproxConfig struct {
	AngleTolDeg float64 `yaml:"angle_tol_deg"`
	Tolerance   float64 `yaml:"tolerance"`
	MinEdges    int     `yaml:"min_edges"`
	MaxEdges    int     `yaml:"max_edges"`
}

func (a ApproxConfig) geomOptions() geom.ApproxOptions {
	return geom.ApproxOptions{
		AngleTolDeg: a.AngleTolDeg,
		Tolerance:   a.Tolerance,
		MinEdges:    a.MinEdges,
		MaxEdges:    a.MaxEdges,
	}
}

// DefaultOptions returns the stock extraction options.
func DefaultOptions() Options {
	return Options{
		ArcSamples: 32,
		Tolerance:  0.001,
		Approx: ApproxConfig{
			AngleTolDeg: 5,
			Tolerance:   0.01,
			MinEdges:    16,
			MaxEdges:    64,
		},
	}
}

// LoadOptions reads an options YAML file layered over the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read options: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse options: %w", err)
	}
	return opts.withDefaults(), nil
}

// withDefaults fills zeroed fields back in, so a sparse options file
// cannot disable sampling or deduplication outright.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ArcSamples <= 0 {
		o.ArcSamples = def.ArcSamples
	}
	if o.Tolerance <= 0 {
		o.Tolerance = def.Tolerance
	}
	if o.Approx.AngleTolDeg <= 0 {
		o.Approx.AngleTolDeg = def.Approx.AngleTolDeg
	}
	if o.Approx.Tolerance <= 0 {
		o.Approx.Tolerance = def.Approx.Tolerance
	}
	if o.Approx.MinEdges <= 0 {
		o.Approx.MinEdges = def.Approx.MinEdges
	}
	if o.Approx.MaxEdges <= 0 {
		o.Approx.MaxEdges = def.Approx.MaxEdges
	}
	return o
}
