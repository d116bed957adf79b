package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"profile", Profile, false},
		{"PROFILE", Profile, false},
		{"Path", Path, false},
		{" path ", Path, false},
		{"loft", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q): err = %v", tt.in, err)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestModeConventions(t *testing.T) {
	if Profile.Dims() != 2 || Path.Dims() != 3 {
		t.Error("mode arity mismatch")
	}
	if Profile.DefaultFilename() != "profile.json" || Path.DefaultFilename() != "path.json" {
		t.Error("default filename mismatch")
	}
}

func TestLoadOptionsLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	body := "arc_samples: 64\napprox:\n  max_edges: 32\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.ArcSamples != 64 {
		t.Errorf("got arc_samples %d, expected 64", opts.ArcSamples)
	}
	if opts.Approx.MaxEdges != 32 {
		t.Errorf("got max_edges %d, expected 32", opts.Approx.MaxEdges)
	}
	// Untouched fields keep their defaults.
	if opts.Tolerance != 0.001 {
		t.Errorf("got tolerance %v, expected 0.001", opts.Tolerance)
	}
	if opts.Approx.MinEdges != 16 {
		t.Errorf("got min_edges %d, expected 16", opts.Approx.MinEdges)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error")
	}
}
