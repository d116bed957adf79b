// Package scene models the geometry documents the exporter reads: a flat
// list of curve objects with identity, layer, and a tagged geometry
// payload. Documents are stored as JSON or YAML; the format is picked by
// file extension.
package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a loaded scene file.
type Document struct {
	// Units names the document's length unit. It is informational only;
	// all coordinates pass through unscaled.
	Units   string   `json:"units,omitempty" yaml:"units,omitempty"`
	Objects []Object `json:"objects" yaml:"objects"`
}

// Load reads a scene document from a file. Files ending in .yaml or .yml
// are parsed as YAML, everything else as JSON.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return LoadJSON(f)
	}
}

// LoadJSON reads a JSON scene document.
func LoadJSON(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &doc, nil
}

// LoadYAML reads a YAML scene document.
func LoadYAML(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &doc, nil
}

// Selection narrows a document to a set of objects. Empty fields do not
// constrain; an entirely empty selection selects every object.
type Selection struct {
	IDs    []string
	Layers []string
}

// Select returns the document's objects matching the selection, in
// document order.
func (d *Document) Select(sel Selection) []Object {
	if len(sel.IDs) == 0 && len(sel.Layers) == 0 {
		return slices.Clone(d.Objects)
	}
	var out []Object
	for _, obj := range d.Objects {
		if len(sel.IDs) > 0 && !slices.Contains(sel.IDs, obj.ID) {
			continue
		}
		if len(sel.Layers) > 0 && !slices.Contains(sel.Layers, obj.Layer) {
			continue
		}
		out = append(out, obj)
	}
	return out
}
