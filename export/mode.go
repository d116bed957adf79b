// Package export turns selected scene curves into the JSON files the
// loft visualizer consumes: either a flat point cloud or a compact list
// of typed segment records.
package export

import (
	"fmt"
	"strings"
)

// Mode selects the output convention: profiles are 2D cross sections
// serialized as [x, y], paths are guide curves serialized as [x, y, z].
type Mode int

const (
	Profile Mode = iota
	Path
)

func (m Mode) String() string {
	switch m {
	case Profile:
		return "profile"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Dims returns the coordinate arity of the mode.
func (m Mode) Dims() int {
	if m == Profile {
		return 2
	}
	return 3
}

// DefaultFilename returns the conventional output filename for the mode.
func (m Mode) DefaultFilename() string {
	return m.String() + ".json"
}

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "profile":
		return Profile, nil
	case "path":
		return Path, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want profile or path)", s)
	}
}
