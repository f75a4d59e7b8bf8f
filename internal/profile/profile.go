package profile

import (
	"fmt"
	"sort"
)

// Composite modes for pasting the cropped cutout onto the padded canvas.
const (
	// CompositeMask blends every channel, alpha included, with the
	// cutout's own alpha as mask.
	CompositeMask = "mask"
	// CompositeOver does Porter-Duff source-over; alpha is kept as is.
	CompositeOver = "over"
)

// DefaultName is the profile used when none is requested.
const DefaultName = "scan"

// Profile defines cutout parameters for a kind of source scan.
type Profile struct {
	Name        string
	WhiteCutoff uint8  // min channel at or above this is background
	SoftCutoff  uint8  // min channel in [SoftCutoff, WhiteCutoff) fades out
	Padding     int    // transparent border on each side, in pixels
	Composite   string // CompositeMask or CompositeOver
}

// Built-in profiles.
var profiles = map[string]Profile{
	"scan": {
		Name:        "scan",
		WhiteCutoff: 242,
		SoftCutoff:  230,
		Padding:     12,
		Composite:   CompositeMask,
	},
	// Phone photos of paper usually have a grey cast.
	"photo": {
		Name:        "photo",
		WhiteCutoff: 215,
		SoftCutoff:  190,
		Padding:     12,
		Composite:   CompositeMask,
	},
	"tight": {
		Name:        "tight",
		WhiteCutoff: 242,
		SoftCutoff:  230,
		Padding:     0,
		Composite:   CompositeOver,
	},
}

// Get returns a profile by name. Falls back to the scan profile if unknown;
// the returned Name is then DefaultName, so manifests record what was used.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	return profiles[DefaultName]
}

// Names lists the built-in profile names in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Validate reports parameter combinations the cutout cannot honour.
func (p Profile) Validate() error {
	if p.SoftCutoff > p.WhiteCutoff {
		return fmt.Errorf("profile %q: soft cutoff %d above white cutoff %d",
			p.Name, p.SoftCutoff, p.WhiteCutoff)
	}
	if p.Padding < 0 {
		return fmt.Errorf("profile %q: negative padding %d", p.Name, p.Padding)
	}
	switch p.Composite {
	case CompositeMask, CompositeOver:
	default:
		return fmt.Errorf("profile %q: unknown composite mode %q", p.Name, p.Composite)
	}
	return nil
}
