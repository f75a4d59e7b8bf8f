package cmd

import (
	"fmt"
	"slices"

	"github.com/AnyUserName/brandclean/internal/cutout"
	"github.com/AnyUserName/brandclean/internal/encoder"
	"github.com/AnyUserName/brandclean/internal/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	profileName string
	padding     int
	composite   string
	outFormat   string
	autoOrient  bool
)

// addCutoutFlags registers the processing flags shared by every command
// that writes assets.
func addCutoutFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVarP(&profileName, "profile", "p", profile.DefaultName, fmt.Sprintf("cutout profile %v", profile.Names()))
	f.IntVar(&padding, "padding", -1, "transparent border in pixels (-1 = profile default)")
	f.StringVar(&composite, "composite", "", "paste mode: mask or over (empty = profile default)")
	f.StringVarP(&outFormat, "format", "f", "png", "output format: png or webp")
	f.BoolVar(&autoOrient, "auto-orient", false, "apply EXIF orientation before processing")
}

// cutoutOptions resolves the processing flags into cutout options.
func cutoutOptions() (cutout.Options, error) {
	if !slices.Contains(profile.Names(), profileName) {
		logger.Warn("unknown profile, using defaults",
			zap.String("profile", profileName),
			zap.String("default", profile.DefaultName),
		)
	}
	prof := profile.Get(profileName)
	if padding >= 0 {
		prof.Padding = padding
	}
	if composite != "" {
		prof.Composite = composite
	}
	if err := prof.Validate(); err != nil {
		return cutout.Options{}, err
	}

	registry := encoder.NewRegistry()
	logger.Debug(registry.String())
	enc, err := registry.Lookup(outFormat)
	if err != nil {
		return cutout.Options{}, err
	}

	logger.Debug("profile",
		zap.String("name", prof.Name),
		zap.Uint8("white_cutoff", prof.WhiteCutoff),
		zap.Uint8("soft_cutoff", prof.SoftCutoff),
		zap.Int("padding", prof.Padding),
		zap.String("composite", prof.Composite),
	)

	return cutout.Options{
		Profile:    prof,
		AutoOrient: autoOrient,
		Encoder:    enc,
		Logger:     logger,
	}, nil
}
