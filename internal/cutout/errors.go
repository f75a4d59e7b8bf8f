package cutout

import "errors"

// Error kinds. All of them are fatal for the asset being processed.
var (
	// ErrMissingInput means the source file does not exist.
	ErrMissingInput = errors.New("missing input asset")
	// ErrPixelAccess means the decoded image has no addressable pixels.
	ErrPixelAccess = errors.New("cannot access pixels")
	// ErrFullyTransparent means every pixel was classified as background.
	ErrFullyTransparent = errors.New("all pixels became transparent")
)
