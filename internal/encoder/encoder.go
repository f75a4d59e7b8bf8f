package encoder

import (
	"image"
)

// Encoder encodes a cutout image to a format that keeps alpha.
type Encoder interface {
	// Format returns the output format name ("png" or "webp").
	Format() string

	// Encode converts the image to bytes.
	Encode(img image.Image) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp) may not be installed.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string
}
