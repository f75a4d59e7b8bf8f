package cutout

import (
	"image"
	"math"
)

// Default cutoffs for white paper scans.
const (
	WhiteCutoff = 242
	SoftCutoff  = 230
)

// Cutoffs controls how pixel brightness maps to opacity.
type Cutoffs struct {
	White uint8 // min channel at or above White is fully transparent
	Soft  uint8 // min channel below Soft is fully opaque
}

// DefaultCutoffs are the cutoffs used by AlphaFromRGB.
var DefaultCutoffs = Cutoffs{White: WhiteCutoff, Soft: SoftCutoff}

// AlphaFromRGB classifies a pixel using DefaultCutoffs.
func AlphaFromRGB(r, g, b uint8) uint8 {
	return DefaultCutoffs.Alpha(r, g, b)
}

// Alpha returns the opacity for a pixel from its darkest channel.
// Between Soft and White the alpha falls off linearly from 255 to 0,
// rounded half to even. A min channel equal to Soft maps to 255.
func (c Cutoffs) Alpha(r, g, b uint8) uint8 {
	m := min(r, g, b)
	if m >= c.White {
		return 0
	}
	if m >= c.Soft {
		span := float64(c.White - c.Soft)
		weight := float64(c.White-m) / span
		a := math.RoundToEven(weight * 255)
		return uint8(max(0, min(255, a)))
	}
	return 255
}

// applyAlpha rewrites the alpha channel of every pixel in place.
// RGB is left untouched.
func applyAlpha(img *image.NRGBA, c Cutoffs) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		row := img.Pix[i : i+b.Dx()*4]
		for j := 0; j < len(row); j += 4 {
			row[j+3] = c.Alpha(row[j], row[j+1], row[j+2])
		}
	}
}

// visibleBounds returns the smallest rectangle holding every pixel with
// non-zero alpha. ok is false when there is none.
func visibleBounds(img *image.NRGBA) (r image.Rectangle, ok bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x, i = x+1, i+4 {
			if img.Pix[i+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}

	if maxX < minX || maxY < minY {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
