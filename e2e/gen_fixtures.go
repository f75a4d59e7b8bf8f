//go:build ignore

// gen_fixtures creates synthetic signature and stamp scans for a smoke run.
// Usage: go run gen_fixtures.go <brand_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <brand_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	writeJPEG(filepath.Join(dir, "company-signature.jpeg"), signature(600, 240))
	writeJPEG(filepath.Join(dir, "company-stamp.jpeg"), stamp(400, 400))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 2 fixtures in %s\n", dir)
}

// paper is a slightly noisy off-white, the way a flatbed scan looks.
func paper(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(246 + (x*7+y*13)%8)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v - 2, A: 255})
		}
	}
	return img
}

// signature draws a thick blue sine stroke across the middle.
func signature(w, h int) *image.NRGBA {
	img := paper(w, h)
	ink := color.NRGBA{R: 20, G: 40, B: 120, A: 255}
	for x := w / 8; x < w*7/8; x++ {
		cy := float64(h)/2 + math.Sin(float64(x)/30)*float64(h)/6
		for dy := -3; dy <= 3; dy++ {
			img.SetNRGBA(x, int(cy)+dy, ink)
		}
	}
	return img
}

// stamp draws a red ring.
func stamp(w, h int) *image.NRGBA {
	img := paper(w, h)
	ink := color.NRGBA{R: 190, G: 30, B: 40, A: 255}
	cx, cy := float64(w)/2, float64(h)/2
	outer, inner := float64(w)/3, float64(w)/3-14
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if d <= outer && d >= inner {
				img.SetNRGBA(x, y, ink)
			}
		}
	}
	return img
}

func writeJPEG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		fmt.Fprintf(os.Stderr, "encode %s: %v\n", path, err)
		os.Exit(1)
	}
}
