package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/AnyUserName/brandclean/internal/cutout"
	"github.com/AnyUserName/brandclean/internal/encoder"
	"github.com/AnyUserName/brandclean/internal/manifest"
)

// processTask cleans a single scan into its destination asset.
func processTask(t Task, opts cutout.Options) (*cutout.Result, error) {
	r, err := cutout.CleanFile(t.Source, t.Dest, opts)
	if err != nil {
		return nil, fmt.Errorf("clean %s: %w", filepath.Base(t.Source), err)
	}
	return r, nil
}

// buildManifest records results with paths relative to baseDir.
func buildManifest(results []*cutout.Result, opts cutout.Options, baseDir string) (*manifest.Manifest, error) {
	p := opts.Profile
	m := manifest.New(manifest.ProfileInfo{
		Name:        p.Name,
		WhiteCutoff: int(p.WhiteCutoff),
		SoftCutoff:  int(p.SoftCutoff),
		Padding:     p.Padding,
		Composite:   p.Composite,
	})

	var enc encoder.Encoder = &encoder.PNGEncoder{}
	if opts.Encoder != nil {
		enc = opts.Encoder
	}
	format := enc.Format()

	for _, r := range results {
		key, err := relPath(baseDir, r.Dest)
		if err != nil {
			return nil, err
		}
		src, err := relPath(baseDir, r.Source)
		if err != nil {
			return nil, err
		}
		m.Assets[key] = manifest.Asset{
			Source: manifest.SourceInfo{
				Path: src,
				Size: r.SourceSize,
				Hash: r.SourceHash,
			},
			Format: format,
			Width:  r.Width,
			Height: r.Height,
			BBox:   [4]int{r.BBox.Min.X, r.BBox.Min.Y, r.BBox.Max.X, r.BBox.Max.Y},
			Size:   r.Size,
			Hash:   r.Hash,
		}
	}

	m.ComputeStats()
	return m, nil
}

func relPath(base, target string) (string, error) {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
