package cutout

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AnyUserName/brandclean/internal/encoder"
	"github.com/AnyUserName/brandclean/internal/hasher"
	"github.com/AnyUserName/brandclean/internal/profile"
	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Options configures how a source scan is turned into a cutout.
type Options struct {
	Profile profile.Profile
	// AutoOrient applies the EXIF orientation tag before processing.
	AutoOrient bool
	// Encoder writes the result. Defaults to PNG.
	Encoder encoder.Encoder
	Logger  *zap.Logger
}

// Result describes one generated asset.
type Result struct {
	Source     string
	Dest       string
	SourceSize int64
	SourceHash string
	Width      int
	Height     int
	// BBox is the visible region in source pixel coordinates.
	BBox image.Rectangle
	Size int64
	Hash string
}

// Clean classifies background pixels of img as transparent, crops to the
// visible content and pads it with a transparent border. It returns the
// padded canvas and the visible region in img's coordinate space.
func Clean(img image.Image, p profile.Profile) (*image.NRGBA, image.Rectangle, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, image.Rectangle{}, ErrPixelAccess
	}
	if err := p.Validate(); err != nil {
		return nil, image.Rectangle{}, err
	}

	// Clone always yields an NRGBA with origin (0,0).
	rgba := imaging.Clone(img)
	applyAlpha(rgba, Cutoffs{White: p.WhiteCutoff, Soft: p.SoftCutoff})

	box, ok := visibleBounds(rgba)
	if !ok {
		return nil, image.Rectangle{}, ErrFullyTransparent
	}

	trimmed := imaging.Crop(rgba, box)
	pad := p.Padding
	canvas := imaging.New(trimmed.Bounds().Dx()+pad*2, trimmed.Bounds().Dy()+pad*2, color.NRGBA{})

	at := image.Pt(pad, pad)
	switch p.Composite {
	case profile.CompositeOver:
		canvas = imaging.Overlay(canvas, trimmed, at, 1.0)
	default:
		pasteMasked(canvas, trimmed, at)
	}

	return canvas, box.Add(img.Bounds().Min), nil
}

// CleanFile reads the scan at src, cleans it and writes the encoded result
// to dst. The destination is replaced atomically.
func CleanFile(src, dst string, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	enc := opts.Encoder
	if enc == nil {
		enc = &encoder.PNGEncoder{}
	}

	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, src)
		}
		return nil, fmt.Errorf("stat %s: %w", src, err)
	}

	raw, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(opts.AutoOrient))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	log.Debug("decoded source",
		zap.String("src", src),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)

	out, box, err := Clean(img, opts.Profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, src)
	}
	log.Debug("cropped to content",
		zap.String("src", src),
		zap.Stringer("bbox", box),
		zap.Int("padding", opts.Profile.Padding),
	)

	data, err := enc.Encode(out)
	if err != nil {
		return nil, fmt.Errorf("encode %s as %s: %w", dst, enc.Format(), err)
	}
	if err := writeFileAtomic(dst, data); err != nil {
		return nil, fmt.Errorf("write %s: %w", dst, err)
	}

	return &Result{
		Source:     src,
		Dest:       dst,
		SourceSize: int64(len(raw)),
		SourceHash: hasher.ContentHash(raw, 16),
		Width:      out.Bounds().Dx(),
		Height:     out.Bounds().Dy(),
		BBox:       box,
		Size:       int64(len(data)),
		Hash:       hasher.ContentHash(data, 16),
	}, nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place, so a failed run never leaves a truncated asset behind.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
