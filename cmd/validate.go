package cmd

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AnyUserName/brandclean/internal/hasher"
	"github.com/AnyUserName/brandclean/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a manifest and check the generated assets on disk",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]

	m, err := manifest.ReadJSON(manifestPath)
	if err != nil {
		return err
	}

	baseDir := filepath.Dir(manifestPath)
	errs, warnings := validateManifest(m, baseDir)

	out := cmd.OutOrStdout()
	for _, w := range warnings {
		fmt.Fprintf(out, "  ! %s\n", w)
	}

	if len(errs) == 0 {
		fmt.Fprintln(out, "  ✓ Manifest is valid")
		fmt.Fprintf(out, "  ✓ %d assets, all files present\n", m.Stats.TotalAssets)
		return nil
	}

	fmt.Fprintf(out, "  ✗ Manifest has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(out, "    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

// validateManifest checks every asset against the files in baseDir.
// Warnings report sources that changed since the assets were built.
func validateManifest(m *manifest.Manifest, baseDir string) (errs, warnings []string) {
	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	for key, a := range m.Assets {
		if a.Width <= 2*m.Profile.Padding || a.Height <= 2*m.Profile.Padding {
			errs = append(errs, fmt.Sprintf("asset %q: dimensions %dx%d leave no room for content",
				key, a.Width, a.Height))
		}
		if a.BBox[2] <= a.BBox[0] || a.BBox[3] <= a.BBox[1] {
			errs = append(errs, fmt.Sprintf("asset %q: empty bbox %v", key, a.BBox))
		}
		if a.Hash == "" {
			errs = append(errs, fmt.Sprintf("asset %q: missing hash", key))
		}

		fullPath := filepath.Join(baseDir, key)
		hash, size, err := hasher.FileHash(fullPath, len(a.Hash))
		if err != nil {
			errs = append(errs, fmt.Sprintf("asset %q: file not found: %v", key, err))
			continue
		}
		if size != a.Size {
			errs = append(errs, fmt.Sprintf("asset %q: size mismatch: manifest=%d, disk=%d", key, a.Size, size))
		}
		if a.Hash != "" && hash != a.Hash {
			errs = append(errs, fmt.Sprintf("asset %q: hash mismatch: manifest=%s, disk=%s", key, a.Hash, hash))
		}

		if w, h, err := decodeSize(fullPath); err != nil {
			errs = append(errs, fmt.Sprintf("asset %q: %v", key, err))
		} else if w != a.Width || h != a.Height {
			errs = append(errs, fmt.Sprintf("asset %q: dimensions mismatch: manifest=%dx%d, disk=%dx%d",
				key, a.Width, a.Height, w, h))
		}

		if a.Source.Path == "" {
			continue
		}
		srcHash, _, err := hasher.FileHash(filepath.Join(baseDir, a.Source.Path), len(a.Source.Hash))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			warnings = append(warnings, fmt.Sprintf("asset %q: source %s no longer exists", key, a.Source.Path))
		case err != nil:
			warnings = append(warnings, fmt.Sprintf("asset %q: read source: %v", key, err))
		case srcHash != a.Source.Hash:
			warnings = append(warnings, fmt.Sprintf("asset %q: source %s changed since build", key, a.Source.Path))
		}
	}

	if m.Stats.TotalAssets != len(m.Assets) {
		errs = append(errs, fmt.Sprintf("stats.total_assets mismatch: %d != %d", m.Stats.TotalAssets, len(m.Assets)))
	}

	return errs, warnings
}

func decodeSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
