package manifest

// Manifest lists the cleaned assets produced by one prepare run.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     ProfileInfo      `json:"profile"`
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// ProfileInfo records the cutout parameters the assets were built with.
type ProfileInfo struct {
	Name        string `json:"name"`
	WhiteCutoff int    `json:"white_cutoff"`
	SoftCutoff  int    `json:"soft_cutoff"`
	Padding     int    `json:"padding"`
	Composite   string `json:"composite"`
}

// Asset describes one source scan and the transparent asset made from it.
// Assets are keyed by output path relative to the manifest.
type Asset struct {
	Source SourceInfo `json:"source"`
	Format string     `json:"format"` // "png" or "webp"
	Width  int        `json:"width"`
	Height int        `json:"height"`
	BBox   [4]int     `json:"bbox"` // left, top, right, bottom in source pixels
	Size   int64      `json:"size"` // bytes on disk
	Hash   string     `json:"hash"` // first 16 hex chars of xxhash64
}

// SourceInfo holds metadata about the source scan.
type SourceInfo struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
	Hash string `json:"hash"`
}

// Stats aggregates run metrics.
type Stats struct {
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalAssets      int   `json:"total_assets"`
}

// DefaultFileName is the manifest name looked up inside a directory.
const DefaultFileName = "brand.manifest.json"

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
