package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManifestRoundtrip(t *testing.T) {
	m := New(ProfileInfo{Name: "scan", WhiteCutoff: 242, SoftCutoff: 230, Padding: 12, Composite: "mask"})
	m.Assets["company-stamp-clean.png"] = Asset{
		Source: SourceInfo{Path: "company-stamp.jpeg", Size: 120000, Hash: "0123456789abcdef"},
		Format: "png",
		Width:  224, Height: 124,
		BBox: [4]int{40, 30, 240, 130},
		Size: 9000,
		Hash: "fedcba9876543210",
	}

	// Write to temp file.
	dir := t.TempDir()
	path := filepath.Join(dir, "brand.manifest.json")
	if err := WriteJSON(m, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	m2, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if m2.Version != SupportedManifestVersion {
		t.Errorf("version: got %d, want %d", m2.Version, SupportedManifestVersion)
	}
	if m2.Profile.Name != "scan" || m2.Profile.Padding != 12 {
		t.Errorf("profile: got %+v", m2.Profile)
	}

	a, ok := m2.Assets["company-stamp-clean.png"]
	if !ok {
		t.Fatal("asset company-stamp-clean.png missing")
	}
	if a.BBox != [4]int{40, 30, 240, 130} {
		t.Errorf("bbox: got %v", a.BBox)
	}
	if a.Source.Hash != "0123456789abcdef" {
		t.Errorf("source hash: got %q", a.Source.Hash)
	}

	// Stats are recomputed on write.
	if m2.Stats.TotalAssets != 1 {
		t.Errorf("total_assets: got %d", m2.Stats.TotalAssets)
	}
	if m2.Stats.TotalInputBytes != 120000 || m2.Stats.TotalOutputBytes != 9000 {
		t.Errorf("bytes: got in=%d out=%d", m2.Stats.TotalInputBytes, m2.Stats.TotalOutputBytes)
	}
}

func TestReadJSONRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadJSON(path); err == nil {
		t.Error("expected parse error")
	}
	if _, err := ReadJSON(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing manifest")
	}
}
