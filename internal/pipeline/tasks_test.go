package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTasks(t *testing.T) {
	tasks := DefaultTasks(DefaultDir)
	require.Len(t, tasks, 2)
	assert.Equal(t, Task{
		Source: filepath.Join("public", "media", "brand", "company-signature.jpeg"),
		Dest:   filepath.Join("public", "media", "brand", "company-signature-clean.png"),
	}, tasks[0])
	assert.Equal(t, Task{
		Source: filepath.Join("public", "media", "brand", "company-stamp.jpeg"),
		Dest:   filepath.Join("public", "media", "brand", "company-stamp-clean.png"),
	}, tasks[1])
}

func TestLoadTasks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tasks:
  - source: scans/director-signature.jpeg
    dest: out/director.png
  - source: scans/seal.jpg
  - source: /abs/stamp.jpeg
    dest: /abs/stamp.png
`), 0o644))

	tasks, err := LoadTasks(path, "png")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, filepath.Join(dir, "scans", "director-signature.jpeg"), tasks[0].Source)
	assert.Equal(t, filepath.Join(dir, "out", "director.png"), tasks[0].Dest)
	assert.Equal(t, filepath.Join(dir, "scans", "seal-clean.png"), tasks[1].Dest)
	assert.Equal(t, "/abs/stamp.png", tasks[2].Dest)

	// A missing dest follows the output format; explicit dests are kept.
	tasks, err = LoadTasks(path, "webp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "scans", "seal-clean.webp"), tasks[1].Dest)
	assert.Equal(t, filepath.Join(dir, "out", "director.png"), tasks[0].Dest)
}

func TestLoadTasks_Dir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dir: assets/brand
tasks:
  - source: a.jpeg
`), 0o644))

	tasks, err := LoadTasks(path, "png")
	require.NoError(t, err)
	assert.Equal(t, Task{
		Source: filepath.Join(dir, "assets", "brand", "a.jpeg"),
		Dest:   filepath.Join(dir, "assets", "brand", "a-clean.png"),
	}, tasks[0])
}

func TestLoadTasks_AbsoluteDir(t *testing.T) {
	dir := t.TempDir()
	brand := filepath.Join(t.TempDir(), "brand")
	path := filepath.Join(dir, "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: "+brand+"\ntasks:\n  - source: stamp.jpeg\n"), 0o644))

	tasks, err := LoadTasks(path, "png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(brand, "stamp.jpeg"), tasks[0].Source)
}

func TestLoadTasks_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTasks(filepath.Join(dir, "missing.yaml"), "png")
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("tasks: []\n"), 0o644))
	_, err = LoadTasks(empty, "png")
	assert.ErrorContains(t, err, "no tasks")

	nosrc := filepath.Join(dir, "nosrc.yaml")
	require.NoError(t, os.WriteFile(nosrc, []byte("tasks:\n  - dest: x.png\n"), 0o644))
	_, err = LoadTasks(nosrc, "png")
	assert.ErrorContains(t, err, "missing source")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tasks: [\n"), 0o644))
	_, err = LoadTasks(bad, "png")
	assert.Error(t, err)
}

func TestScanTasks(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"company-stamp.jpeg",
		"company-signature.JPG",
		"company-stamp-clean.jpeg",
		"logo.png",
		".hidden.jpeg",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpeg"), 0o755))

	tasks, err := ScanTasks(dir, "png")
	require.NoError(t, err)
	assert.Equal(t, []Task{
		{
			Source: filepath.Join(dir, "company-signature.JPG"),
			Dest:   filepath.Join(dir, "company-signature-clean.png"),
		},
		{
			Source: filepath.Join(dir, "company-stamp.jpeg"),
			Dest:   filepath.Join(dir, "company-stamp-clean.png"),
		},
	}, tasks)

	tasks, err = ScanTasks(dir, ".webp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "company-stamp-clean.webp"), tasks[1].Dest)
}

func TestScanTasks_MissingDir(t *testing.T) {
	_, err := ScanTasks(filepath.Join(t.TempDir(), "nope"), "png")
	assert.Error(t, err)
}
