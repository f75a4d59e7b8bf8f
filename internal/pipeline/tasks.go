package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDir is where the brand scans live, relative to the project root.
const DefaultDir = "public/media/brand"

// cleanSuffix marks generated assets so scans never pick them up again.
const cleanSuffix = "-clean"

// Task is one source scan and the asset to generate from it.
type Task struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// DefaultTasks returns the company signature and stamp tasks under dir.
func DefaultTasks(dir string) []Task {
	return []Task{
		{
			Source: filepath.Join(dir, "company-signature.jpeg"),
			Dest:   filepath.Join(dir, "company-signature-clean.png"),
		},
		{
			Source: filepath.Join(dir, "company-stamp.jpeg"),
			Dest:   filepath.Join(dir, "company-stamp-clean.png"),
		},
	}
}

// taskFile is the on-disk layout of a --tasks file:
//
//	dir: public/media/brand
//	tasks:
//	  - source: company-signature.jpeg
//	    dest: company-signature-clean.png
type taskFile struct {
	Dir   string `yaml:"dir"`
	Tasks []Task `yaml:"tasks"`
}

// LoadTasks reads a YAML task list. Relative paths are resolved against
// the file's dir key, or the directory holding the file when dir is unset.
// A relative dir key is itself relative to the directory holding the file.
// Tasks without a dest write <stem>-clean.<ext> next to the source.
func LoadTasks(path, ext string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	var tf taskFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse tasks %s: %w", path, err)
	}
	if len(tf.Tasks) == 0 {
		return nil, fmt.Errorf("no tasks in %s", path)
	}

	base := resolve(filepath.Dir(path), tf.Dir)

	tasks := make([]Task, 0, len(tf.Tasks))
	for i, t := range tf.Tasks {
		if t.Source == "" {
			return nil, fmt.Errorf("%s: task %d: missing source", path, i)
		}
		if t.Dest == "" {
			t.Dest = cleanName(t.Source, ext)
		}
		tasks = append(tasks, Task{
			Source: resolve(base, t.Source),
			Dest:   resolve(base, t.Dest),
		})
	}
	return tasks, nil
}

// scanExtensions lists source extensions picked up by ScanTasks.
var scanExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// ScanTasks returns a task for every JPEG directly inside dir, writing
// <stem>-clean.<ext> next to it. Files already named *-clean are skipped.
// Tasks are sorted by source path.
func ScanTasks(dir, ext string) ([]Task, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var tasks []Task
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		fileExt := strings.ToLower(filepath.Ext(e.Name()))
		if !scanExtensions[fileExt] {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if strings.HasSuffix(stem, cleanSuffix) {
			continue
		}
		src := filepath.Join(dir, e.Name())
		tasks = append(tasks, Task{Source: src, Dest: cleanName(src, ext)})
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Source < tasks[j].Source
	})
	return tasks, nil
}

// cleanName derives the output path for src: dir/stem-clean.ext.
func cleanName(src, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	stem := strings.TrimSuffix(src, filepath.Ext(src))
	return stem + cleanSuffix + ext
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
