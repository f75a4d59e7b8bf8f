package pipeline

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AnyUserName/brandclean/internal/cutout"
	"github.com/AnyUserName/brandclean/internal/manifest"
	"go.uber.org/zap"
)

// Config holds all parameters for a prepare run.
type Config struct {
	Tasks   []Task
	Options cutout.Options
	// ManifestPath, when set, receives a JSON manifest after all tasks succeed.
	ManifestPath string
	// Out receives one "generated <dest>" line per asset. Defaults to stdout.
	Out    io.Writer
	Logger *zap.Logger
}

// Pipeline runs cutout tasks one after another.
type Pipeline struct {
	cfg Config
	log *zap.Logger
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Options.Logger == nil {
		cfg.Options.Logger = log
	}
	return &Pipeline{cfg: cfg, log: log}
}

// Run processes every task in order. It stops at the first missing source
// or processing failure; assets already generated are left in place.
func (p *Pipeline) Run() ([]*cutout.Result, error) {
	if len(p.cfg.Tasks) == 0 {
		return nil, errors.New("no tasks to run")
	}
	if err := p.cfg.Options.Profile.Validate(); err != nil {
		return nil, err
	}

	p.log.Debug("starting run",
		zap.Int("tasks", len(p.cfg.Tasks)),
		zap.String("profile", p.cfg.Options.Profile.Name),
	)

	results := make([]*cutout.Result, 0, len(p.cfg.Tasks))
	for _, t := range p.cfg.Tasks {
		if err := checkSource(t.Source); err != nil {
			return results, err
		}

		r, err := processTask(t, p.cfg.Options)
		if err != nil {
			return results, err
		}
		results = append(results, r)

		p.log.Debug("generated asset",
			zap.String("dest", r.Dest),
			zap.Int("width", r.Width),
			zap.Int("height", r.Height),
			zap.Int64("bytes", r.Size),
		)
		fmt.Fprintf(p.cfg.Out, "generated %s\n", r.Dest)
	}

	if p.cfg.ManifestPath != "" {
		m, err := buildManifest(results, p.cfg.Options, filepath.Dir(p.cfg.ManifestPath))
		if err != nil {
			return results, fmt.Errorf("build manifest: %w", err)
		}
		if err := manifest.WriteJSON(m, p.cfg.ManifestPath); err != nil {
			return results, fmt.Errorf("write manifest: %w", err)
		}
		p.log.Debug("wrote manifest", zap.String("path", p.cfg.ManifestPath))
	}

	return results, nil
}

// checkSource fails with cutout.ErrMissingInput when src is absent.
func checkSource(src string) error {
	_, err := os.Stat(src)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", cutout.ErrMissingInput, src)
	default:
		return fmt.Errorf("stat %s: %w", src, err)
	}
}
