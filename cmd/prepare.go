package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/AnyUserName/brandclean/internal/cutout"
	"github.com/AnyUserName/brandclean/internal/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	prepareDir      string
	prepareTasks    string
	prepareScan     bool
	prepareManifest string
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Generate the clean signature and stamp assets",
	Long: `Processes each source scan in order and writes a transparent,
cropped and padded asset next to it:

  company-signature.jpeg → company-signature-clean.png
  company-stamp.jpeg     → company-stamp-clean.png

The run stops at the first missing or unusable source.`,
	Args: cobra.NoArgs,
	RunE: runPrepare,
}

// addPrepareFlags registers the task selection flags.
func addPrepareFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVarP(&prepareDir, "dir", "d", pipeline.DefaultDir, "brand asset directory")
	f.StringVarP(&prepareTasks, "tasks", "t", "", "YAML task list (overrides the built-in tasks)")
	f.BoolVar(&prepareScan, "scan", false, "process every JPEG in --dir instead of the built-in tasks")
	f.StringVarP(&prepareManifest, "manifest", "m", "", "write a JSON manifest of generated assets")
}

func init() {
	addCutoutFlags(prepareCmd)
	addPrepareFlags(prepareCmd)
	rootCmd.AddCommand(prepareCmd)
}

func runPrepare(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	opts, err := cutoutOptions()
	if err != nil {
		return err
	}

	tasks, err := resolveTasks(opts.Encoder.Extension())
	if err != nil {
		return err
	}

	logger.Debug("tasks resolved",
		zap.String("dir", prepareDir),
		zap.Int("count", len(tasks)),
	)

	p := pipeline.New(pipeline.Config{
		Tasks:        tasks,
		Options:      opts,
		ManifestPath: prepareManifest,
		Out:          cmd.OutOrStdout(),
		Logger:       logger,
	})

	results, err := p.Run()
	if err != nil {
		if errors.Is(err, cutout.ErrMissingInput) {
			logger.Debug("aborted on missing input", zap.Int("generated", len(results)))
		}
		return fmt.Errorf("pipeline: %w", err)
	}

	logger.Info("prepare complete",
		zap.Int("assets", len(results)),
		zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
	)
	return nil
}

func resolveTasks(ext string) ([]pipeline.Task, error) {
	switch {
	case prepareTasks != "" && prepareScan:
		return nil, errors.New("--tasks and --scan are mutually exclusive")
	case prepareTasks != "":
		return pipeline.LoadTasks(prepareTasks, ext)
	case prepareScan:
		tasks, err := pipeline.ScanTasks(prepareDir, ext)
		if err != nil {
			return nil, err
		}
		if len(tasks) == 0 {
			return nil, fmt.Errorf("no JPEG scans found in %s", prepareDir)
		}
		return tasks, nil
	}

	tasks := pipeline.DefaultTasks(prepareDir)
	if ext != "png" {
		for i := range tasks {
			tasks[i].Dest = replaceExt(tasks[i].Dest, ext)
		}
	}
	return tasks, nil
}

func replaceExt(path, ext string) string {
	return path[:len(path)-len(filepath.Ext(path))] + "." + ext
}
