package cmd

import (
	"fmt"

	"github.com/AnyUserName/brandclean/internal/cutout"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <src> <dst>",
	Short: "Clean a single scan into a transparent asset",
	Args:  cobra.ExactArgs(2),
	RunE:  runClean,
}

func init() {
	addCutoutFlags(cleanCmd)
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]

	opts, err := cutoutOptions()
	if err != nil {
		return err
	}

	r, err := cutout.CleanFile(src, dst, opts)
	if err != nil {
		return err
	}

	logger.Debug("generated asset",
		zap.String("dest", r.Dest),
		zap.Int("width", r.Width),
		zap.Int("height", r.Height),
		zap.Stringer("bbox", r.BBox),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "generated %s\n", r.Dest)
	return nil
}
