package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/slidefilter/internal/logging"
	"github.com/yaklabco/slidefilter/pkg/config"
	"github.com/yaklabco/slidefilter/pkg/fsutil"
	"github.com/yaklabco/slidefilter/pkg/rewrite"
)

// defaultConfigName is the project config file written by init.
const defaultConfigName = ".slidefilter.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .slidefilter.yml configuration file",
		Long: `Create a commented .slidefilter.yml in the current directory that lists
every stage with its default enablement and options.

Examples:
  slidefilter init                      Create .slidefilter.yml
  slidefilter init --output talk.yml    Write to a custom file path
  slidefilter init --force              Overwrite an existing file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags, rewrite.DefaultRegistry)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigName, "output file path")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags, registry *rewrite.Registry) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigName
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	all := registry.Stages()
	infos := make([]config.StageInfo, 0, len(all))
	for _, stage := range all {
		infos = append(infos, config.StageInfo{
			ID:          stage.ID(),
			Name:        stage.Name(),
			Description: stage.Description(),
			Enabled:     stage.DefaultEnabled(),
			Options:     stage.DefaultOptions(),
		})
	}

	if err := fsutil.WriteAtomic(ctx, absPath, config.GenerateTemplate(infos), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'slidefilter stages' to see what each stage does")

	return nil
}
