package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/slidefilter/internal/configloader"
	"github.com/yaklabco/slidefilter/internal/logging"
	"github.com/yaklabco/slidefilter/internal/ui/pretty"
	"github.com/yaklabco/slidefilter/pkg/config"
	"github.com/yaklabco/slidefilter/pkg/rewrite"
	_ "github.com/yaklabco/slidefilter/pkg/rewrite/stages" // Register built-in stages
	"github.com/yaklabco/slidefilter/pkg/runner"
)

// ioFlags are the input, output and stage selection flags shared by the
// root command and preview.
type ioFlags struct {
	input   string
	output  string
	enable  []string
	disable []string
	summary bool
}

func addIOFlags(cmd *cobra.Command, flags *ioFlags) {
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "input file (default: standard input)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: standard output)")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "stage IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "stage IDs or names to disable")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a one-line run summary to standard error")
}

// cliConfig converts the flags into the highest-precedence config layer.
func (f *ioFlags) cliConfig() *config.Config {
	return &config.Config{
		Input:         f.input,
		Output:        f.output,
		EnableStages:  f.enable,
		DisableStages: f.disable,
	}
}

// commandContext returns the command's context with the default logger attached.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, logging.Default())
}

// loadConfig resolves the configuration for a command invocation.
func loadConfig(ctx context.Context, cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// runFilter loads configuration, builds the pipeline and runs it once.
func runFilter(cmd *cobra.Command, flags *ioFlags, diff bool, render runner.RenderFunc) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	cfg, err := loadConfig(ctx, cmd, flags.cliConfig())
	if err != nil {
		return err
	}

	pipeline, err := rewrite.NewPipeline(rewrite.DefaultRegistry, cfg)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	ids := make([]string, 0, len(pipeline.Stages()))
	for _, rs := range pipeline.Stages() {
		ids = append(ids, rs.Stage.ID())
	}
	logger.Debug("pipeline ready", logging.FieldStages, ids)

	colorMode, _ := cmd.Flags().GetString("color")
	stdout := cmd.OutOrStdout()
	colorDiff := diff && (cfg.Output == "" || cfg.Output == runner.StdioName) &&
		pretty.IsColorEnabled(colorMode, stdout)

	var diffBuf bytes.Buffer
	opts := runner.Options{
		Input:  cfg.Input,
		Output: cfg.Output,
		Stdin:  cmd.InOrStdin(),
		Stdout: stdout,
		Diff:   diff,
		Render: render,
	}
	if colorDiff {
		opts.Stdout = &diffBuf
	}

	result, err := runner.New(pipeline).Run(ctx, opts)
	if err != nil {
		return err
	}

	if colorDiff {
		if _, err := fmt.Fprint(stdout, pretty.NewStyles(true).FormatDiff(diffBuf.String())); err != nil {
			return fmt.Errorf("write diff: %w", err)
		}
	}

	if flags.summary {
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.ErrOrStderr()))
		if _, err := fmt.Fprint(cmd.ErrOrStderr(), styles.FormatRunSummary(result)); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	return nil
}
