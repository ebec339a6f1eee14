// Package cli provides the Cobra command structure for slidefilter.
package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/slidefilter/internal/configloader"
	"github.com/yaklabco/slidefilter/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root slidefilter command with all subcommands.
// Run without a subcommand it filters a single document.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	var diff bool
	flags := &ioFlags{}

	rootCmd := &cobra.Command{
		Use:   "slidefilter",
		Short: "Preprocess Markdown slides into Marp-ready Markdown",
		Long: `slidefilter rewrites a Markdown slide deck before it is handed to Marp.

It turns {{{label / }}} fences into <div> containers, "> [!KIND] title"
blockquotes into callout boxes with an icon, and *** lines into <hr>.
Optional stages number headings and header comments and normalize line
endings. Input is read from a file or standard input and written to a
file or standard output.

Examples:
  slidefilter -i deck.md -o deck.marp.md
  cat deck.md | slidefilter --enable heading-count
  slidefilter -i deck.md --diff` + environmentHelp(),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q (use -i to name the input)", ErrUsage, args[0])
			}
			return nil
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd, flags, diff, nil)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	addIOFlags(rootCmd, flags)
	rootCmd.Flags().BoolVar(&diff, "diff", false, "print a unified diff of the changes instead of the output")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newStagesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// environmentHelp lists the supported environment variables for the root
// command's long help. Flags given on the command line override them.
func environmentHelp() string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("\n\nEnvironment (overridden by --enable/--disable):\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, name, vars[name])
	}
	return strings.TrimRight(b.String(), "\n")
}
