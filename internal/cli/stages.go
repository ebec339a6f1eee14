package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/slidefilter/internal/ui/pretty"
	"github.com/yaklabco/slidefilter/pkg/rewrite"
	"github.com/yaklabco/slidefilter/pkg/rewrite/stages"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type stagesFlags struct {
	format  string
	symbols bool
}

// stageInfo represents a stage in JSON output.
type stageInfo struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Enabled     bool           `json:"enabled_by_default"`
	Options     map[string]any `json:"options,omitempty"`
}

// symbolInfo represents a callout category in JSON output.
type symbolInfo struct {
	Category string `json:"category"`
	Glyph    string `json:"glyph"`
}

func newStagesCommand() *cobra.Command {
	flags := &stagesFlags{}

	cmd := &cobra.Command{
		Use:   "stages",
		Short: "List the rewrite stages",
		Long: `List every rewrite stage in pipeline order with its ID, name, default
enablement and description. With --symbols, list the callout categories
and the icon each one renders with.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.format != formatText && flags.format != formatJSON {
				return fmt.Errorf("%w: invalid format %q: must be text or json", ErrUsage, flags.format)
			}

			out := cmd.OutOrStdout()
			colorMode, _ := cmd.Flags().GetString("color")
			formatter := pretty.NewTableFormatter(
				pretty.NewStyles(pretty.IsColorEnabled(colorMode, out)),
				terminalWidth(out),
			)

			if flags.symbols {
				return listSymbols(out, flags.format, formatter)
			}
			return listStages(out, flags.format, formatter, rewrite.DefaultRegistry.Stages())
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", formatText, "output format: text, json")
	cmd.Flags().BoolVar(&flags.symbols, "symbols", false, "list callout categories and glyphs instead of stages")

	return cmd
}

func listStages(out io.Writer, format string, formatter *pretty.TableFormatter, all []rewrite.Stage) error {
	if format == formatJSON {
		infos := make([]stageInfo, 0, len(all))
		for _, stage := range all {
			infos = append(infos, stageInfo{
				ID:          stage.ID(),
				Name:        stage.Name(),
				Description: stage.Description(),
				Enabled:     stage.DefaultEnabled(),
				Options:     stage.DefaultOptions(),
			})
		}
		return writeJSON(out, infos)
	}

	rows := make([]pretty.StageRow, 0, len(all))
	for _, stage := range all {
		rows = append(rows, pretty.StageRow{
			ID:          stage.ID(),
			Name:        stage.Name(),
			Enabled:     stage.DefaultEnabled(),
			Description: stage.Description(),
		})
	}
	if _, err := fmt.Fprint(out, formatter.FormatStageTable(rows)); err != nil {
		return fmt.Errorf("write stages: %w", err)
	}
	return nil
}

func listSymbols(out io.Writer, format string, formatter *pretty.TableFormatter) error {
	categories := stages.Categories()

	if format == formatJSON {
		infos := make([]symbolInfo, 0, len(categories))
		for _, category := range categories {
			infos = append(infos, symbolInfo{Category: category, Glyph: stages.Glyph(category)})
		}
		return writeJSON(out, infos)
	}

	rows := make([]pretty.SymbolRow, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, pretty.SymbolRow{Category: category, Glyph: stages.Glyph(category)})
	}
	if _, err := fmt.Fprint(out, formatter.FormatSymbolTable(rows)); err != nil {
		return fmt.Errorf("write symbols: %w", err)
	}
	return nil
}

func writeJSON(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// terminalWidth returns the width of out if it is a terminal, or 0.
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
