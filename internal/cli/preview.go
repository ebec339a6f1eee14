package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/slidefilter/pkg/preview"
)

type previewFlags struct {
	io         ioFlags
	flavor     string
	standalone bool
	title      string
}

func newPreviewCommand() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Filter a deck and render it to HTML",
		Long: `Run the filter and render the result to HTML with goldmark, keeping the
raw HTML the stages emit. Useful for checking callouts and containers
without starting Marp.

Examples:
  slidefilter preview -i deck.md -o deck.html --standalone
  slidefilter preview -i deck.md --flavor commonmark`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.flavor != preview.FlavorGFM && flags.flavor != preview.FlavorCommonMark {
				return fmt.Errorf("%w: invalid flavor %q: must be gfm or commonmark", ErrUsage, flags.flavor)
			}

			title := flags.title
			if title == "" {
				title = flags.io.input
			}
			renderer := preview.New(preview.Options{
				Flavor:     flags.flavor,
				Standalone: flags.standalone,
				Title:      title,
			})

			return runFilter(cmd, &flags.io, false, renderer.Render)
		},
	}

	addIOFlags(cmd, &flags.io)
	cmd.Flags().StringVar(&flags.flavor, "flavor", preview.FlavorGFM, "Markdown flavor: gfm, commonmark")
	cmd.Flags().BoolVar(&flags.standalone, "standalone", false, "wrap the output in a complete HTML document")
	cmd.Flags().StringVar(&flags.title, "title", "", "document title for --standalone (default: input name)")

	return cmd
}
