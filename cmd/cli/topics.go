package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/voidbrain/webcli/internal/di"
	"github.com/voidbrain/webcli/pkg/topics"
)

func newTopicsCommand(opts *rootOptions) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Show everything explain knows about",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue, err := di.ProvideTopics(opts.cfg)
			if err != nil {
				return err
			}
			style := "notty"
			if isInteractive(cmd.OutOrStdout()) {
				store, err := di.InjectSettingsStore(opts.cfg)
				if err != nil {
					return err
				}
				style = store.Snapshot().Theme
			}
			out, err := renderTopics(catalogue, style, width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width")
	return cmd
}

// topicsMarkdown lists every topic as a markdown section.
func topicsMarkdown(catalogue *topics.Catalogue) string {
	var b strings.Builder
	b.WriteString("# Topics\n\n")
	for _, topic := range catalogue.Topics {
		fmt.Fprintf(&b, "## %s\n\n", topic.Name)
		for _, line := range topic.Lines() {
			fmt.Fprintf(&b, "%s\n\n", line)
		}
	}
	return b.String()
}

// renderTopics renders the catalogue with a glamour standard style such as
// "dark", "light" or "notty".
func renderTopics(catalogue *topics.Catalogue, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(topicsMarkdown(catalogue))
	if err != nil {
		return "", fmt.Errorf("failed to render topics: %w", err)
	}
	return out, nil
}
