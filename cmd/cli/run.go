package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/voidbrain/webcli/internal/di"
	"github.com/voidbrain/webcli/pkg/terminal"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run one terminal command and print its output",
		Example: `  webcli run ls /Plugins
  webcli run explain fpv
  webcli run settings theme light`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			output, err := runCommand(opts, line)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}
}

func runCommand(opts *rootOptions, line string) (string, error) {
	transcript := &terminal.Transcript{}
	engine, err := di.InjectEngine(opts.cfg, transcript)
	if err != nil {
		return "", fmt.Errorf("failed to start terminal: %w", err)
	}
	transcript.Reset()
	engine.Execute(line)
	return commandOutput(transcript.String(), line), nil
}

// commandOutput strips the echoed command line and the trailing prompt from
// a transcript of one Execute.
func commandOutput(text, line string) string {
	text = strings.TrimPrefix(text, line+"\n")
	i := strings.LastIndex(text, "\n")
	if i < 0 {
		return ""
	}
	return text[:i]
}
