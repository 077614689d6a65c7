package cli

import (
	"fmt"
	"io"

	"github.com/voidbrain/webcli/cmd/tui"
	"github.com/voidbrain/webcli/internal/di"
	"github.com/voidbrain/webcli/pkg/config"
	"github.com/voidbrain/webcli/pkg/logging"
	"github.com/voidbrain/webcli/pkg/terminal"
)

// runLines types every line of in into a fresh session and submits it, as
// if a user had typed it. Output, prompts included, goes to out.
func runLines(in io.Reader, out io.Writer, cfg config.Config) error {
	engine, err := di.InjectEngine(cfg, terminal.NewWriterSink(out))
	if err != nil {
		return fmt.Errorf("failed to start terminal: %w", err)
	}

	submitted := 0
	err = eachLine(in, func(line string) {
		engine.SubmitLine(line)
		submitted++
	})
	logging.Debug("line mode finished", "lines", submitted)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}

func runInteractive(cfg config.Config) error {
	t, err := tui.InjectTUI(cfg)
	if err != nil {
		return fmt.Errorf("failed to start terminal: %w", err)
	}
	defer t.Stop()
	return t.Start()
}
