package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/voidbrain/webcli/internal/di"
	"github.com/voidbrain/webcli/pkg/settings"
)

var (
	keyColor     = color.New(color.FgCyan, color.Bold)
	valueColor   = color.New(color.FgGreen)
	optionsColor = color.New(color.Faint)
)

func newSettingsCommand(opts *rootOptions) *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "settings [key value]",
		Short: "Show or change the persisted settings",
		Example: `  webcli settings
  webcli settings theme light
  webcli settings --reset`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or a key and a value, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := di.InjectSettingsStore(opts.cfg)
			if err != nil {
				return err
			}
			switch {
			case reset:
				if err := store.Reset(); err != nil {
					return fmt.Errorf("failed to reset settings: %w", err)
				}
			case len(args) == 2:
				key, value := strings.ToLower(args[0]), strings.ToLower(args[1])
				if err := store.Set(key, value); err != nil {
					return fmt.Errorf("failed to set %s: %w", key, err)
				}
			}
			return printSettings(cmd.OutOrStdout(), store.Snapshot())
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "restore the default settings")
	return cmd
}

// printSettings writes one "key  value  (options)" line per setting.
func printSettings(w io.Writer, s settings.Settings) error {
	for _, key := range settings.Keys {
		value, _ := s.Get(key)
		options := strings.Join(settings.Options(key), "|")
		_, err := fmt.Fprintf(w, "%s  %s  %s\n",
			keyColor.Sprintf("%-8s", key),
			valueColor.Sprintf("%-10s", value),
			optionsColor.Sprintf("(%s)", options))
		if err != nil {
			return err
		}
	}
	return nil
}
