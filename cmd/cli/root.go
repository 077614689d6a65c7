package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/voidbrain/webcli/pkg/config"
	"github.com/voidbrain/webcli/pkg/logging"
	"github.com/voidbrain/webcli/pkg/version"
)

// DebugLogFile is the default log file name while the full-screen host owns
// the terminal.
const DebugLogFile = "webcli-debug.log"

// rootOptions is shared by the root command and its subcommands.
type rootOptions struct {
	configPath string
	envFiles   []string
	logFormat  string
	verbose    bool
	quiet      bool

	cfg config.Config
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCommand()

// NewRootCommand builds the webcli command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "webcli",
		Short: "The voidbrain site terminal",
		Long: `webcli runs the terminal from the voidbrain portfolio site: a small
shell with history, tab completion, a fake filesystem and an explain dialog.

With a terminal on stdin it starts full screen. Otherwise every stdin line
is typed into the terminal and the output is written to stdout.`,
		Version:       version.GetInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if isInteractive(cmd.InOrStdin()) && isInteractive(cmd.OutOrStdout()) {
				// stderr belongs to the screen from here on.
				previous := logging.GetGlobalLogger()
				fileLogger, closeLog := logging.NewFileLoggerFromEnv(DebugLogFile)
				logging.SetGlobalLogger(fileLogger)
				defer func() {
					logging.SetGlobalLogger(previous)
					_ = closeLog()
				}()
				return runInteractive(opts.cfg)
			}
			return runLines(cmd.InOrStdin(), cmd.OutOrStdout(), opts.cfg)
		},
	}
	cmd.SetVersionTemplate(version.GetInfo().String() + "\n")

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load (default .env)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format on stderr: text or json")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug level)")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "quiet output (errors only)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		newRunCommand(opts),
		newTopicsCommand(opts),
		newSettingsCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

// setup loads the environment and config, then installs the global logger.
func (o *rootOptions) setup(stderr io.Writer) error {
	logging.SetGlobalLogger(logging.NewLogger(logging.Config{
		Level:  o.logLevel(),
		Format: logging.ParseFormat(o.logFormat),
		Output: stderr,
	}))

	if err := config.LoadDotEnv(o.envFiles...); err != nil {
		return err
	}
	cfg, err := config.Load(o.configPath, config.NewConfigManager())
	if err != nil {
		return err
	}
	o.cfg = cfg
	logging.Debug("configuration loaded", "config", o.configPath, "prompt", cfg.Prompt, "settings", cfg.SettingsFile)
	return nil
}

func (o *rootOptions) logLevel() slog.Level {
	switch {
	case o.quiet:
		return slog.LevelError
	case o.verbose:
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.GetInfo().String())
			return err
		},
	}
}
