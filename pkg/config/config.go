package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment keys that override the file configuration.
const (
	EnvPrompt       = "WEBCLI_PROMPT"
	EnvCommands     = "WEBCLI_COMMANDS"
	EnvFilesystem   = "WEBCLI_FS_FILE"
	EnvTopics       = "WEBCLI_TOPICS_FILE"
	EnvTranslations = "WEBCLI_TRANSLATIONS_FILE"
	EnvSettingsFile = "WEBCLI_SETTINGS_FILE"
	EnvOutputMode   = "WEBCLI_OUTPUT_MODE"
)

// DefaultPrompt is shown before every input line.
const DefaultPrompt = "$ "

// Config describes one terminal installation. Empty file fields select the
// embedded defaults.
type Config struct {
	Prompt           string   `toml:"prompt"`
	Commands         []string `toml:"commands"`
	FilesystemFile   string   `toml:"filesystem_file"`
	TopicsFile       string   `toml:"topics_file"`
	TranslationsFile string   `toml:"translations_file"`
	SettingsFile     string   `toml:"settings_file"`
	// OutputMode selects the TUI color depth: "true", "256", "normal" or "simulator".
	OutputMode string `toml:"output_mode"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Prompt: DefaultPrompt}
}

// Load reads the TOML file at path, if any, then applies environment
// overrides from m. A blank path skips the file.
func Load(path string, m Manager) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return Config{}, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if m == nil {
		m = NewConfigManager()
	}
	cfg.Prompt = m.GetStringWithDefault(EnvPrompt, cfg.Prompt)
	cfg.Commands = m.GetListWithDefault(EnvCommands, cfg.Commands)
	cfg.FilesystemFile = m.GetStringWithDefault(EnvFilesystem, cfg.FilesystemFile)
	cfg.TopicsFile = m.GetStringWithDefault(EnvTopics, cfg.TopicsFile)
	cfg.TranslationsFile = m.GetStringWithDefault(EnvTranslations, cfg.TranslationsFile)
	cfg.SettingsFile = m.GetStringWithDefault(EnvSettingsFile, cfg.SettingsFile)
	cfg.OutputMode = m.GetStringWithDefault(EnvOutputMode, cfg.OutputMode)

	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are ignored. With no arguments ".env" is tried.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}
