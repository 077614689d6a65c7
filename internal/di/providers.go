package di

import (
	"fmt"

	"github.com/google/wire"
	"github.com/voidbrain/webcli/cmd/events"
	"github.com/voidbrain/webcli/pkg/config"
	"github.com/voidbrain/webcli/pkg/fakefs"
	"github.com/voidbrain/webcli/pkg/i18n"
	"github.com/voidbrain/webcli/pkg/settings"
	"github.com/voidbrain/webcli/pkg/terminal"
	"github.com/voidbrain/webcli/pkg/topics"
)

// Shared event bus instance
var commandEventBus = events.NewCommandEventBus()

// ProvideCommandEventBus provides the process-wide command event bus.
func ProvideCommandEventBus() *events.CommandEventBus {
	return commandEventBus
}

// ProvideSettingsStore opens the settings document named by cfg and
// publishes its changes on bus.
func ProvideSettingsStore(cfg config.Config, bus *events.CommandEventBus) (settings.Store, error) {
	store, err := settings.NewFileStore(cfg.SettingsFile, bus)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// ProvideFilesystem loads the ls tree, falling back to the embedded one.
func ProvideFilesystem(cfg config.Config) (*fakefs.Node, error) {
	if cfg.FilesystemFile == "" {
		return fakefs.Default(), nil
	}
	root, err := fakefs.LoadFile(cfg.FilesystemFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load filesystem %s: %w", cfg.FilesystemFile, err)
	}
	return root, nil
}

// ProvideTopics loads the explain catalogue, falling back to the embedded one.
func ProvideTopics(cfg config.Config) (*topics.Catalogue, error) {
	if cfg.TopicsFile == "" {
		return topics.Default(), nil
	}
	catalogue, err := topics.LoadFile(cfg.TopicsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load topics %s: %w", cfg.TopicsFile, err)
	}
	return catalogue, nil
}

// ProvideTranslations loads the labels per language, falling back to the
// embedded ones.
func ProvideTranslations(cfg config.Config) (*i18n.Catalogue, error) {
	if cfg.TranslationsFile == "" {
		return i18n.Default(), nil
	}
	labels, err := i18n.LoadFile(cfg.TranslationsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations %s: %w", cfg.TranslationsFile, err)
	}
	return labels, nil
}

// ProvideMachine assembles the command machine for one installation.
func ProvideMachine(cfg config.Config, root *fakefs.Node, catalogue *topics.Catalogue, labels *i18n.Catalogue, store settings.Store) *terminal.Machine {
	var opts []terminal.Option
	if root != nil {
		opts = append(opts, terminal.WithFilesystem(root))
	}
	if catalogue != nil {
		opts = append(opts, terminal.WithTopics(catalogue))
	}
	if labels != nil {
		opts = append(opts, terminal.WithTranslations(labels))
	}
	if cfg.Prompt != "" {
		opts = append(opts, terminal.WithPrompt(cfg.Prompt))
	}
	if len(cfg.Commands) > 0 {
		opts = append(opts, terminal.WithCommands(cfg.Commands...))
	}
	if store != nil {
		opts = append(opts, terminal.WithSettings(store))
	}
	return terminal.NewMachine(opts...)
}

// ProvideEngine starts a session that renders to sink and persists
// settings changes to store.
func ProvideEngine(sink terminal.Sink, machine *terminal.Machine, store settings.Store) *terminal.Engine {
	var opts []terminal.EngineOption
	if store != nil {
		opts = append(opts, terminal.WithSettingsWriter(store))
	}
	return terminal.NewEngine(sink, machine, opts...)
}

// MachineSet builds a *terminal.Machine and its settings store from a config.Config.
var MachineSet = wire.NewSet(
	ProvideCommandEventBus,
	ProvideSettingsStore,
	ProvideFilesystem,
	ProvideTopics,
	ProvideTranslations,
	ProvideMachine,
)
