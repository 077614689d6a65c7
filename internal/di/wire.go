//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/voidbrain/webcli/pkg/config"
	"github.com/voidbrain/webcli/pkg/settings"
	"github.com/voidbrain/webcli/pkg/terminal"
)

// InjectSettingsStore opens the settings store alone, for the settings subcommand.
func InjectSettingsStore(cfg config.Config) (settings.Store, error) {
	wire.Build(ProvideCommandEventBus, ProvideSettingsStore)
	return nil, nil
}

// InjectEngine starts a terminal session rendering to sink.
func InjectEngine(cfg config.Config, sink terminal.Sink) (*terminal.Engine, error) {
	wire.Build(MachineSet, ProvideEngine)
	return nil, nil
}
