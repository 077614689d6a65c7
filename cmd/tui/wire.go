//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

package tui

import (
	"github.com/google/wire"
	"github.com/voidbrain/webcli/internal/di"
	"github.com/voidbrain/webcli/pkg/config"
)

// AppDepsSet builds an *App from a config.Config.
var AppDepsSet = wire.NewSet(
	di.MachineSet,
	NewApp,
)

func InjectTUI(cfg config.Config) (*TUI, error) {
	wire.Build(AppDepsSet, New)
	return nil, nil
}
