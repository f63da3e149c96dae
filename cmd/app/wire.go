//go:build wireinject
// +build wireinject

package main

import (
	"apitracker/config"
	"apitracker/internal/command"
	"apitracker/internal/cron"
	"apitracker/internal/database"
	"apitracker/internal/handler"
	"apitracker/internal/middleware"
	"apitracker/internal/router"
	"apitracker/internal/service"
	"apitracker/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			telemetry.ProviderSet,
			newHttpServer,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			command.ProviderSet,
		),
	)
}
