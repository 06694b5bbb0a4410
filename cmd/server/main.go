// Package main provides the entry point for the Synctech site server
//
// @title Synctech API
// @version 1.0.0
// @description Public API behind synctech.ao: the AI chat relay and health probes
// @contact.name Synctech
// @contact.url https://synctech.ao
// @contact.email contacto@synctech.ao
// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/ganilson/synctechSite/domain/chat"
	"github.com/ganilson/synctechSite/domain/health"
	"github.com/ganilson/synctechSite/domain/tracing"
	"github.com/ganilson/synctechSite/domain/website"
	"github.com/ganilson/synctechSite/internal/config"
	"github.com/ganilson/synctechSite/internal/server"
	"github.com/ganilson/synctechSite/pkg/logger"
)

func main() {
	// .env.local overrides .env
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,
		tracing.Module,

		// Domain modules
		health.Module,
		chat.Module,

		// Site pages, registered last as the catch-all
		website.Module,
	).Run()
}
