package main

import (
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/mihirand/fxconvert/infra/initializer"
	"github.com/mihirand/fxconvert/pkg/app"
	"github.com/mihirand/fxconvert/pkg/config"
	"github.com/mihirand/fxconvert/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	application := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(application)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"rate_source", deps.RateSource.Name(),
	)

	return fiberApp.Listen(addr)
}
