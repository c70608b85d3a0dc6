// Package app assembles the services the HTTP layer serves.
package app

import (
	"log/slog"

	"github.com/mihirand/fxconvert/infra/initializer"
	"github.com/mihirand/fxconvert/pkg/config"
	"github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/service/conversion"
	"github.com/mihirand/fxconvert/pkg/service/theme"
)

// App carries the constructed services and configuration.
type App struct {
	Config            *config.App
	Logger            *slog.Logger
	Registry          *currency.Registry
	ConversionService *conversion.Service
	Theme             *theme.Context
}

// New builds the application from initialized dependencies.
func New(deps *initializer.Deps, cfg *config.App) *App {
	return &App{
		Config:   cfg,
		Logger:   deps.Logger,
		Registry: deps.Registry,
		ConversionService: conversion.New(
			deps.RateSource,
			deps.Registry,
			deps.History,
			deps.Logger,
		),
		Theme: deps.Theme,
	}
}
