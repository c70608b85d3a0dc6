// Package webapi provides the HTTP surface of the converter.
// It is organized into sub-packages per concern:
// - convert: the conversion endpoint
// - currency: supported currency catalog and rate tables
// - theme: display mode endpoints
// - history: conversion history endpoint
package webapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mihirand/fxconvert/pkg/app"
	"github.com/mihirand/fxconvert/webapi/common"
	convertweb "github.com/mihirand/fxconvert/webapi/convert"
	currencyweb "github.com/mihirand/fxconvert/webapi/currency"
	historyweb "github.com/mihirand/fxconvert/webapi/history"
	themeweb "github.com/mihirand/fxconvert/webapi/theme"
)

// SetupApp initializes Fiber with custom configuration.
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", err.Error())
		},
	})

	// Configure rate limiting middleware.
	// Uses X-Forwarded-For header when behind a proxy,
	// falls back to X-Real-IP or direct IP if needed.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(
				c,
				fiber.StatusTooManyRequests,
				"Too Many Requests",
				"rate limit exceeded",
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("fxconvert API is running")
	})

	convertweb.Routes(fiberApp, app.ConversionService)
	currencyweb.Routes(fiberApp, app.Registry, app.ConversionService)
	themeweb.Routes(fiberApp, app.Theme)
	historyweb.Routes(fiberApp, app.ConversionService)

	return fiberApp
}
