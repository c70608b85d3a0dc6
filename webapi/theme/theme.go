// Package theme exposes the display mode endpoints.
package theme

import (
	"github.com/gofiber/fiber/v2"
	themesvc "github.com/mihirand/fxconvert/pkg/service/theme"
	"github.com/mihirand/fxconvert/webapi/common"
)

// ModeResponse represents the response body carrying the display mode.
type ModeResponse struct {
	Mode string `json:"mode"`
}

// Routes registers HTTP routes for theme operations.
func Routes(app *fiber.App, themeCtx *themesvc.Context) {
	themeGroup := app.Group("/api/theme")
	themeGroup.Get("/", GetMode(themeCtx))
	themeGroup.Post("/toggle", ToggleMode(themeCtx))
}

// GetMode returns the current display mode.
// @Summary Get display mode
// @Tags theme
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/theme [get]
func GetMode(themeCtx *themesvc.Context) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Theme fetched successfully",
			ModeResponse{Mode: string(themeCtx.Mode())})
	}
}

// ToggleMode flips the display mode and returns the new one.
// @Summary Toggle display mode
// @Tags theme
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/theme/toggle [post]
func ToggleMode(themeCtx *themesvc.Context) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Theme toggled",
			ModeResponse{Mode: string(themeCtx.Toggle())})
	}
}
