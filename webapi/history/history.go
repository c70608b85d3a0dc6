// Package history exposes the conversion history endpoint.
package history

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mihirand/fxconvert/pkg/service/conversion"
	"github.com/mihirand/fxconvert/webapi/common"
)

// Routes registers HTTP routes for history operations.
func Routes(app *fiber.App, conversionSvc *conversion.Service) {
	app.Get("/api/conversions", ListConversions(conversionSvc))
}

// ListConversions returns the most recent recorded conversions.
// @Summary List recent conversions
// @Description Get the conversion history trail, newest first
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of records"
// @Success 200 {object} common.Response
// @Failure 500 {object} common.ProblemDetails
// @Router /api/conversions [get]
func ListConversions(conversionSvc *conversion.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit")
		records, err := conversionSvc.History(c.Context(), limit)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Failed to list conversions", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversions fetched successfully", records)
	}
}
