// Package convert exposes the conversion endpoint.
package convert

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mihirand/fxconvert/pkg/service/conversion"
	"github.com/mihirand/fxconvert/webapi/common"
)

// Routes registers HTTP routes for conversion operations.
func Routes(app *fiber.App, conversionSvc *conversion.Service) {
	app.Post("/api/convert", Convert(conversionSvc))
}

// Convert returns a Fiber handler that runs one conversion.
// @Summary Convert an amount between two currencies
// @Description Validates the input, fetches the live rate for the base currency and returns the converted amount rounded to two decimal places
// @Tags convert
// @Accept json
// @Produce json
// @Param request body Request true "Conversion request"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Failure 502 {object} common.ProblemDetails
// @Router /api/convert [post]
func Convert(conversionSvc *conversion.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[Request](c)
		if err != nil {
			return nil
		}

		result, err := conversionSvc.Convert(c.Context(), input.ToDomain())
		if err != nil {
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Conversion failed", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversion completed", ToResponse(result))
	}
}
