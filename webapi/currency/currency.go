// Package currency exposes the supported currency catalog and rate tables.
package currency

import (
	"github.com/gofiber/fiber/v2"
	pkgcurrency "github.com/mihirand/fxconvert/pkg/currency"
	"github.com/mihirand/fxconvert/pkg/service/conversion"
	"github.com/mihirand/fxconvert/webapi/common"
)

// Routes registers HTTP routes for currency-related operations.
func Routes(app *fiber.App, registry *pkgcurrency.Registry, conversionSvc *conversion.Service) {
	currencyGroup := app.Group("/api/currencies")
	currencyGroup.Get("/", ListCurrencies(registry))
	currencyGroup.Get("/:code", GetCurrency(registry))

	app.Get("/api/rates/:base", GetRates(conversionSvc))
}

// ListCurrencies returns a Fiber handler listing the supported currencies.
// @Summary List supported currencies
// @Description Get the closed list of currencies the converter accepts
// @Tags currencies
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/currencies [get]
func ListCurrencies(registry *pkgcurrency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currencies fetched successfully", registry.List())
	}
}

// GetCurrency returns currency metadata by code.
// @Summary Get currency by code
// @Description Get display metadata for one supported currency
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code (e.g., USD, EUR)"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /api/currencies/{code} [get]
func GetCurrency(registry *pkgcurrency.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := pkgcurrency.Code(c.Params("code"))
		meta, ok := registry.Get(code)
		if !ok {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Currency not supported", string(code))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currency fetched successfully", meta)
	}
}

// GetRates returns the current rate table for a base currency.
// @Summary Get rates for a base currency
// @Description Fetch the rate table quoted against the given base currency
// @Tags currencies
// @Produce json
// @Param base path string true "Base currency code"
// @Success 200 {object} common.Response
// @Failure 422 {object} common.ProblemDetails
// @Failure 502 {object} common.ProblemDetails
// @Router /api/rates/{base} [get]
func GetRates(conversionSvc *conversion.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		base := pkgcurrency.Code(c.Params("base"))
		table, err := conversionSvc.Rates(c.Context(), base)
		if err != nil {
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to fetch rates", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Rates fetched successfully", ToRateTableResponse(table))
	}
}
