package pricing

import (
	"github.com/amirasaad/parcels/pkg/provider"
	"github.com/amirasaad/parcels/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Trigger queues a manual pricing run.
type Trigger interface {
	Trigger() (uuid.UUID, bool)
	Running() bool
}

// Routes registers HTTP routes for delivery cost calculation.
func Routes(app *fiber.App, scheduler Trigger, rates provider.RateProvider) {
	app.Post("/calculate_delivery_costs", CalculateDeliveryCosts(scheduler))
	app.Get("/rates/usd", GetUSDRate(rates))
}

// CalculateDeliveryCosts returns a Fiber handler that queues a pricing run.
// @Summary Calculate delivery costs
// @Description Queue a run pricing every parcel without a delivery cost. Requests made while a run is queued share its task ID.
// @Tags pricing
// @Produce json
// @Success 202 {object} TaskAcceptedResponse
// @Failure 429 {object} common.ProblemDetails
// @Failure 503 {object} common.ProblemDetails
// @Router /calculate_delivery_costs [post]
func CalculateDeliveryCosts(scheduler Trigger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !scheduler.Running() {
			return common.ProblemDetailsJSON(
				c,
				"Delivery cost calculation unavailable",
				nil,
				"The pricing scheduler is not running",
				fiber.StatusServiceUnavailable,
			)
		}
		taskID, queued := scheduler.Trigger()
		message := "Delivery cost calculation started"
		if !queued {
			message = "Delivery cost calculation already queued"
		}
		return c.Status(fiber.StatusAccepted).JSON(TaskAcceptedResponse{
			Status:  fiber.StatusAccepted,
			Message: message,
			TaskID:  taskID.String(),
		})
	}
}

// GetUSDRate returns a Fiber handler exposing the cached USD rate.
// @Summary Current USD rate
// @Description Get the USD exchange rate held in the cache. Expired rates are not returned.
// @Tags pricing
// @Produce json
// @Success 200 {object} common.Response{data=RateResponse}
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /rates/usd [get]
func GetUSDRate(rates provider.RateProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rate, err := rates.CurrentRate(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to read exchange rate", err, fiber.StatusInternalServerError)
		}
		if rate == nil {
			return common.ProblemDetailsJSON(
				c,
				"Exchange rate not available",
				nil,
				"No fresh USD rate is cached yet",
				fiber.StatusNotFound,
			)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Exchange rate fetched", toRateResponse("USD", rate))
	}
}
