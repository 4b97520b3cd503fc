// Package webapi provides the HTTP API of the parcel service.
// It is organized into sub-packages:
// - parcel: parcel registration, lookup and the parcel type catalog
// - pricing: manual delivery cost runs and the cached exchange rate
// - common: problem details, validation and the session middleware
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/parcels/pkg/app"
	"github.com/amirasaad/parcels/webapi/common"
	parcelweb "github.com/amirasaad/parcels/webapi/parcel"
	pricingweb "github.com/amirasaad/parcels/webapi/pricing"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "Parcel Service API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := common.ErrorToStatusCode(err)
			return common.ProblemDetailsJSON(c, utils.StatusMessage(status), err, status)
		},
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(cors.New())

	gatherer := a.Deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	fiberApp.Get("/swagger/*", swagger.HandlerDefault)

	// Configure rate limiting middleware
	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				// Take the first IP in the chain
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
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				"Rate limit exceeded",
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(common.SessionMiddleware())

	parcelweb.Routes(fiberApp, a.ParcelService)
	pricingweb.Routes(fiberApp, a.Scheduler, a.Deps.RateProvider)
	return fiberApp
}
