// Package routes defines the API routing configuration.
package routes

import (
	"time"

	"payproc/internal/handlers"
	"payproc/internal/services/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// PaymentRateLimit caps payment requests per client IP per minute.
const PaymentRateLimit = 30

// SetupRoutes registers every endpoint against the given registry.
func SetupRoutes(app *fiber.App, reg *registry.Registry) {
	methodHandler := handlers.NewMethodHandler(reg)
	paymentHandler := handlers.NewPaymentHandler(reg)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	methods := api.Group("/methods")
	methods.Post("/", methodHandler.CreateMethod)
	methods.Get("/", methodHandler.ListMethods)
	methods.Get("/:id", methodHandler.GetMethod)
	methods.Get("/:id/fee", methodHandler.QuoteFee)
	methods.Post("/:id/funds", methodHandler.AddFunds)

	api.Post("/payments", limiter.New(limiter.Config{
		Max:        PaymentRateLimit,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}), paymentHandler.ProcessPayment)
}
