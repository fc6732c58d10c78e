package handlers

import (
	"errors"

	"payproc/internal/logger"
	"payproc/internal/services/processor"
	"payproc/internal/services/registry"
	"payproc/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	registry *registry.Registry
}

func NewPaymentHandler(reg *registry.Registry) *PaymentHandler {
	return &PaymentHandler{
		registry: reg,
	}
}

type paymentRequest struct {
	MethodID string  `json:"method_id"`
	Amount   float64 `json:"amount"`
}

// ProcessPayment charges the requested method through a processor. The
// registry lock is held for the whole charge.
func (h *PaymentHandler) ProcessPayment(c *fiber.Ctx) error {
	var input paymentRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	id, err := uuid.Parse(input.MethodID)
	if err != nil {
		return utils.BadRequest(c, "Invalid payment method id")
	}
	if !validAmount(input.Amount) {
		return utils.BadRequest(c, "Amount must be greater than 0")
	}

	var (
		view MethodView
		paid bool
	)
	err = h.registry.With(id, func(e registry.Entry) error {
		proc := processor.New(nil)
		proc.SetStrategy(e.Method)
		paid = proc.ProcessPayment(input.Amount)
		view = newMethodView(e)
		return nil
	})
	if errors.Is(err, registry.ErrMethodNotFound) {
		return utils.NotFound(c, "Payment method not found")
	}

	logger.Info().
		Str("method_id", id.String()).
		Float64("amount", input.Amount).
		Bool("success", paid).
		Msg("payment processed")

	if !paid {
		return utils.Respond(c, fiber.StatusPaymentRequired, fiber.Map{
			"success": false,
			"error":   "Payment declined",
			"method":  view,
		})
	}

	return utils.Success(c, fiber.Map{
		"success": true,
		"amount":  input.Amount,
		"method":  view,
	})
}
