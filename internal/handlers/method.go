package handlers

import (
	"errors"
	"math"
	"strconv"
	"time"

	"payproc/internal/logger"
	"payproc/internal/services/payment"
	"payproc/internal/services/registry"
	"payproc/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultPageSize = 20

type MethodHandler struct {
	registry *registry.Registry
}

func NewMethodHandler(reg *registry.Registry) *MethodHandler {
	return &MethodHandler{
		registry: reg,
	}
}

// MethodView is the JSON shape of a saved payment method.
type MethodView struct {
	ID          uuid.UUID    `json:"id"`
	Kind        payment.Kind `json:"kind"`
	Label       string       `json:"label"`
	Balance     float64      `json:"balance"`
	BalanceInfo string       `json:"balance_info,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

func newMethodView(e registry.Entry) MethodView {
	return MethodView{
		ID:          e.ID,
		Kind:        e.Method.Kind(),
		Label:       e.Method.Label(),
		Balance:     e.Method.Balance(),
		BalanceInfo: e.Method.BalanceInfo(),
		CreatedAt:   e.CreatedAt,
	}
}

type createMethodRequest struct {
	Kind           string  `json:"kind"`
	CardNumber     string  `json:"card_number"`
	Expiry         string  `json:"expiry"`
	CVV            string  `json:"cvv"`
	Email          string  `json:"email"`
	WalletAddress  string  `json:"wallet_address"`
	InitialBalance float64 `json:"initial_balance"`
}

type amountRequest struct {
	Amount float64 `json:"amount"`
}

func (h *MethodHandler) CreateMethod(c *fiber.Ctx) error {
	var input createMethodRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	kind, err := payment.ParseKind(input.Kind)
	if err != nil {
		return utils.DomainError(c, err)
	}

	method, err := payment.NewMethod(kind, payment.MethodInput{
		CardNumber:     input.CardNumber,
		Expiry:         input.Expiry,
		CVV:            input.CVV,
		Email:          input.Email,
		WalletAddress:  input.WalletAddress,
		InitialBalance: input.InitialBalance,
	})
	if err != nil {
		return utils.DomainError(c, err)
	}

	entry, err := h.registry.Add(method)
	if err != nil {
		return utils.InternalError(c, "Failed to save payment method")
	}

	var view MethodView
	err = h.registry.With(entry.ID, func(e registry.Entry) error {
		view = newMethodView(e)
		return nil
	})
	if err != nil {
		return utils.InternalError(c, "Failed to load saved payment method")
	}

	logger.Info().
		Str("id", entry.ID.String()).
		Str("kind", kind.String()).
		Msg("payment method saved")

	return utils.Created(c, fiber.Map{"method": view})
}

func (h *MethodHandler) ListMethods(c *fiber.Ctx) error {
	page := utils.GetPagination(c, 1, defaultPageSize)

	views := make([]MethodView, 0, page.Limit)
	total := 0
	h.registry.Each(func(e registry.Entry) {
		if page.Contains(total) {
			views = append(views, newMethodView(e))
		}
		total++
	})
	page.SetTotal(total)

	return utils.Success(c, fiber.Map{
		"methods":    views,
		"pagination": page,
	})
}

func (h *MethodHandler) GetMethod(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid payment method id")
	}

	var view MethodView
	err = h.registry.With(id, func(e registry.Entry) error {
		view = newMethodView(e)
		return nil
	})
	if errors.Is(err, registry.ErrMethodNotFound) {
		return utils.NotFound(c, "Payment method not found")
	}

	return utils.Success(c, fiber.Map{"method": view})
}

func (h *MethodHandler) AddFunds(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid payment method id")
	}

	var input amountRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if !validAmount(input.Amount) {
		return utils.BadRequest(c, "Amount must be greater than 0")
	}

	var (
		view     MethodView
		accepted bool
	)
	err = h.registry.With(id, func(e registry.Entry) error {
		accepted = e.Method.AddFunds(input.Amount)
		view = newMethodView(e)
		return nil
	})
	if errors.Is(err, registry.ErrMethodNotFound) {
		return utils.NotFound(c, "Payment method not found")
	}
	if !accepted {
		return utils.UnprocessableEntity(c, "Payment method does not accept top-ups")
	}

	return utils.Success(c, fiber.Map{
		"message": "Top up successful",
		"amount":  input.Amount,
		"method":  view,
	})
}

// QuoteFee previews the network fee of a crypto payment without sending it.
func (h *MethodHandler) QuoteFee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid payment method id")
	}

	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil || !validAmount(amount) {
		return utils.BadRequest(c, "Amount must be greater than 0")
	}

	var (
		fee      float64
		isCrypto bool
	)
	err = h.registry.With(id, func(e registry.Entry) error {
		wallet, ok := e.Method.(*payment.CryptoWallet)
		if ok {
			isCrypto = true
			fee = wallet.Fee(amount)
		}
		return nil
	})
	if errors.Is(err, registry.ErrMethodNotFound) {
		return utils.NotFound(c, "Payment method not found")
	}
	if !isCrypto {
		return utils.BadRequest(c, "Fees only apply to crypto wallets")
	}

	return utils.Success(c, fiber.Map{
		"amount": amount,
		"fee":    fee,
		"total":  amount + fee,
	})
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}
