package payment

import (
	"fmt"
	"math"

	apperrors "payproc/internal/errors"
	"payproc/internal/logger"
	"payproc/internal/validation"

	"github.com/rs/zerolog"
)

// account holds the balance arithmetic shared by every funded variant.
// The balance never goes below zero.
type account struct {
	balance float64
	log     zerolog.Logger
}

func newAccount(kind Kind, initialBalance float64) account {
	return account{
		balance: initialBalance,
		log:     logger.With().Str("method", kind.String()).Logger(),
	}
}

func (a *account) Balance() float64 {
	return a.balance
}

func (a *account) BalanceInfo() string {
	return fmt.Sprintf("Balance: $%.2f", a.balance)
}

func (a *account) AddFunds(amount float64) bool {
	if !validAmount(amount) {
		a.log.Debug().Err(ErrInvalidAmount).Float64("amount", amount).Msg("top-up declined")
		return false
	}

	a.balance += amount
	a.log.Debug().
		Float64("amount", amount).
		Float64("balance", a.balance).
		Msg("balance topped up")
	return true
}

// debit removes total from the balance or explains why it cannot.
func (a *account) debit(total float64) error {
	if !validAmount(total) {
		return ErrInvalidAmount
	}
	if total > a.balance {
		return ErrInsufficientFunds
	}
	a.balance -= total
	return nil
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 1)
}

// NoFunding can be embedded by a Method that does not accept top-ups.
type NoFunding struct{}

func (NoFunding) AddFunds(amount float64) bool {
	logger.Debug().Err(ErrFundingDisabled).Float64("amount", amount).Msg("top-up declined")
	return false
}

func (NoFunding) SupportsFunding() bool { return false }

func (NoFunding) BalanceInfo() string { return "" }

// checkIdentity turns identity-field failures into kindErr and balance
// failures into ErrNegativeBalance, in that order.
func checkIdentity(v *validation.Validator, kindErr *apperrors.DomainError, initialBalance float64) error {
	if !v.Valid() {
		return kindErr.WithDetails(v.Errors)
	}

	v.InitialBalance(initialBalance)
	if !v.Valid() {
		return apperrors.ErrNegativeBalance.WithDetails(v.Errors)
	}
	return nil
}
