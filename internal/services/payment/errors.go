package payment

import "errors"

// Decline reasons. They are logged, never returned: Pay and AddFunds report
// declines as false.
var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrFundingDisabled   = errors.New("method does not support direct top-up")
)
