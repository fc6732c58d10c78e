package errors

// Construction errors for payment methods.
var (
	ErrInvalidCardDetails = &DomainError{
		Code:    "INVALID_CARD_DETAILS",
		Message: "card number, expiry date and CVV must be provided",
	}
	ErrInvalidEmail = &DomainError{
		Code:    "INVALID_EMAIL",
		Message: "invalid wallet account email",
	}
	ErrInvalidWalletAddress = &DomainError{
		Code:    "INVALID_WALLET_ADDRESS",
		Message: "invalid or too short crypto wallet address",
	}
	ErrNegativeBalance = &DomainError{
		Code:    "NEGATIVE_BALANCE",
		Message: "initial balance cannot be negative",
	}
	ErrUnknownMethodKind = &DomainError{
		Code:    "UNKNOWN_METHOD_KIND",
		Message: "unknown payment method kind",
	}
)
