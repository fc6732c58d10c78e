package payment

import (
	"fmt"

	apperrors "payproc/internal/errors"
)

// MethodInput carries every identity field a variant may need. Fields that
// do not apply to the requested kind are ignored.
type MethodInput struct {
	CardNumber     string
	Expiry         string
	CVV            string
	Email          string
	WalletAddress  string
	InitialBalance float64
}

// NewMethod builds the variant named by kind from input.
func NewMethod(kind Kind, input MethodInput) (Method, error) {
	switch kind {
	case KindCard:
		card, err := NewCard(input.CardNumber, input.Expiry, input.CVV, input.InitialBalance)
		if err != nil {
			return nil, err
		}
		return card, nil
	case KindWalletAccount:
		wallet, err := NewWalletAccount(input.Email, input.InitialBalance)
		if err != nil {
			return nil, err
		}
		return wallet, nil
	case KindCryptoWallet:
		wallet, err := NewCryptoWallet(input.WalletAddress, input.InitialBalance)
		if err != nil {
			return nil, err
		}
		return wallet, nil
	default:
		return nil, apperrors.ErrUnknownMethodKind.WithDetails(map[string]string{
			"kind": fmt.Sprintf("unsupported payment method kind: %s", kind),
		})
	}
}
