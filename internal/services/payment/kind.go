package payment

import (
	"fmt"
	"strings"

	apperrors "payproc/internal/errors"
)

type Kind string

const (
	KindCard          Kind = "card"
	KindWalletAccount Kind = "wallet_account"
	KindCryptoWallet  Kind = "crypto_wallet"
)

var allKinds = map[string]Kind{
	KindCard.String():          KindCard,
	KindWalletAccount.String(): KindWalletAccount,
	KindCryptoWallet.String():  KindCryptoWallet,
}

// ParseKind resolves a kind name, case-insensitively.
func ParseKind(value string) (Kind, error) {
	if kind, ok := allKinds[strings.ToLower(strings.TrimSpace(value))]; ok {
		return kind, nil
	}
	return "", apperrors.ErrUnknownMethodKind.WithDetails(map[string]string{
		"kind": fmt.Sprintf("%q is not one of card, wallet_account, crypto_wallet", value),
	})
}

func (k Kind) String() string {
	return string(k)
}

// DisplayName is the human readable name used in menus.
func (k Kind) DisplayName() string {
	switch k {
	case KindCard:
		return "Card"
	case KindWalletAccount:
		return "WalletAccount"
	case KindCryptoWallet:
		return "CryptoWallet"
	default:
		return "Unknown"
	}
}
