package payment

import (
	"strings"

	apperrors "payproc/internal/errors"
	"payproc/internal/validation"
)

// WalletAccount is an e-wallet account identified by its login email.
type WalletAccount struct {
	account
	email string
}

func NewWalletAccount(email string, initialBalance float64) (*WalletAccount, error) {
	email = strings.TrimSpace(email)

	v := validation.New()
	v.WalletAccount(email)
	if err := checkIdentity(v, apperrors.ErrInvalidEmail, initialBalance); err != nil {
		return nil, err
	}

	wallet := &WalletAccount{
		account: newAccount(KindWalletAccount, initialBalance),
		email:   email,
	}
	wallet.log = wallet.log.With().Str("email", email).Logger()
	wallet.log.Debug().Float64("balance", initialBalance).Msg("wallet account registered")

	return wallet, nil
}

func (w *WalletAccount) Kind() Kind { return KindWalletAccount }

func (w *WalletAccount) Label() string {
	return "Wallet: " + w.email
}

func (w *WalletAccount) Email() string { return w.email }

func (w *WalletAccount) Pay(amount float64) bool {
	before := w.balance
	if err := w.debit(amount); err != nil {
		w.log.Debug().
			Err(err).
			Float64("amount", amount).
			Float64("balance", before).
			Msg("wallet payment declined")
		return false
	}

	w.log.Debug().
		Float64("amount", amount).
		Float64("balance", w.balance).
		Msg("wallet payment accepted")
	return true
}
