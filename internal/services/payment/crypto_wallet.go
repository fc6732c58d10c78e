package payment

import (
	"strings"

	apperrors "payproc/internal/errors"
	"payproc/internal/validation"
)

// CryptoWallet sends funds on-chain. Every payment carries a network fee
// on top of the amount the recipient receives.
type CryptoWallet struct {
	account
	address string
	fees    *CryptoFeeCalculator
}

func NewCryptoWallet(address string, initialBalance float64) (*CryptoWallet, error) {
	address = strings.TrimSpace(address)

	v := validation.New()
	v.CryptoWallet(address)
	if err := checkIdentity(v, apperrors.ErrInvalidWalletAddress, initialBalance); err != nil {
		return nil, err
	}

	wallet := &CryptoWallet{
		account: newAccount(KindCryptoWallet, initialBalance),
		address: address,
		fees:    NewCryptoFeeCalculator(),
	}
	wallet.log = wallet.log.With().Str("address", wallet.shortAddress()).Logger()
	wallet.log.Debug().Float64("balance", initialBalance).Msg("crypto wallet registered")

	return wallet, nil
}

func (w *CryptoWallet) Kind() Kind { return KindCryptoWallet }

func (w *CryptoWallet) Label() string {
	return "Crypto: " + w.shortAddress()
}

func (w *CryptoWallet) Address() string { return w.address }

// Fee quotes the network fee for sending amount.
func (w *CryptoWallet) Fee(amount float64) float64 {
	return w.fees.CalculateFee(amount)
}

// Pay sends amountToSend to the recipient and debits it together with the fee.
func (w *CryptoWallet) Pay(amountToSend float64) bool {
	if !validAmount(amountToSend) {
		w.log.Debug().
			Err(ErrInvalidAmount).
			Float64("amount", amountToSend).
			Msg("crypto payment declined")
		return false
	}

	fee := w.fees.CalculateFee(amountToSend)
	total := amountToSend + fee
	before := w.balance

	if err := w.debit(total); err != nil {
		w.log.Debug().
			Err(err).
			Float64("amount", amountToSend).
			Float64("fee", fee).
			Float64("total", total).
			Float64("balance", before).
			Msg("crypto payment declined")
		return false
	}

	w.log.Debug().
		Float64("amount", amountToSend).
		Float64("fee", fee).
		Float64("balance", w.balance).
		Msg("crypto payment sent")
	return true
}

func (w *CryptoWallet) shortAddress() string {
	runes := []rune(w.address)
	if len(runes) <= cryptoLabelSize {
		return w.address
	}
	return string(runes[:cryptoLabelSize]) + "..."
}
