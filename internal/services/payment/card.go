package payment

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	apperrors "payproc/internal/errors"
	"payproc/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// Card is a payment card with a prepaid balance. Only the last four digits
// of the number and a bcrypt hash of the CVV digest are kept.
type Card struct {
	account
	lastFour string
	expiry   string
	cvvHash  []byte
}

func NewCard(number, expiry, cvv string, initialBalance float64) (*Card, error) {
	v := validation.New()
	v.Card(number, expiry, cvv)
	if err := checkIdentity(v, apperrors.ErrInvalidCardDetails, initialBalance); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword(cvvDigest(cvv), cvvHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash cvv: %w", err)
	}

	number = strings.TrimSpace(number)
	lastFour := number
	if len(number) > cardLastDigits {
		lastFour = number[len(number)-cardLastDigits:]
	}

	card := &Card{
		account:  newAccount(KindCard, initialBalance),
		lastFour: lastFour,
		expiry:   strings.TrimSpace(expiry),
		cvvHash:  hash,
	}
	card.log = card.log.With().Str("card", lastFour).Logger()
	card.log.Debug().Float64("balance", initialBalance).Msg("card registered")

	return card, nil
}

func (c *Card) Kind() Kind { return KindCard }

func (c *Card) Label() string {
	return "Card ..." + c.lastFour
}

func (c *Card) LastFour() string { return c.lastFour }

func (c *Card) Expiry() string { return c.expiry }

// VerifyCVV reports whether cvv matches the one the card was created with.
func (c *Card) VerifyCVV(cvv string) bool {
	return bcrypt.CompareHashAndPassword(c.cvvHash, cvvDigest(cvv)) == nil
}

// cvvDigest keeps the bcrypt input under its 72 byte limit for any CVV.
func cvvDigest(cvv string) []byte {
	sum := sha256.Sum256([]byte(strings.TrimSpace(cvv)))
	return []byte(hex.EncodeToString(sum[:]))
}

func (c *Card) Pay(amount float64) bool {
	before := c.balance
	if err := c.debit(amount); err != nil {
		c.log.Debug().
			Err(err).
			Float64("amount", amount).
			Float64("balance", before).
			Msg("card payment declined")
		return false
	}

	c.log.Debug().
		Float64("amount", amount).
		Float64("balance", c.balance).
		Msg("card payment accepted")
	return true
}
