package console

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNotANumber      = errors.New("not a number")
	ErrNonPositive     = errors.New("amount must be a positive number")
	ErrNegativeBalance = errors.New("initial balance cannot be negative")
)

// ParseAmount parses a payment or top-up amount typed by the user.
func ParseAmount(text string) (float64, error) {
	amount, err := parseFinite(text)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, ErrNonPositive
	}
	return amount, nil
}

// ParseInitialBalance parses an opening balance. Empty input means zero.
func ParseInitialBalance(text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	balance, err := parseFinite(text)
	if err != nil {
		return 0, err
	}
	if balance < 0 {
		return 0, ErrNegativeBalance
	}
	return balance, nil
}

// parseChoice turns a 1-based menu selection into an index below n.
func parseChoice(text string, n int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, ErrNotANumber
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("choice must be between 1 and %d", n)
	}
	return choice - 1, nil
}

func parseFinite(text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrNotANumber
	}
	return value, nil
}
