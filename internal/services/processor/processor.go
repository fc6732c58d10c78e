package processor

import (
	"errors"
	"fmt"

	"payproc/internal/logger"
	"payproc/internal/services/payment"

	"github.com/rs/zerolog"
)

var (
	ErrNoStrategy    = errors.New("payment strategy not set")
	ErrInvalidAmount = errors.New("payment amount must be positive")
)

// Processor charges payments through whichever method is currently selected.
// It starts without a strategy; every payment fails until one is set.
type Processor struct {
	strategy payment.Method
	log      zerolog.Logger
}

// New creates a processor. initial may be nil.
func New(initial payment.Method) *Processor {
	p := &Processor{
		log: logger.With().Str("component", "processor").Logger(),
	}
	if initial != nil {
		p.SetStrategy(initial)
	} else {
		p.log.Debug().Msg("processor initialised without a strategy")
	}
	return p
}

// SetStrategy selects the method used for subsequent payments, replacing any
// previous one. Passing nil clears the selection.
func (p *Processor) SetStrategy(method payment.Method) {
	p.strategy = method
	if method == nil {
		p.log.Debug().Msg("payment strategy cleared")
		return
	}
	p.log.Debug().Type("method", method).Msg("payment strategy set")
}

func (p *Processor) Strategy() payment.Method {
	return p.strategy
}

func (p *Processor) HasStrategy() bool {
	return p.strategy != nil
}

// ProcessPayment forwards amount to the selected method and returns its
// verdict. It never panics: a panic inside the method is logged and reported
// as a failed payment.
func (p *Processor) ProcessPayment(amount float64) (ok bool) {
	if p.strategy == nil {
		p.log.Warn().Err(ErrNoStrategy).Msg("payment rejected")
		return false
	}
	if !(amount > 0) {
		p.log.Debug().Err(ErrInvalidAmount).Float64("amount", amount).Msg("payment rejected")
		return false
	}

	strategy := p.strategy
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().
				Err(fmt.Errorf("%v", r)).
				Type("method", strategy).
				Float64("amount", amount).
				Msg("payment method failed during processing")
			ok = false
		}
	}()

	p.log.Debug().
		Type("method", strategy).
		Float64("amount", amount).
		Msg("processing payment")

	return strategy.Pay(amount)
}
