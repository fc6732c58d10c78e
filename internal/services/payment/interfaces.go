package payment

// Method is a funding source that can be charged and topped up.
type Method interface {
	Kind() Kind
	Label() string

	// Pay charges amount and reports whether the charge went through.
	Pay(amount float64) bool

	// AddFunds credits amount and reports whether the top-up went through.
	AddFunds(amount float64) bool

	Balance() float64
	BalanceInfo() string
}

type fundingSupporter interface {
	SupportsFunding() bool
}

// SupportsFunding reports whether m accepts top-ups. Methods that embed
// NoFunding opt out.
func SupportsFunding(m Method) bool {
	if f, ok := m.(fundingSupporter); ok {
		return f.SupportsFunding()
	}
	return true
}
