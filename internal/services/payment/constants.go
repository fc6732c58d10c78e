package payment

import "golang.org/x/crypto/bcrypt"

// Crypto network fee bounds, applied to the amount the recipient receives.
const (
	CryptoFeeRate   = 0.005
	CryptoMinFee    = 0.1
	CryptoMaxFee    = 5.0
	cryptoLabelSize = 6
	cardLastDigits  = 4
)

// cvvHashCost is the bcrypt cost used when hashing card CVVs.
var cvvHashCost = bcrypt.DefaultCost

// SetCVVHashCost changes the bcrypt cost for cards created afterwards.
// Values outside bcrypt's accepted range are ignored.
func SetCVVHashCost(cost int) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return
	}
	cvvHashCost = cost
}
