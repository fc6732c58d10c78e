package payment

import "math"

type CryptoFeeCalculator struct {
	percentRate float64
	minFee      float64
	maxFee      float64
}

func NewCryptoFeeCalculator() *CryptoFeeCalculator {
	return &CryptoFeeCalculator{
		percentRate: CryptoFeeRate,
		minFee:      CryptoMinFee,
		maxFee:      CryptoMaxFee,
	}
}

// CalculateFee returns the fee for sending amount to a recipient. The fee is
// charged on top of amount, never taken out of it.
func (fc *CryptoFeeCalculator) CalculateFee(amount float64) float64 {
	fee := math.Max(amount*fc.percentRate, fc.minFee)
	return math.Min(fee, fc.maxFee)
}

// Total is amount plus its fee: what leaves the wallet.
func (fc *CryptoFeeCalculator) Total(amount float64) float64 {
	return amount + fc.CalculateFee(amount)
}
