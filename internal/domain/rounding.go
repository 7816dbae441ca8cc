package domain

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

const centPlaces = 2

// Round2 rounds x to the nearest cent, halves away from zero.
// The float is converted through its shortest decimal form, so 125.465
// becomes 125.47 rather than following the binary value below it.
// Infinities and NaN are returned unchanged.
func Round2(x float64) float64 {
	if !isFinite(x) {
		return x
	}
	return decimal.NewFromFloat(x).Round(centPlaces).InexactFloat64()
}

// FormatCents renders x with exactly two decimals.
func FormatCents(x float64) string {
	if !isFinite(x) {
		return strconv.FormatFloat(x, 'f', centPlaces, 64)
	}
	return decimal.NewFromFloat(x).StringFixed(centPlaces)
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// Finite reports whether every amount of a calculation is a real number.
func Finite(result PricingResult, steps CalculationSteps) bool {
	for _, v := range []float64{
		result.StandardPrice, result.FinalPrice, result.Profit, result.ActualProfitRate,
		steps.BasePrice, steps.AfterProfit, steps.AfterDiscount, steps.AfterTax,
	} {
		if !isFinite(v) {
			return false
		}
	}
	return true
}
