package domain

import "fmt"

const (
	highTaxRate = 0.23
	lowTaxRate  = 0.091
)

// TaxPolicy selects one of the fixed VAT rates.
type TaxPolicy string

const (
	// TaxNone applies no tax.
	TaxNone TaxPolicy = ""
	// TaxHigh applies the 23% rate.
	TaxHigh TaxPolicy = "high"
	// TaxLow applies the 9.1% rate.
	TaxLow TaxPolicy = "low"
)

// Rate returns the multiplier increment for the policy, 0 for TaxNone.
func (t TaxPolicy) Rate() float64 {
	switch t {
	case TaxHigh:
		return highTaxRate
	case TaxLow:
		return lowTaxRate
	default:
		return 0
	}
}

// Enabled reports whether the policy adds tax.
func (t TaxPolicy) Enabled() bool {
	return t == TaxHigh || t == TaxLow
}

// ParseTaxPolicy maps a form value to a TaxPolicy.
func ParseTaxPolicy(s string) (TaxPolicy, error) {
	switch TaxPolicy(s) {
	case TaxNone, TaxHigh, TaxLow:
		return TaxPolicy(s), nil
	default:
		return TaxNone, fmt.Errorf("%w: %q", ErrUnknownTaxType, s)
	}
}
