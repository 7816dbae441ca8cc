package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCost indicates a cost that is zero or negative.
	ErrInvalidCost = errors.New("cost must be greater than zero")

	// ErrInvalidProfitRate indicates a negative profit rate.
	ErrInvalidProfitRate = errors.New("profit rate cannot be negative")

	// ErrUnknownTaxType indicates a tax type outside the fixed rate table.
	ErrUnknownTaxType = errors.New("unknown tax type")

	// ErrUnknownDiscountType indicates a discount type that is neither amount nor percentage.
	ErrUnknownDiscountType = errors.New("unknown discount type")

	// ErrPriceOverflow indicates inputs whose prices exceed float64 range.
	ErrPriceOverflow = errors.New("computed price is out of range")
)

// QuoteForm carries the raw field values a seller fills in.
type QuoteForm struct {
	Cost               float64 `json:"cost"`
	ProfitRate         float64 `json:"profit_rate"`
	HasTax             bool    `json:"has_tax"`
	TaxType            string  `json:"tax_type,omitempty"`
	HasDiscount        bool    `json:"has_discount"`
	DiscountType       string  `json:"discount_type,omitempty"`
	DiscountThreshold  float64 `json:"discount_threshold,omitempty"`
	DiscountAmount     float64 `json:"discount_amount,omitempty"`
	DiscountPercentage float64 `json:"discount_percentage,omitempty"`
}

// ToRequest validates the form and maps it to a PricingRequest.
// Discount values are passed through unchanged, zeros included.
func (f QuoteForm) ToRequest() (PricingRequest, error) {
	if f.Cost <= 0 {
		return PricingRequest{}, ErrInvalidCost
	}

	if f.ProfitRate < 0 {
		return PricingRequest{}, ErrInvalidProfitRate
	}

	tax := TaxNone
	if f.HasTax {
		parsed, err := ParseTaxPolicy(f.TaxType)
		if err != nil {
			return PricingRequest{}, err
		}
		tax = parsed
	}

	discount := NoDiscount()
	if f.HasDiscount {
		switch DiscountKind(f.DiscountType) {
		case DiscountNone:
			// Discount toggled on without a type selected.
		case DiscountAmountOff:
			discount = AmountOff(f.DiscountThreshold, f.DiscountAmount)
		case DiscountPercentageOff:
			discount = PercentageOff(f.DiscountPercentage)
		default:
			return PricingRequest{}, fmt.Errorf("%w: %q", ErrUnknownDiscountType, f.DiscountType)
		}
	}

	return PricingRequest{
		Cost:       f.Cost,
		ProfitRate: f.ProfitRate,
		Tax:        tax,
		Discount:   discount,
	}, nil
}

// IsValidationError reports whether err came from form validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidCost) ||
		errors.Is(err, ErrInvalidProfitRate) ||
		errors.Is(err, ErrUnknownTaxType) ||
		errors.Is(err, ErrUnknownDiscountType) ||
		errors.Is(err, ErrPriceOverflow)
}

// NewQuoteDisplay renders a result and its steps with two decimals.
func NewQuoteDisplay(result PricingResult, steps CalculationSteps) QuoteDisplay {
	return QuoteDisplay{
		StandardPrice:    FormatCents(result.StandardPrice),
		FinalPrice:       FormatCents(result.FinalPrice),
		Profit:           FormatCents(result.Profit),
		ActualProfitRate: FormatCents(result.ActualProfitRate),
		BasePrice:        FormatCents(steps.BasePrice),
		AfterProfit:      FormatCents(steps.AfterProfit),
		AfterDiscount:    FormatCents(steps.AfterDiscount),
		AfterTax:         FormatCents(steps.AfterTax),
	}
}
