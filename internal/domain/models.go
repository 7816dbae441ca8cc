package domain

import "time"

// PricingRequest is the input to the pricing engine.
// Callers build it once per calculation and never mutate it afterwards.
type PricingRequest struct {
	Cost       float64        `json:"cost"`
	ProfitRate float64        `json:"profit_rate"` // percent, 20 means 20%
	Tax        TaxPolicy      `json:"tax"`
	Discount   DiscountPolicy `json:"discount"`
}

// DiscountKind identifies the active discount rule.
type DiscountKind string

const (
	// DiscountNone grants no discount.
	DiscountNone DiscountKind = ""
	// DiscountAmountOff subtracts a fixed amount once a spend threshold is reached.
	DiscountAmountOff DiscountKind = "amount"
	// DiscountPercentageOff keeps Percent percent of the list price.
	DiscountPercentageOff DiscountKind = "percentage"
)

// DiscountPolicy describes an optional discount rule.
// A zero Threshold, Amount or Percent means the value was not configured.
type DiscountPolicy struct {
	Kind      DiscountKind `json:"kind,omitempty"`
	Threshold float64      `json:"threshold,omitempty"`
	Amount    float64      `json:"amount,omitempty"`
	Percent   float64      `json:"percent,omitempty"`
}

// NoDiscount returns a policy that grants no discount.
func NoDiscount() DiscountPolicy {
	return DiscountPolicy{Kind: DiscountNone}
}

// AmountOff returns a "spend threshold, subtract amount" policy.
func AmountOff(threshold, amount float64) DiscountPolicy {
	return DiscountPolicy{Kind: DiscountAmountOff, Threshold: threshold, Amount: amount}
}

// PercentageOff returns a policy that keeps percent percent of the list price (90 = 10% off).
func PercentageOff(percent float64) DiscountPolicy {
	return DiscountPolicy{Kind: DiscountPercentageOff, Percent: percent}
}

// PricingResult holds the rounded prices shown to the seller.
type PricingResult struct {
	StandardPrice float64 `json:"standard_price"` // list price before discount
	FinalPrice    float64 `json:"final_price"`    // what the customer pays
	Profit        float64 `json:"profit"`
	// ActualProfitRate echoes the requested rate. It is not derived from the
	// realized prices, so tax and discount do not show up in it.
	ActualProfitRate float64 `json:"actual_profit_rate"`
}

// CalculationSteps is the unrounded trail of intermediate amounts.
type CalculationSteps struct {
	BasePrice     float64 `json:"base_price"`
	AfterProfit   float64 `json:"after_profit"`
	AfterDiscount float64 `json:"after_discount"` // list price after reversing the discount
	AfterTax      float64 `json:"after_tax"`
}

// Quote is a stored pricing calculation.
type Quote struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Request   PricingRequest   `json:"request"`
	Result    PricingResult    `json:"result"`
	Steps     CalculationSteps `json:"steps"`
	Display   QuoteDisplay     `json:"display"`
}

// QuoteDisplay is the two-decimal rendering of a quote.
type QuoteDisplay struct {
	StandardPrice    string `json:"standard_price"`
	FinalPrice       string `json:"final_price"`
	Profit           string `json:"profit"`
	ActualProfitRate string `json:"actual_profit_rate"`
	BasePrice        string `json:"base_price"`
	AfterProfit      string `json:"after_profit"`
	AfterDiscount    string `json:"after_discount"`
	AfterTax         string `json:"after_tax"`
}
