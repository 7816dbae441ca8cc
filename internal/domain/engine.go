package domain

const percent = 100.0

// Compute derives the list price and in-hand price for a request.
//
// The pipeline runs markup, tax, then discount reversal, in that order.
// Intermediate amounts stay at full precision; only the result fields are
// rounded. Compute does not validate its input: a non-positive cost or a
// negative profit rate must be rejected by the caller (see QuoteForm).
func Compute(req PricingRequest) (PricingResult, CalculationSteps) {
	profit := req.Cost * (req.ProfitRate / percent)
	afterProfit := req.Cost + profit

	// Tax is charged on the marked-up amount, never on the raw cost.
	afterTax := afterProfit
	if req.Tax.Enabled() {
		afterTax = afterProfit * (1 + req.Tax.Rate())
	}

	standardPrice := reverseDiscount(afterTax, req.Discount)

	steps := CalculationSteps{
		BasePrice:     req.Cost,
		AfterProfit:   afterProfit,
		AfterDiscount: standardPrice,
		AfterTax:      afterTax,
	}

	// TODO(pricing): ActualProfitRate echoes the requested rate; product still has to decide
	// whether it should be the margin realized against the list price.
	result := PricingResult{
		StandardPrice:    Round2(standardPrice),
		FinalPrice:       Round2(afterTax),
		Profit:           Round2(profit),
		ActualProfitRate: Round2(req.ProfitRate),
	}

	return result, steps
}

// reverseDiscount returns the list price that, once the discount is taken
// off, leaves inHand for the customer to pay.
func reverseDiscount(inHand float64, d DiscountPolicy) float64 {
	switch d.Kind {
	case DiscountAmountOff:
		// Zero threshold or amount means the promotion is not configured.
		if d.Threshold == 0 || d.Amount == 0 {
			return inHand
		}
		if inHand >= d.Threshold {
			return inHand + d.Amount
		}
		return inHand
	case DiscountPercentageOff:
		if d.Percent == 0 {
			return inHand
		}
		return inHand / (d.Percent / percent)
	default:
		return inHand
	}
}
