package logic

import "github.com/shopspring/decimal"

// Quote is the priced outcome of a checkout before confirmation.
type Quote struct {
	Subtotal        decimal.Decimal
	Code            string
	CodeStatus      CodeStatus
	CodeDiscount    decimal.Decimal
	LoyaltyDiscount decimal.Decimal
	Discount        decimal.Decimal
	FinalTotal      decimal.Decimal
}

// PointsEarned returns the loyalty points the final total would earn.
func (q Quote) PointsEarned() int64 {
	return PointsFor(q.FinalTotal)
}

// Subtotal sums the line totals of an order snapshot.
func Subtotal(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// PriceCheckout prices an order snapshot. The code is looked up in the
// discount table and redeemed adds one RedemptionValue. It mutates nothing;
// the caller spends the points. FinalTotal is never negative.
func PriceCheckout(lines []OrderLine, code string, redeemed bool) Quote {
	subtotal := Subtotal(lines)
	rule, status := LookupDiscount(code)

	q := Quote{
		Subtotal:        subtotal,
		Code:            rule.Code,
		CodeStatus:      status,
		CodeDiscount:    decimal.Zero,
		LoyaltyDiscount: decimal.Zero,
	}
	if status == CodeApplied {
		q.CodeDiscount = rule.Amount(subtotal)
	}
	if redeemed {
		q.LoyaltyDiscount = RedemptionValue
	}
	q.Discount = q.CodeDiscount.Add(q.LoyaltyDiscount)
	q.FinalTotal = decimal.Max(decimal.Zero, subtotal.Sub(q.Discount))
	return q
}
