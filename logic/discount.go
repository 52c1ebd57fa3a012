package logic

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CodeStatus is the outcome of a discount code lookup.
type CodeStatus int

const (
	// CodeNone means no code was supplied.
	CodeNone CodeStatus = iota
	// CodeApplied means the code matched the table.
	CodeApplied
	// CodeInvalid means a non-empty code did not match; the user is told.
	CodeInvalid
)

func (s CodeStatus) String() string {
	switch s {
	case CodeNone:
		return "none"
	case CodeApplied:
		return "applied"
	case CodeInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// DiscountRule is one row of the discount code table.
type DiscountRule struct {
	Code    string
	Percent decimal.Decimal
	Flat    decimal.Decimal
}

// Amount returns the discount the rule grants on subtotal.
func (r DiscountRule) Amount(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(r.Percent).Div(decimal.NewFromInt(100)).Add(r.Flat)
}

var discountCodes = map[string]DiscountRule{
	"COFFEE10":  {Code: "COFFEE10", Percent: decimal.NewFromInt(10), Flat: decimal.Zero},
	"FIRSTBREW": {Code: "FIRSTBREW", Percent: decimal.Zero, Flat: decimal.New(200, -2)},
}

// NormalizeCode trims surrounding whitespace and upper-cases a code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LookupDiscount matches a user-entered code against the table.
func LookupDiscount(code string) (DiscountRule, CodeStatus) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return DiscountRule{}, CodeNone
	}
	rule, ok := discountCodes[normalized]
	if !ok {
		return DiscountRule{Code: normalized}, CodeInvalid
	}
	return rule, CodeApplied
}
