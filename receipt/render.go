package receipt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"coffeeshop/logic"
)

const (
	// EmptyOrderText is shown in place of lines for an empty order.
	EmptyOrderText = "Your order is empty."
	// PointsBarMax is the balance at which the progress bar is full.
	PointsBarMax = 100

	pointsBarWidth = 20
	separatorWidth = 35
)

// FormatMenu renders the catalog with one-based menu numbers.
func FormatMenu(items []logic.CatalogItem) []string {
	out := make([]string, 0, len(items))
	for i, item := range items {
		out = append(out, fmt.Sprintf("%d. %s - $%s", i+1, item.Name, item.UnitPrice.StringFixed(2)))
	}
	return out
}

// FormatOrder renders the order panel: one row per line, a separator and
// the total.
func FormatOrder(lines []logic.OrderLine, total decimal.Decimal) []string {
	if len(lines) == 0 {
		return []string{EmptyOrderText}
	}
	out := make([]string, 0, len(lines)+2)
	for _, line := range lines {
		out = append(out, fmt.Sprintf("%-15s x%-2d $%s", line.Item.Name, line.Quantity, line.LineTotal().StringFixed(2)))
	}
	out = append(out, strings.Repeat("-", separatorWidth))
	out = append(out, fmt.Sprintf("Total: $%s", total.StringFixed(2)))
	return out
}

// PointsBar renders the loyalty balance as a bar that fills at PointsBarMax.
func PointsBar(points int64) string {
	shown := min(max(points, 0), PointsBarMax)
	filled := int(shown * pointsBarWidth / PointsBarMax)
	return fmt.Sprintf("[%s%s] %d pts",
		strings.Repeat("#", filled),
		strings.Repeat(".", pointsBarWidth-filled),
		points)
}

// FormatConfirmation renders the final confirmation question.
func FormatConfirmation(q logic.Quote) string {
	return fmt.Sprintf("Total: $%s\nDiscount: $%s\nFinal: $%s\nProceed?",
		q.Subtotal.StringFixed(2),
		q.Discount.StringFixed(2),
		q.FinalTotal.StringFixed(2))
}

// FormatSuccess renders the message shown after a confirmed checkout.
func FormatSuccess(points int64) string {
	return fmt.Sprintf("Order confirmed!\nYou earned points. Total points: %d", points)
}

// FormatQuote renders a priced checkout for display outside the flow.
func FormatQuote(q logic.Quote) []string {
	out := []string{fmt.Sprintf("Subtotal: $%s", q.Subtotal.StringFixed(2))}
	switch q.CodeStatus {
	case logic.CodeApplied:
		out = append(out, fmt.Sprintf("Code %s: -$%s", q.Code, q.CodeDiscount.StringFixed(2)))
	case logic.CodeInvalid:
		out = append(out, fmt.Sprintf("Code %s: %s", q.Code, logic.ErrMsgInvalidDiscount))
	}
	if q.LoyaltyDiscount.IsPositive() {
		out = append(out, fmt.Sprintf("Loyalty: -$%s", q.LoyaltyDiscount.StringFixed(2)))
	}
	out = append(out, fmt.Sprintf("Final: $%s", q.FinalTotal.StringFixed(2)))
	out = append(out, fmt.Sprintf("Points earned: %d", q.PointsEarned()))
	return out
}
