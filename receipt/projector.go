package receipt

import (
	"fmt"
	"strings"

	"coffeeshop/events"
	"coffeeshop/logic"
)

// Projector turns a session history into a receipt.
type Projector interface {
	// RebuildState reconstructs the latest checkout from a session history.
	RebuildState(history []events.Page) *TransactionState

	// FormatReceipt renders the receipt text for a completed checkout.
	// Returns an empty string if no checkout has completed.
	FormatReceipt(shopName string, state *TransactionState) string
}

// DefaultProjector is the default implementation of Projector.
type DefaultProjector struct{}

// NewProjector creates a new Projector instance.
func NewProjector() Projector {
	return &DefaultProjector{}
}

// RebuildState applies checkout events in order. A later checkout replaces
// an earlier one.
func (p *DefaultProjector) RebuildState(history []events.Page) *TransactionState {
	state := EmptyTransactionState()

	for _, page := range history {
		if page.Event == nil {
			continue
		}

		event, ok := page.Event.(events.CheckoutCompleted)
		if !ok {
			continue
		}
		sales := state.Sales + 1
		*state = TransactionState{
			TransactionID:   event.TransactionID,
			Items:           event.Lines,
			Subtotal:        event.Quote.Subtotal,
			CodeDiscount:    event.Quote.CodeDiscount,
			LoyaltyDiscount: event.Quote.LoyaltyDiscount,
			FinalTotal:      event.Quote.FinalTotal,
			PointsEarned:    event.PointsEarned,
			PointsBalance:   event.PointsBalance,
			CompletedAt:     page.CreatedAt,
			Completed:       true,
			Sales:           sales,
		}
		if event.Quote.CodeStatus == logic.CodeApplied {
			state.DiscountCode = event.Quote.Code
		}
	}

	return state
}

// FormatReceipt generates the human-readable receipt text.
func (p *DefaultProjector) FormatReceipt(shopName string, state *TransactionState) string {
	if !state.IsComplete() {
		return ""
	}

	var lines []string

	shortTxID := state.TransactionID.String()[:8]

	lines = append(lines, strings.Repeat("═", 40))
	lines = append(lines, center(shopName, 40))
	lines = append(lines, center("RECEIPT", 40))
	lines = append(lines, strings.Repeat("═", 40))
	lines = append(lines, fmt.Sprintf("Transaction: %s  Sale #%d", shortTxID, state.Sales))
	if !state.CompletedAt.IsZero() {
		lines = append(lines, fmt.Sprintf("Date: %s", state.CompletedAt.Format("2006-01-02 15:04")))
	}
	lines = append(lines, strings.Repeat("─", 40))

	for _, item := range state.Items {
		lines = append(lines, fmt.Sprintf("%d x %s @ $%s = $%s",
			item.Quantity,
			item.Item.Name,
			item.Item.UnitPrice.StringFixed(2),
			item.LineTotal().StringFixed(2)))
	}

	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, fmt.Sprintf("Subtotal:              $%s", state.Subtotal.StringFixed(2)))
	if state.CodeDiscount.IsPositive() {
		lines = append(lines, fmt.Sprintf("Discount (%s):   -$%s", state.DiscountCode, state.CodeDiscount.StringFixed(2)))
	}
	if state.LoyaltyDiscount.IsPositive() {
		lines = append(lines, fmt.Sprintf("Loyalty reward:        -$%s", state.LoyaltyDiscount.StringFixed(2)))
	}
	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, fmt.Sprintf("TOTAL:                 $%s", state.FinalTotal.StringFixed(2)))
	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, fmt.Sprintf("Loyalty Points Earned: %d", state.PointsEarned))
	lines = append(lines, fmt.Sprintf("Loyalty Points Total:  %d", state.PointsBalance))
	lines = append(lines, strings.Repeat("═", 40))
	lines = append(lines, center("Thank you for your purchase!", 40))
	lines = append(lines, strings.Repeat("═", 40))

	return strings.Join(lines, "\n")
}

func center(text string, width int) string {
	pad := (width - len([]rune(text))) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
