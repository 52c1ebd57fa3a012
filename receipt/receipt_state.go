// Package receipt projects session events into receipts and renders the
// text panels shown by the terminal shell.
package receipt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coffeeshop/logic"
)

// TransactionState holds the rebuilt state of the latest checkout.
type TransactionState struct {
	TransactionID   uuid.UUID
	Items           []logic.OrderLine
	Subtotal        decimal.Decimal
	DiscountCode    string
	CodeDiscount    decimal.Decimal
	LoyaltyDiscount decimal.Decimal
	FinalTotal      decimal.Decimal
	PointsEarned    int64
	PointsBalance   int64
	CompletedAt     time.Time
	Completed       bool
	// Sales counts completed checkouts seen in the history.
	Sales int
}

// EmptyTransactionState returns an empty state for new projections.
func EmptyTransactionState() *TransactionState {
	return &TransactionState{}
}

// IsComplete returns true if a checkout has been completed.
func (s *TransactionState) IsComplete() bool {
	return s.Completed
}
