// Package events defines the domain events recorded by a point-of-sale
// session. Events are appended to an in-memory history and consumed by the
// receipt projector; nothing is persisted.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"

	"coffeeshop/logic"
)

// Event is a fact recorded by a session.
type Event interface {
	zapcore.ObjectMarshaler
	EventName() string
}

// Page is one entry of a session history.
type Page struct {
	Sequence  uint32
	Event     Event
	CreatedAt time.Time
}

// ItemAdded records an item added to the order, merged or appended.
type ItemAdded struct {
	Name         string
	Quantity     int
	UnitPrice    decimal.Decimal
	LineQuantity int
	OrderTotal   decimal.Decimal
}

func (ItemAdded) EventName() string { return "ItemAdded" }

func (e ItemAdded) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", e.Name)
	enc.AddInt("quantity", e.Quantity)
	enc.AddString("unit_price", e.UnitPrice.StringFixed(2))
	enc.AddInt("line_quantity", e.LineQuantity)
	enc.AddString("order_total", e.OrderTotal.StringFixed(2))
	return nil
}

// ItemRemoved records a line removed from the order.
type ItemRemoved struct {
	Index      int
	Name       string
	Quantity   int
	OrderTotal decimal.Decimal
}

func (ItemRemoved) EventName() string { return "ItemRemoved" }

func (e ItemRemoved) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("index", e.Index)
	enc.AddString("name", e.Name)
	enc.AddInt("quantity", e.Quantity)
	enc.AddString("order_total", e.OrderTotal.StringFixed(2))
	return nil
}

// OrderCleared records the order being emptied.
type OrderCleared struct {
	LinesCleared int
}

func (OrderCleared) EventName() string { return "OrderCleared" }

func (e OrderCleared) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("lines_cleared", e.LinesCleared)
	return nil
}

// DiscountApplied records a recognized discount code.
type DiscountApplied struct {
	Code   string
	Amount decimal.Decimal
}

func (DiscountApplied) EventName() string { return "DiscountApplied" }

func (e DiscountApplied) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("code", e.Code)
	enc.AddString("amount", e.Amount.StringFixed(2))
	return nil
}

// DiscountRejected records an unrecognized discount code.
type DiscountRejected struct {
	Code string
}

func (DiscountRejected) EventName() string { return "DiscountRejected" }

func (e DiscountRejected) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("code", e.Code)
	return nil
}

// LoyaltyPointsRedeemed records points spent for a discount.
type LoyaltyPointsRedeemed struct {
	Points     int64
	Value      decimal.Decimal
	NewBalance int64
}

func (LoyaltyPointsRedeemed) EventName() string { return "LoyaltyPointsRedeemed" }

func (e LoyaltyPointsRedeemed) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("points", e.Points)
	enc.AddString("value", e.Value.StringFixed(2))
	enc.AddInt64("new_balance", e.NewBalance)
	return nil
}

// LoyaltyPointsEarned records points credited for a completed checkout.
type LoyaltyPointsEarned struct {
	Points     int64
	NewBalance int64
}

func (LoyaltyPointsEarned) EventName() string { return "LoyaltyPointsEarned" }

func (e LoyaltyPointsEarned) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("points", e.Points)
	enc.AddInt64("new_balance", e.NewBalance)
	return nil
}

// CheckoutCompleted records a confirmed checkout with its priced lines.
type CheckoutCompleted struct {
	TransactionID uuid.UUID
	Lines         []logic.OrderLine
	Quote         logic.Quote
	PointsEarned  int64
	PointsBalance int64
}

func (CheckoutCompleted) EventName() string { return "CheckoutCompleted" }

func (e CheckoutCompleted) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("transaction_id", e.TransactionID.String())
	enc.AddInt("lines", len(e.Lines))
	enc.AddString("subtotal", e.Quote.Subtotal.StringFixed(2))
	enc.AddString("discount", e.Quote.Discount.StringFixed(2))
	enc.AddString("final_total", e.Quote.FinalTotal.StringFixed(2))
	enc.AddInt64("points_earned", e.PointsEarned)
	enc.AddInt64("points_balance", e.PointsBalance)
	return nil
}

// Abort reasons.
const (
	AbortEmptyOrder = "empty order"
	AbortDeclined   = "declined at confirmation"
)

// CheckoutAborted records a checkout that ended without a sale.
type CheckoutAborted struct {
	Reason string
}

func (CheckoutAborted) EventName() string { return "CheckoutAborted" }

func (e CheckoutAborted) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("reason", e.Reason)
	return nil
}
