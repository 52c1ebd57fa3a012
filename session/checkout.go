package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"coffeeshop/events"
	"coffeeshop/logic"
	"coffeeshop/receipt"
)

// CheckoutState is a step of the checkout flow.
type CheckoutState int

const (
	StateIdle CheckoutState = iota
	StateDiscountEntry
	StateLoyaltyPrompt
	StateConfirm
	StateCompleted
	StateAborted
)

func (s CheckoutState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDiscountEntry:
		return "discount_entry"
	case StateLoyaltyPrompt:
		return "loyalty_prompt"
	case StateConfirm:
		return "confirm"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// CheckoutResult describes how a checkout ended.
type CheckoutResult struct {
	State         CheckoutState
	Quote         logic.Quote
	Redeemed      bool
	PointsEarned  int64
	Points        int64
	TransactionID uuid.UUID
	Receipt       string
}

// Completed reports whether the sale went through.
func (r *CheckoutResult) Completed() bool {
	return r.State == StateCompleted
}

// Checkout runs the checkout flow: discount code entry, an optional loyalty
// redemption, and a final confirmation. On confirmation the final total earns
// points and the order is cleared.
//
// Points redeemed at the loyalty step are spent immediately and stay spent if
// the user then declines the confirmation.
func (s *Session) Checkout(ctx context.Context, p Prompter) (*CheckoutResult, error) {
	result := &CheckoutResult{State: StateIdle, Points: s.loyalty.Points()}

	if s.order.IsEmpty() {
		if err := p.Notify(ctx, Notice{Level: LevelInfo, Title: TitleEmpty, Message: logic.ErrMsgOrderEmpty}); err != nil {
			return nil, fmt.Errorf("notify empty order: %w", err)
		}
		s.record(events.CheckoutAborted{Reason: events.AbortEmptyOrder})
		result.State = StateAborted
		return result, nil
	}

	lines := s.order.Lines()
	subtotal := logic.Subtotal(lines)

	result.State = StateDiscountEntry
	code, answered, err := p.PromptText(ctx, TitleDiscount, PromptDiscountCode)
	if err != nil {
		return nil, fmt.Errorf("prompt discount code: %w", err)
	}
	if !answered {
		code = ""
	}
	rule, status := logic.LookupDiscount(code)
	switch status {
	case logic.CodeApplied:
		s.record(events.DiscountApplied{Code: rule.Code, Amount: rule.Amount(subtotal)})
	case logic.CodeInvalid:
		s.record(events.DiscountRejected{Code: rule.Code})
		if err := p.Notify(ctx, Notice{Level: LevelWarning, Title: TitleInvalid, Message: logic.ErrMsgInvalidDiscount}); err != nil {
			return nil, fmt.Errorf("notify invalid code: %w", err)
		}
	}

	if s.loyalty.CanRedeem() {
		result.State = StateLoyaltyPrompt
		redeem, err := p.PromptYesNo(ctx, TitleLoyalty, PromptRedeem)
		if err != nil {
			return nil, fmt.Errorf("prompt loyalty redemption: %w", err)
		}
		if redeem {
			value := s.loyalty.RedeemPoints()
			result.Redeemed = value.IsPositive()
			s.record(events.LoyaltyPointsRedeemed{
				Points:     logic.PointsPerRedemption,
				Value:      value,
				NewBalance: s.loyalty.Points(),
			})
		}
	}
	result.Points = s.loyalty.Points()

	result.State = StateConfirm
	result.Quote = logic.PriceCheckout(lines, code, result.Redeemed)
	confirmed, err := p.PromptYesNo(ctx, TitleCheckout, receipt.FormatConfirmation(result.Quote))
	if err != nil {
		return nil, fmt.Errorf("prompt checkout confirmation: %w", err)
	}
	if !confirmed {
		s.record(events.CheckoutAborted{Reason: events.AbortDeclined})
		s.logger.Info("checkout declined",
			zap.Bool("points_redeemed", result.Redeemed),
			zap.Int64("points", result.Points))
		result.State = StateAborted
		return result, nil
	}

	result.PointsEarned = s.loyalty.EarnPoints(result.Quote.FinalTotal)
	result.Points = s.loyalty.Points()
	result.TransactionID = uuid.New()
	s.record(events.LoyaltyPointsEarned{Points: result.PointsEarned, NewBalance: result.Points})
	s.record(events.CheckoutCompleted{
		TransactionID: result.TransactionID,
		Lines:         lines,
		Quote:         result.Quote,
		PointsEarned:  result.PointsEarned,
		PointsBalance: result.Points,
	})
	s.order.Clear()
	s.status = StatusCompleted
	result.State = StateCompleted
	result.Receipt = s.projector.FormatReceipt(s.shopName, s.projector.RebuildState(s.history))

	if err := p.Notify(ctx, Notice{Level: LevelSuccess, Title: TitleSuccess, Message: receipt.FormatSuccess(result.Points)}); err != nil {
		return result, fmt.Errorf("notify checkout success: %w", err)
	}
	return result, nil
}
