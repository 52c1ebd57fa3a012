package session

import "context"

// Level classifies a notice for display.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelSuccess
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Notice is a one-way message for the user.
type Notice struct {
	Level   Level
	Title   string
	Message string
}

// Prompter supplies the user dialogs the session needs. Implementations
// belong to the presentation layer.
type Prompter interface {
	// PromptText asks a free-text question. ok is false when the user
	// dismissed the prompt without answering.
	PromptText(ctx context.Context, title, question string) (answer string, ok bool, err error)

	// PromptYesNo asks for a yes/no decision.
	PromptYesNo(ctx context.Context, title, question string) (bool, error)

	// Notify shows a message.
	Notify(ctx context.Context, notice Notice) error
}

// Prompt text shown by the session.
const (
	TitleDiscount = "Discount"
	TitleLoyalty  = "Loyalty"
	TitleConfirm  = "Confirm"
	TitleCheckout = "Confirm Checkout"
	TitleEmpty    = "Empty"
	TitleInvalid  = "Invalid"
	TitleWarning  = "Warning"
	TitleSuccess  = "Success"

	PromptDiscountCode = "Enter discount code (COFFEE10/FIRSTBREW):"
	PromptRedeem       = "Redeem 10 points for $1 off?"
	PromptClearOrder   = "Clear your entire order?"
)

// Status line text.
const (
	StatusWelcome   = "Welcome!"
	StatusRemoved   = "Item removed"
	StatusCleared   = "Order cleared"
	StatusCompleted = "Order completed successfully"
)
