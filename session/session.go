// Package session owns the state of one point-of-sale session: the order
// being assembled and the loyalty account, and the flows that mutate them.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"coffeeshop/events"
	"coffeeshop/logic"
	"coffeeshop/receipt"
)

// Session is a single-user point-of-sale session. It is not safe for
// concurrent use; all operations run on the caller's goroutine.
type Session struct {
	id        uuid.UUID
	shopName  string
	catalog   *logic.Catalog
	order     *logic.Order
	loyalty   *logic.LoyaltyAccount
	projector receipt.Projector
	logger    *zap.Logger
	history   []events.Page
	status    string
	now       func() time.Time
}

// New creates a session with an empty order and a zero point balance.
func New(shopName string, catalog *logic.Catalog, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()
	return &Session{
		id:        id,
		shopName:  shopName,
		catalog:   catalog,
		order:     logic.NewOrder(),
		loyalty:   logic.NewLoyaltyAccount(),
		projector: receipt.NewProjector(),
		logger:    logger.With(zap.String("session_id", id.String())),
		history:   make([]events.Page, 0),
		status:    StatusWelcome,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) ShopName() string {
	return s.shopName
}

func (s *Session) Catalog() *logic.Catalog {
	return s.catalog
}

// Lines returns the current order lines in display order.
func (s *Session) Lines() []logic.OrderLine {
	return s.order.Lines()
}

func (s *Session) Total() decimal.Decimal {
	return s.order.Total()
}

func (s *Session) Points() int64 {
	return s.loyalty.Points()
}

// Status returns the text of the status line.
func (s *Session) Status() string {
	return s.status
}

// History returns a copy of the recorded events.
func (s *Session) History() []events.Page {
	return append([]events.Page(nil), s.history...)
}

// AddItem adds quantity of the named menu item to the order.
func (s *Session) AddItem(name string, quantity int) error {
	name = strings.TrimSpace(name)
	if err := logic.RequireNotBlank(name, logic.ErrMsgItemNameRequired); err != nil {
		return err
	}
	if err := logic.RequirePositive(quantity, logic.ErrMsgQuantityPositive); err != nil {
		return err
	}
	item, found := s.catalog.Lookup(name)
	if err := logic.RequireOnMenu(found, name); err != nil {
		return err
	}

	s.order.Add(item, quantity)

	lineQuantity := 0
	for _, line := range s.order.Lines() {
		if line.Item.Name == item.Name {
			lineQuantity = line.Quantity
		}
	}
	s.record(events.ItemAdded{
		Name:         item.Name,
		Quantity:     quantity,
		UnitPrice:    item.UnitPrice,
		LineQuantity: lineQuantity,
		OrderTotal:   s.order.Total(),
	})
	s.status = fmt.Sprintf("Added %s to your order", item.Name)
	return nil
}

// RemoveItem removes the order line at index. A negative index means no
// line is selected. Without a valid selection the user is warned and the
// order is left unchanged.
func (s *Session) RemoveItem(ctx context.Context, p Prompter, index int) (bool, error) {
	if rejected := logic.RequireInRange(index, s.order.Len(), logic.ErrMsgSelectItem); rejected != nil {
		s.logger.Debug("remove rejected", zap.Int("index", index), zap.Int("lines", s.order.Len()))
		if err := p.Notify(ctx, Notice{Level: LevelWarning, Title: TitleWarning, Message: rejected.Message}); err != nil {
			return false, fmt.Errorf("notify remove warning: %w", err)
		}
		return false, nil
	}

	line, _ := s.order.Line(index)

	s.order.RemoveAt(index)
	s.record(events.ItemRemoved{
		Index:      index,
		Name:       line.Item.Name,
		Quantity:   line.Quantity,
		OrderTotal: s.order.Total(),
	})
	s.status = StatusRemoved
	return true, nil
}

// ClearOrder empties the order after the user confirms.
func (s *Session) ClearOrder(ctx context.Context, p Prompter) (bool, error) {
	confirmed, err := p.PromptYesNo(ctx, TitleConfirm, PromptClearOrder)
	if err != nil {
		return false, fmt.Errorf("prompt clear order: %w", err)
	}
	if !confirmed {
		return false, nil
	}

	cleared := s.order.Len()
	s.order.Clear()
	s.record(events.OrderCleared{LinesCleared: cleared})
	s.status = StatusCleared
	return true, nil
}

func (s *Session) record(event events.Event) {
	page := events.Page{
		Sequence:  uint32(len(s.history)),
		Event:     event,
		CreatedAt: s.now(),
	}
	s.history = append(s.history, page)

	s.logger.Info("event recorded",
		zap.Uint32("seq", page.Sequence),
		zap.String("event", event.EventName()),
		zap.Object("data", event))
}
