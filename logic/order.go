package logic

import "github.com/shopspring/decimal"

// OrderLine is one distinct menu item and its aggregated quantity.
type OrderLine struct {
	Item     CatalogItem
	Quantity int
}

// LineTotal returns unit price times quantity.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.Item.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is the order being assembled. Lines keep insertion order and there is
// at most one line per item name.
type Order struct {
	lines []OrderLine
}

// NewOrder returns an empty order.
func NewOrder() *Order {
	return &Order{lines: make([]OrderLine, 0)}
}

// Add merges quantity into the existing line for item, or appends a new line.
// Quantity must be positive; that is the caller's responsibility.
func (o *Order) Add(item CatalogItem, quantity int) {
	for i := range o.lines {
		if o.lines[i].Item.Name == item.Name {
			o.lines[i].Quantity += quantity
			return
		}
	}
	o.lines = append(o.lines, OrderLine{Item: item, Quantity: quantity})
}

// RemoveAt deletes the line at index. Out-of-range indexes are ignored.
func (o *Order) RemoveAt(index int) bool {
	if index < 0 || index >= len(o.lines) {
		return false
	}
	o.lines = append(o.lines[:index], o.lines[index+1:]...)
	return true
}

// Clear empties the order.
func (o *Order) Clear() {
	o.lines = o.lines[:0]
}

// Total returns the sum of all line totals.
func (o *Order) Total() decimal.Decimal {
	return Subtotal(o.lines)
}

// Lines returns a copy of the order lines in display order.
func (o *Order) Lines() []OrderLine {
	return append([]OrderLine(nil), o.lines...)
}

// Line returns the line at index.
func (o *Order) Line(index int) (OrderLine, bool) {
	if index < 0 || index >= len(o.lines) {
		return OrderLine{}, false
	}
	return o.lines[index], true
}

func (o *Order) Len() int {
	return len(o.lines)
}

func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}
