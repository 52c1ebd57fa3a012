// Package logic provides the pure domain logic of the coffee shop: the menu,
// the order being assembled, loyalty points and checkout pricing.
// This package performs no I/O and can be tested in isolation.
package logic

import "github.com/shopspring/decimal"

// CatalogItem is a purchasable menu item. Items match by exact name.
type CatalogItem struct {
	Name      string
	UnitPrice decimal.Decimal
}

// NewCatalogItem creates an item priced in whole cents.
func NewCatalogItem(name string, priceCents int64) CatalogItem {
	return CatalogItem{Name: name, UnitPrice: decimal.New(priceCents, -2)}
}

// Catalog is the fixed menu. It is never mutated after construction.
type Catalog struct {
	items []CatalogItem
}

// NewCatalog creates a catalog listing items in the given order.
func NewCatalog(items ...CatalogItem) *Catalog {
	return &Catalog{items: append([]CatalogItem(nil), items...)}
}

// DefaultMenu returns the shop's standard menu.
func DefaultMenu() *Catalog {
	return NewCatalog(
		NewCatalogItem("Espresso", 250),
		NewCatalogItem("Double Espresso", 300),
		NewCatalogItem("Latte", 350),
		NewCatalogItem("Cappuccino", 300),
		NewCatalogItem("Americano", 200),
		NewCatalogItem("Cold Brew", 400),
	)
}

// Items returns a copy of the menu in display order.
func (c *Catalog) Items() []CatalogItem {
	return append([]CatalogItem(nil), c.items...)
}

// Len returns the number of menu items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at a zero-based menu position.
func (c *Catalog) At(i int) (CatalogItem, bool) {
	if i < 0 || i >= len(c.items) {
		return CatalogItem{}, false
	}
	return c.items[i], true
}

// Lookup finds an item by exact, case-sensitive name.
func (c *Catalog) Lookup(name string) (CatalogItem, bool) {
	for _, item := range c.items {
		if item.Name == name {
			return item, true
		}
	}
	return CatalogItem{}, false
}
