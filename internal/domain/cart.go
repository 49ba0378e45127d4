package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// MaxQuantity is the largest quantity a cart line holds; larger values saturate.
const MaxQuantity = math.MaxInt32

type Cart struct {
	OwnerID  string
	Currency currency.Unit
	Items    []CartItem
}

type CartItem struct {
	ProductID   string
	Name        string
	Image       string
	WeightGrams int

	RetailPrice    decimal.Decimal
	WholesaleTiers []WholesaleTier

	Quantity int
	// Price is derived from RetailPrice, WholesaleTiers and Quantity.
	Price decimal.Decimal

	CreatedAt time.Time
}

// PriceFor returns the unit price of the item at the given quantity.
func (i CartItem) PriceFor(quantity int) decimal.Decimal {
	return UnitPrice(i.RetailPrice, i.WholesaleTiers, quantity)
}

// Subtotal is Price * Quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func NewCart(ownerID string, unit currency.Unit) Cart {
	return Cart{OwnerID: ownerID, Currency: unit}
}

// AddItem merges quantity units of item into the cart. A quantity below 1 adds a single unit,
// the line total saturates at MaxQuantity.
func (c *Cart) AddItem(item CartItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	if idx := c.indexOf(item.ProductID); idx >= 0 {
		existing := &c.Items[idx]
		existing.Quantity = min(existing.Quantity+min(quantity, MaxQuantity), MaxQuantity)
		existing.Price = existing.PriceFor(existing.Quantity)
		return
	}

	// the cart owns its tiers, callers may reuse theirs
	if item.WholesaleTiers != nil {
		item.WholesaleTiers = append([]WholesaleTier(nil), item.WholesaleTiers...)
	}
	item.Quantity = min(quantity, MaxQuantity)
	item.Price = item.PriceFor(item.Quantity)
	c.Items = append(c.Items, item)
}

// RemoveItem reports whether an item was removed.
func (c *Cart) RemoveItem(productID string) bool {
	idx := c.indexOf(productID)
	if idx < 0 {
		return false
	}

	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	return true
}

// UpdateQuantity sets the quantity of an existing item, removing it when quantity <= 0.
// It reports whether the cart changed.
func (c *Cart) UpdateQuantity(productID string, quantity int) bool {
	if quantity <= 0 {
		return c.RemoveItem(productID)
	}

	idx := c.indexOf(productID)
	if idx < 0 {
		return false
	}

	item := &c.Items[idx]
	item.Quantity = min(quantity, MaxQuantity)
	item.Price = item.PriceFor(item.Quantity)
	return true
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c Cart) Item(productID string) (CartItem, bool) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return CartItem{}, false
	}
	return c.Items[idx], true
}

// TotalItems counts units, not distinct products.
func (c Cart) TotalItems() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c Cart) Total() Money {
	return Money{Amount: c.TotalPrice(), Currency: c.Currency}
}

func (c Cart) TotalWeightGrams() int {
	var total int
	for _, item := range c.Items {
		total += item.WeightGrams * item.Quantity
	}
	return total
}

// Clone returns a deep copy safe to hand out to readers.
func (c Cart) Clone() Cart {
	clone := c
	if c.Items == nil {
		return clone
	}

	clone.Items = make([]CartItem, len(c.Items))
	for i, item := range c.Items {
		if item.WholesaleTiers != nil {
			item.WholesaleTiers = append([]WholesaleTier(nil), item.WholesaleTiers...)
		}
		clone.Items[i] = item
	}
	return clone
}

func (c Cart) indexOf(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
