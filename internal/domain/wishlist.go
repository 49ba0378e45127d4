package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wishlist struct {
	OwnerID string
	Items   []WishlistItem
}

type WishlistItem struct {
	ProductID string
	Name      string
	Image     string
	Price     decimal.Decimal

	CreatedAt time.Time
}

// Toggle inserts item when absent and removes it when present.
// It reports whether the item is in the wishlist afterwards.
func (w *Wishlist) Toggle(item WishlistItem) bool {
	if w.Remove(item.ProductID) {
		return false
	}

	w.Items = append(w.Items, item)
	return true
}

func (w *Wishlist) Remove(productID string) bool {
	for i, item := range w.Items {
		if item.ProductID == productID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (w Wishlist) Contains(productID string) bool {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) Clear() {
	w.Items = nil
}

func (w Wishlist) Clone() Wishlist {
	clone := w
	if w.Items != nil {
		clone.Items = append([]WishlistItem(nil), w.Items...)
	}
	return clone
}
