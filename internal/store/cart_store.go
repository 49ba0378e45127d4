package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/nikolayk812/storefront/internal/domain"
)

// CartStore is the observable cart of the current session.
//
// Mutations are applied and announced one at a time: subscribers see every
// snapshot in order and must not mutate the store from the callback.
type CartStore struct {
	writeMu sync.Mutex

	mu   sync.RWMutex
	cart domain.Cart

	subs subscribers[domain.Cart]
}

func NewCartStore(cart domain.Cart) *CartStore {
	return &CartStore{cart: cart.Clone()}
}

func (s *CartStore) AddItem(item domain.CartItem, quantity int) {
	s.mutate(func(c *domain.Cart) bool {
		c.AddItem(item, quantity)
		return true
	})
}

func (s *CartStore) RemoveItem(productID string) {
	s.mutate(func(c *domain.Cart) bool {
		return c.RemoveItem(productID)
	})
}

// UpdateQuantity removes the item when quantity <= 0.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	s.mutate(func(c *domain.Cart) bool {
		return c.UpdateQuantity(productID, quantity)
	})
}

func (s *CartStore) Clear() {
	s.mutate(func(c *domain.Cart) bool {
		if len(c.Items) == 0 {
			return false
		}
		c.Clear()
		return true
	})
}

// Replace swaps the whole cart, e.g. after signing in as another user.
func (s *CartStore) Replace(cart domain.Cart) {
	s.mutate(func(c *domain.Cart) bool {
		*c = cart.Clone()
		return true
	})
}

func (s *CartStore) Snapshot() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Clone()
}

func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.TotalItems()
}

func (s *CartStore) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.TotalPrice()
}

// Subscribe registers fn to receive the cart after every change.
func (s *CartStore) Subscribe(fn func(domain.Cart)) (unsubscribe func()) {
	return s.subs.add(fn)
}

func (s *CartStore) mutate(fn func(c *domain.Cart) bool) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	changed := fn(&s.cart)
	snapshot := s.cart.Clone()
	s.mu.Unlock()

	if changed {
		s.subs.notify(snapshot)
	}
}
