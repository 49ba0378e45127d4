package store

import (
	"sync"

	"github.com/nikolayk812/storefront/internal/domain"
)

// WishlistStore is the observable wishlist, same contract as CartStore.
type WishlistStore struct {
	writeMu sync.Mutex

	mu       sync.RWMutex
	wishlist domain.Wishlist

	subs subscribers[domain.Wishlist]
}

func NewWishlistStore(wishlist domain.Wishlist) *WishlistStore {
	return &WishlistStore{wishlist: wishlist.Clone()}
}

// Toggle adds item or removes it when already present, reporting whether it is now in the wishlist.
func (s *WishlistStore) Toggle(item domain.WishlistItem) bool {
	var added bool
	s.mutate(func(w *domain.Wishlist) bool {
		added = w.Toggle(item)
		return true
	})
	return added
}

func (s *WishlistStore) Remove(productID string) {
	s.mutate(func(w *domain.Wishlist) bool {
		return w.Remove(productID)
	})
}

func (s *WishlistStore) Replace(wishlist domain.Wishlist) {
	s.mutate(func(w *domain.Wishlist) bool {
		*w = wishlist.Clone()
		return true
	})
}

func (s *WishlistStore) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wishlist.Contains(productID)
}

func (s *WishlistStore) Snapshot() domain.Wishlist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wishlist.Clone()
}

func (s *WishlistStore) Subscribe(fn func(domain.Wishlist)) (unsubscribe func()) {
	return s.subs.add(fn)
}

func (s *WishlistStore) mutate(fn func(w *domain.Wishlist) bool) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	changed := fn(&s.wishlist)
	snapshot := s.wishlist.Clone()
	s.mu.Unlock()

	if changed {
		s.subs.notify(snapshot)
	}
}
