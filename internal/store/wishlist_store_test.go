package store_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistStoreToggle(t *testing.T) {
	s := store.NewWishlistStore(domain.Wishlist{OwnerID: "owner"})
	item := domain.WishlistItem{ProductID: "A", Name: "Hoodie"}

	var sizes []int
	s.Subscribe(func(w domain.Wishlist) { sizes = append(sizes, len(w.Items)) })

	assert.True(t, s.Toggle(item))
	assert.True(t, s.Contains("A"))

	assert.False(t, s.Toggle(item))
	assert.False(t, s.Contains("A"))

	s.Toggle(item)
	s.Remove("A")
	s.Remove("A")

	assert.Equal(t, []int{1, 0, 1, 0}, sizes)
}

func TestPersistWishlist(t *testing.T) {
	repo := &stubWishlistRepository{}

	s := store.NewWishlistStore(domain.Wishlist{OwnerID: "owner"})
	s.Subscribe(store.PersistWishlist(t.Context(), repo, nil))

	s.Toggle(domain.WishlistItem{ProductID: "A"})
	s.Toggle(domain.WishlistItem{ProductID: "B"})

	loaded, err := store.LoadWishlist(t.Context(), repo, "owner")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)

	other := store.NewWishlistStore(domain.Wishlist{})
	other.Replace(loaded)
	assert.True(t, other.Contains("B"))
}
