package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	SaveCart(ctx context.Context, cart domain.Cart) error
	ClearCart(ctx context.Context, ownerID string) (bool, error)
}

type WishlistRepository interface {
	GetWishlist(ctx context.Context, ownerID string) (domain.Wishlist, error)
	SaveWishlist(ctx context.Context, wishlist domain.Wishlist) error
}
