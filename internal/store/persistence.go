package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/platform/observability"
	"github.com/nikolayk812/storefront/internal/port"
)

// LoadCart reads the stored cart of ownerID. An empty cart gets the fallback currency.
func LoadCart(ctx context.Context, repo port.CartRepository, ownerID string, fallback currency.Unit) (domain.Cart, error) {
	cart, err := repo.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("repo.GetCart: %w", err)
	}

	if len(cart.Items) == 0 {
		cart.Currency = fallback
	}

	return cart, nil
}

func LoadWishlist(ctx context.Context, repo port.WishlistRepository, ownerID string) (domain.Wishlist, error) {
	wishlist, err := repo.GetWishlist(ctx, ownerID)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("repo.GetWishlist: %w", err)
	}

	return wishlist, nil
}

// PersistCart returns a CartStore subscriber writing every snapshot to repo.
// An emptied cart is deleted rather than saved.
// Carts without an owner (guests) stay in memory. Failures are logged only,
// the in-memory cart remains the source of truth.
func PersistCart(ctx context.Context, repo port.CartRepository, logger *zap.Logger) func(domain.Cart) {
	logger = observability.OrNop(logger)

	return func(cart domain.Cart) {
		if cart.OwnerID == "" {
			return
		}

		if len(cart.Items) == 0 {
			if _, err := repo.ClearCart(ctx, cart.OwnerID); err != nil {
				logger.Error("clear persisted cart", zap.String("owner_id", cart.OwnerID), zap.Error(err))
			}
			return
		}

		if err := repo.SaveCart(ctx, cart); err != nil {
			logger.Error("persist cart",
				zap.String("owner_id", cart.OwnerID),
				zap.Int("items", len(cart.Items)),
				zap.Error(err),
			)
		}
	}
}

func PersistWishlist(ctx context.Context, repo port.WishlistRepository, logger *zap.Logger) func(domain.Wishlist) {
	logger = observability.OrNop(logger)

	return func(wishlist domain.Wishlist) {
		if wishlist.OwnerID == "" {
			return
		}

		if err := repo.SaveWishlist(ctx, wishlist); err != nil {
			logger.Error("persist wishlist",
				zap.String("owner_id", wishlist.OwnerID),
				zap.Error(err),
			)
		}
	}
}
