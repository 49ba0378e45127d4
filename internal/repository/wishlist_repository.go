package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type wishlistRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewWishlist(pool *pgxpool.Pool) port.WishlistRepository {
	return &wishlistRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func (r *wishlistRepository) GetWishlist(ctx context.Context, ownerID string) (domain.Wishlist, error) {
	if ownerID == "" {
		return domain.Wishlist{}, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.GetWishlist(ctx, ownerID)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("q.GetWishlist: %w", err)
	}

	wishlist := domain.Wishlist{OwnerID: ownerID}
	for _, row := range rows {
		wishlist.Items = append(wishlist.Items, domain.WishlistItem{
			ProductID: row.ProductID,
			Name:      row.Name,
			Image:     row.Image,
			Price:     row.PriceAmount,
			CreatedAt: row.CreatedAt,
		})
	}

	return wishlist, nil
}

func (r *wishlistRepository) SaveWishlist(ctx context.Context, wishlist domain.Wishlist) error {
	if wishlist.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	now := time.Now()

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if _, err := q.DeleteWishlist(ctx, wishlist.OwnerID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteWishlist: %w", err)
		}

		for i, item := range wishlist.Items {
			createdAt := item.CreatedAt
			if createdAt.IsZero() {
				createdAt = now
			}

			err := q.AddWishlistItem(ctx, db.AddWishlistItemParams{
				OwnerID:     wishlist.OwnerID,
				ProductID:   item.ProductID,
				Position:    int32(i),
				Name:        item.Name,
				Image:       item.Image,
				PriceAmount: item.Price,
				CreatedAt:   createdAt,
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.AddWishlistItem[%s]: %w", item.ProductID, err)
			}
		}

		return struct{}{}, nil
	})

	return err
}
