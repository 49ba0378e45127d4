package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	cart, err := mapGetCartRowsToDomain(ownerID, rows)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return cart, nil
}

// SaveCart replaces the stored cart of cart.OwnerID with cart.
func (r *cartRepository) SaveCart(ctx context.Context, cart domain.Cart) error {
	if cart.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	params, err := mapCartToAddItemParams(cart, time.Now())
	if err != nil {
		return fmt.Errorf("mapCartToAddItemParams: %w", err)
	}

	_, err = withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if _, err := q.DeleteCart(ctx, cart.OwnerID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteCart: %w", err)
		}

		for _, p := range params {
			if err := q.AddItem(ctx, p); err != nil {
				return struct{}{}, fmt.Errorf("q.AddItem[%s]: %w", p.ProductID, err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

func (r *cartRepository) ClearCart(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteCart(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("q.DeleteCart: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapCartToAddItemParams(cart domain.Cart, now time.Time) ([]db.AddItemParams, error) {
	params := make([]db.AddItemParams, 0, len(cart.Items))

	for i, item := range cart.Items {
		if item.Quantity < 1 || item.Quantity > math.MaxInt32 {
			return nil, fmt.Errorf("quantity[%s] %d out of range", item.ProductID, item.Quantity)
		}
		if item.WeightGrams < 0 || item.WeightGrams > math.MaxInt32 {
			return nil, fmt.Errorf("weightGrams[%s] %d out of range", item.ProductID, item.WeightGrams)
		}

		tiers := item.WholesaleTiers
		if tiers == nil {
			tiers = []domain.WholesaleTier{}
		}

		tiersJSON, err := json.Marshal(tiers)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal tiers[%s]: %w", item.ProductID, err)
		}

		createdAt := item.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		params = append(params, db.AddItemParams{
			OwnerID:        cart.OwnerID,
			ProductID:      item.ProductID,
			Position:       int32(i),
			Name:           item.Name,
			Image:          item.Image,
			WeightGrams:    int32(item.WeightGrams),
			RetailPrice:    item.RetailPrice,
			WholesaleTiers: tiersJSON,
			Quantity:       int32(item.Quantity),
			PriceAmount:    item.Price,
			PriceCurrency:  cart.Currency.String(),
			CreatedAt:      createdAt,
		})
	}

	return params, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartItem, currency.Unit, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, currency.Unit{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	var tiers []domain.WholesaleTier
	if err := json.Unmarshal(row.WholesaleTiers, &tiers); err != nil {
		return domain.CartItem{}, currency.Unit{}, fmt.Errorf("json.Unmarshal tiers[%s]: %w", row.ProductID, err)
	}
	if len(tiers) == 0 {
		tiers = nil
	}

	item := domain.CartItem{
		ProductID:      row.ProductID,
		Name:           row.Name,
		Image:          row.Image,
		WeightGrams:    int(row.WeightGrams),
		RetailPrice:    row.RetailPrice,
		WholesaleTiers: tiers,
		Quantity:       int(row.Quantity),
		Price:          row.PriceAmount,
		CreatedAt:      row.CreatedAt,
	}

	// stored price may predate a tier change, the derived value always wins
	item.Price = item.PriceFor(item.Quantity)

	return item, parsedCurrency, nil
}

func mapGetCartRowsToDomain(ownerID string, rows []db.GetCartRow) (domain.Cart, error) {
	cart := domain.Cart{OwnerID: ownerID}

	for _, row := range rows {
		item, unit, err := mapGetCartRowToDomain(row)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		cart.Currency = unit
		cart.Items = append(cart.Items, item)
	}

	return cart, nil
}
