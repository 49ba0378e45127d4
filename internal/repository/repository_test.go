package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_cart_items.up.sql",
			"../migrations/02_wishlist_items.up.sql",
			"../migrations/03_local_storage.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func randomCartItem(quantity int) domain.CartItem {
	item := domain.CartItem{
		ProductID:   gofakeit.UUID(),
		Name:        gofakeit.ProductName(),
		Image:       gofakeit.URL(),
		WeightGrams: gofakeit.IntRange(0, 3000),
		RetailPrice: randomAmount(),
	}

	if gofakeit.Bool() {
		item.WholesaleTiers = []domain.WholesaleTier{
			{MinQuantity: gofakeit.IntRange(2, 20), UnitPrice: randomAmount()},
		}
	}

	item.Quantity = quantity
	item.Price = item.PriceFor(quantity)
	return item
}

func randomWishlistItem() domain.WishlistItem {
	return domain.WishlistItem{
		ProductID: gofakeit.UUID(),
		Name:      gofakeit.ProductName(),
		Image:     gofakeit.URL(),
		Price:     randomAmount(),
	}
}

// randomAmount fits NUMERIC(14, 2).
func randomAmount() decimal.Decimal {
	return decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2)
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func assertCart(t *testing.T, expected, actual domain.Cart) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})
	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartItem{}, "CreatedAt"),
		cmpopts.EquateEmpty(),
		currencyComparer,
		decimalComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	for _, item := range actual.Items {
		assert.False(t, item.CreatedAt.IsZero())
	}
}
