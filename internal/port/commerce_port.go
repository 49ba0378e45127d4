package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type OrderCreator interface {
	PlaceOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error)
}

type CatalogFetcher interface {
	FetchHome(ctx context.Context) (domain.HomeData, error)
}
