package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

var _ port.OrderCreator = (*Client)(nil)
var _ port.CatalogFetcher = (*Client)(nil)

func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) Result[domain.Order] {
	if len(req.Summary.Lines) == 0 {
		return fail[domain.Order](validationError("order has no items"))
	}

	var dto orderDTO
	if err := c.do(ctx, http.MethodPost, "/orders", nil, newCreateOrderDTO(req), &dto); err != nil {
		return fail[domain.Order](err)
	}

	order, err := dto.toDomain(req)
	if err != nil {
		return fail[domain.Order](err)
	}
	return ok(order)
}

// PlaceOrder is CreateOrder for callers that branch on a Go error.
func (c *Client) PlaceOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	result := c.CreateOrder(ctx, req)
	if !result.Success {
		return domain.Order{}, errors.New(result.Error)
	}
	return result.Data, nil
}
