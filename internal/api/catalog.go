package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nikolayk812/storefront/internal/domain"
)

type ProductQuery struct {
	Search     string
	CategoryID string
}

func (q ProductQuery) values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.CategoryID != "" {
		values.Set("category", q.CategoryID)
	}
	return values
}

func (c *Client) Categories(ctx context.Context) Result[[]domain.Category] {
	return list(ctx, c, "/categories", nil, categoryDTO.toDomain)
}

func (c *Client) Products(ctx context.Context, q ProductQuery) Result[[]domain.Product] {
	return list(ctx, c, "/products", q.values(), productDTO.toDomain)
}

func (c *Client) Banners(ctx context.Context) Result[[]domain.Banner] {
	return list(ctx, c, "/banners", nil, bannerDTO.toDomain)
}

func (c *Client) Stocks(ctx context.Context) Result[[]domain.Stock] {
	return list(ctx, c, "/stocks", nil, stockDTO.toDomain)
}

// FetchHome loads everything the home screen shows, failing on the first unsuccessful call.
func (c *Client) FetchHome(ctx context.Context) (domain.HomeData, error) {
	categories := c.Categories(ctx)
	if !categories.Success {
		return domain.HomeData{}, fmt.Errorf("categories: %s", categories.Error)
	}

	banners := c.Banners(ctx)
	if !banners.Success {
		return domain.HomeData{}, fmt.Errorf("banners: %s", banners.Error)
	}

	products := c.Products(ctx, ProductQuery{})
	if !products.Success {
		return domain.HomeData{}, fmt.Errorf("products: %s", products.Error)
	}

	return domain.HomeData{
		Categories: categories.Data,
		Banners:    banners.Data,
		Products:   products.Data,
	}, nil
}

func list[D any, T any](ctx context.Context, c *Client, path string, query url.Values, fn func(D) (T, error)) Result[[]T] {
	var dtos []D
	if err := c.do(ctx, http.MethodGet, path, query, nil, &dtos); err != nil {
		return fail[[]T](err)
	}

	items, err := mapAll(dtos, fn)
	if err != nil {
		return fail[[]T](err)
	}

	return ok(items)
}
