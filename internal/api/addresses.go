package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nikolayk812/storefront/internal/domain"
)

func (c *Client) Addresses(ctx context.Context) Result[[]domain.Address] {
	return list(ctx, c, "/addresses", nil, addressDTO.toDomain)
}

func (c *Client) CreateAddress(ctx context.Context, addr domain.Address) Result[domain.Address] {
	if err := required(map[string]string{"address line": addr.Line1, "city": addr.City}); err != nil {
		return fail[domain.Address](err)
	}
	addr.ID = ""
	return c.saveAddress(ctx, http.MethodPost, "/addresses", addr)
}

func (c *Client) UpdateAddress(ctx context.Context, addr domain.Address) Result[domain.Address] {
	err := required(map[string]string{"address id": addr.ID, "address line": addr.Line1, "city": addr.City})
	if err != nil {
		return fail[domain.Address](err)
	}
	return c.saveAddress(ctx, http.MethodPut, "/addresses/"+url.PathEscape(addr.ID), addr)
}

func (c *Client) DeleteAddress(ctx context.Context, id string) Result[struct{}] {
	if err := required(map[string]string{"address id": id}); err != nil {
		return fail[struct{}](err)
	}

	if err := c.do(ctx, http.MethodDelete, "/addresses/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fail[struct{}](err)
	}
	return ok(struct{}{})
}

func (c *Client) saveAddress(ctx context.Context, method, path string, addr domain.Address) Result[domain.Address] {
	var dto addressDTO
	if err := c.do(ctx, method, path, nil, addr, &dto); err != nil {
		return fail[domain.Address](err)
	}

	saved, err := dto.toDomain()
	if err != nil {
		return fail[domain.Address](err)
	}
	return ok(saved)
}
