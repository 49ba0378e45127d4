package api_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func orderRequest() domain.OrderRequest {
	cart := domain.NewCart("owner", currency.USD)
	cart.AddItem(domain.CartItem{
		ProductID:   "A",
		Name:        "Hoodie",
		RetailPrice: decimal.NewFromInt(1000),
		WholesaleTiers: []domain.WholesaleTier{
			{MinQuantity: 10, UnitPrice: decimal.NewFromInt(800)},
		},
	}, 12)

	return domain.OrderRequest{
		ClientReference: uuid.MustParse("6f1f3a52-8f49-4c1c-9d36-0d7d5d1f2a10"),
		Contact:         domain.ContactInfo{Name: "Ana", Phone: "+100"},
		Address:         domain.Address{Line1: "Main 1", City: "Lima"},
		Summary:         domain.NewOrderSummary(cart, domain.ShippingPolicy{BaseFee: decimal.NewFromInt(15)}),
		Payment:         domain.PaymentInfo{Method: "cash"},
	}
}

func TestCreateOrder(t *testing.T) {
	var rec recorder
	client, _ := newTestClient(t, rec.wrap(jsonHandler(http.StatusCreated, `{"data":{"id":1001,"status":"placed"}}`)))

	result := client.CreateOrder(t.Context(), orderRequest())
	require.True(t, result.Success, result.Error)

	assert.Equal(t, "1001", result.Data.ID)
	assert.Equal(t, "placed", result.Data.Status)
	assert.True(t, decimal.NewFromInt(9615).Equal(result.Data.Total.Amount))

	assert.Equal(t, "/v1/orders", rec.last().Path)
	assert.JSONEq(t, `{
		"clientReference":"6f1f3a52-8f49-4c1c-9d36-0d7d5d1f2a10",
		"contact":{"name":"Ana","phone":"+100"},
		"address":{"line1":"Main 1","city":"Lima"},
		"items":[{"productId":"A","name":"Hoodie","quantity":12,"unitPrice":"800"}],
		"currency":"USD",
		"subtotal":"9600",
		"shippingFee":"15",
		"overweightSurcharge":"0",
		"grandTotal":"9615",
		"payment":{"method":"cash"}
	}`, rec.last().Body)
}

func TestPlaceOrder(t *testing.T) {
	client, _ := newTestClient(t, jsonHandler(http.StatusBadRequest, `{"message":"Out of stock"}`))

	_, err := client.PlaceOrder(t.Context(), orderRequest())
	require.EqualError(t, err, "Out of stock")

	empty := orderRequest()
	empty.Summary.Lines = nil
	_, err = client.PlaceOrder(t.Context(), empty)
	require.EqualError(t, err, "order has no items")
}
