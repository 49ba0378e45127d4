package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nikolayk812/storefront/internal/domain"
)

// flexibleID accepts ids sent either as JSON strings or numbers.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id %s is neither string nor number", b)
	}
	*id = flexibleID(n.String())
	return nil
}

type userDTO struct {
	ID    flexibleID `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Phone string     `json:"phone"`
}

func (d userDTO) toDomain() (domain.User, error) {
	if d.ID == "" {
		return domain.User{}, fmt.Errorf("user id is empty")
	}
	return domain.User{ID: string(d.ID), Name: d.Name, Email: d.Email, Phone: d.Phone}, nil
}

type authDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type messageDTO struct {
	Message string `json:"message"`
}

type wholesaleDTO struct {
	Quantity  int             `json:"wholeSaleQuantity"`
	UnitPrice decimal.Decimal `json:"wholeSaleUnitPrice"`
}

type productDTO struct {
	ID              flexibleID      `json:"id"`
	Name            string          `json:"name"`
	Image           string          `json:"image"`
	Images          []string        `json:"images"`
	CategoryID      flexibleID      `json:"categoryId"`
	RetailUnitPrice decimal.Decimal `json:"retailUnitPrice"`
	WholeSale       []wholesaleDTO  `json:"wholeSale"`
	WeightGrams     int             `json:"weightGrams"`
	Stock           *int            `json:"stock"`
}

func (d productDTO) toDomain() (domain.Product, error) {
	if d.ID == "" {
		return domain.Product{}, fmt.Errorf("product id is empty")
	}
	if d.RetailUnitPrice.IsNegative() {
		return domain.Product{}, fmt.Errorf("product[%s] retail price is negative", d.ID)
	}

	var tiers []domain.WholesaleTier
	for _, w := range d.WholeSale {
		if w.Quantity < 2 || w.UnitPrice.IsNegative() {
			// single-unit or malformed tiers can never apply
			continue
		}
		tiers = append(tiers, domain.WholesaleTier{MinQuantity: w.Quantity, UnitPrice: w.UnitPrice})
	}

	image := d.Image
	if image == "" && len(d.Images) > 0 {
		image = d.Images[0]
	}

	return domain.Product{
		ID:             string(d.ID),
		Name:           strings.TrimSpace(d.Name),
		Image:          image,
		CategoryID:     string(d.CategoryID),
		RetailPrice:    d.RetailUnitPrice,
		WholesaleTiers: tiers,
		WeightGrams:    max(d.WeightGrams, 0),
		InStock:        d.Stock == nil || *d.Stock > 0,
	}, nil
}

type categoryDTO struct {
	ID    flexibleID `json:"id"`
	Name  string     `json:"name"`
	Image string     `json:"image"`
}

func (d categoryDTO) toDomain() (domain.Category, error) {
	if d.ID == "" {
		return domain.Category{}, fmt.Errorf("category id is empty")
	}
	return domain.Category{ID: string(d.ID), Name: d.Name, Image: d.Image}, nil
}

type bannerDTO struct {
	ID    flexibleID `json:"id"`
	Image string     `json:"image"`
	Link  string     `json:"link"`
}

func (d bannerDTO) toDomain() (domain.Banner, error) {
	if d.Image == "" {
		return domain.Banner{}, fmt.Errorf("banner[%s] image is empty", d.ID)
	}
	return domain.Banner{ID: string(d.ID), Image: d.Image, Link: d.Link}, nil
}

type stockDTO struct {
	ProductID flexibleID `json:"productId"`
	Quantity  int        `json:"quantity"`
}

func (d stockDTO) toDomain() (domain.Stock, error) {
	if d.ProductID == "" {
		return domain.Stock{}, fmt.Errorf("stock product id is empty")
	}
	return domain.Stock{ProductID: string(d.ProductID), Quantity: max(d.Quantity, 0)}, nil
}

type addressDTO struct {
	ID         flexibleID `json:"id"`
	Label      string     `json:"label"`
	Line1      string     `json:"line1"`
	Line2      string     `json:"line2"`
	City       string     `json:"city"`
	Region     string     `json:"region"`
	PostalCode string     `json:"postalCode"`
	Phone      string     `json:"phone"`
}

func (d addressDTO) toDomain() (domain.Address, error) {
	if d.ID == "" {
		return domain.Address{}, fmt.Errorf("address id is empty")
	}
	return domain.Address{
		ID:         string(d.ID),
		Label:      d.Label,
		Line1:      d.Line1,
		Line2:      d.Line2,
		City:       d.City,
		Region:     d.Region,
		PostalCode: d.PostalCode,
		Phone:      d.Phone,
	}, nil
}

type chatMessageDTO struct {
	ID     flexibleID `json:"id"`
	From   string     `json:"from"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sentAt"`
}

func (d chatMessageDTO) toDomain() (domain.ChatMessage, error) {
	if d.ID == "" {
		return domain.ChatMessage{}, fmt.Errorf("chat message id is empty")
	}
	return domain.ChatMessage{ID: string(d.ID), From: d.From, Body: d.Body, SentAt: d.SentAt}, nil
}

type orderLineDTO struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type createOrderDTO struct {
	ClientReference     string             `json:"clientReference"`
	Contact             domain.ContactInfo `json:"contact"`
	Address             domain.Address     `json:"address"`
	Items               []orderLineDTO     `json:"items"`
	Currency            string             `json:"currency"`
	Subtotal            decimal.Decimal    `json:"subtotal"`
	ShippingFee         decimal.Decimal    `json:"shippingFee"`
	OverweightSurcharge decimal.Decimal    `json:"overweightSurcharge"`
	GrandTotal          decimal.Decimal    `json:"grandTotal"`
	Payment             domain.PaymentInfo `json:"payment"`
}

func newCreateOrderDTO(req domain.OrderRequest) createOrderDTO {
	items := make([]orderLineDTO, 0, len(req.Summary.Lines))
	for _, line := range req.Summary.Lines {
		items = append(items, orderLineDTO{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	return createOrderDTO{
		ClientReference:     req.ClientReference.String(),
		Contact:             req.Contact,
		Address:             req.Address,
		Items:               items,
		Currency:            req.Currency().String(),
		Subtotal:            req.Summary.Subtotal.Amount,
		ShippingFee:         req.Summary.ShippingFee.Amount,
		OverweightSurcharge: req.Summary.OverweightSurcharge.Amount,
		GrandTotal:          req.Summary.GrandTotal.Amount,
		Payment:             req.Payment,
	}
}

type orderDTO struct {
	ID     flexibleID       `json:"id"`
	Status string           `json:"status"`
	Total  *decimal.Decimal `json:"total"`
}

func (d orderDTO) toDomain(req domain.OrderRequest) (domain.Order, error) {
	if d.ID == "" {
		return domain.Order{}, fmt.Errorf("order id is empty")
	}

	total := req.Summary.GrandTotal
	if d.Total != nil {
		total.Amount = *d.Total
	}

	status := d.Status
	if status == "" {
		status = "pending"
	}

	return domain.Order{ID: string(d.ID), Status: status, Total: total}, nil
}

func mapAll[D any, T any](dtos []D, fn func(D) (T, error)) ([]T, error) {
	result := make([]T, 0, len(dtos))
	for i, d := range dtos {
		v, err := fn(d)
		if err != nil {
			return nil, fmt.Errorf("item[%d]: %w", i, err)
		}
		result = append(result, v)
	}
	return result, nil
}
