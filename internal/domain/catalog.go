package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             string
	Name           string
	Image          string
	CategoryID     string
	RetailPrice    decimal.Decimal
	WholesaleTiers []WholesaleTier
	WeightGrams    int
	InStock        bool
}

// CartItem converts the product into a cart line with no quantity yet.
func (p Product) CartItem() CartItem {
	return CartItem{
		ProductID:      p.ID,
		Name:           p.Name,
		Image:          p.Image,
		WeightGrams:    p.WeightGrams,
		RetailPrice:    p.RetailPrice,
		WholesaleTiers: p.WholesaleTiers,
	}
}

func (p Product) WishlistItem() WishlistItem {
	return WishlistItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.RetailPrice,
	}
}

type Category struct {
	ID    string
	Name  string
	Image string
}

type Banner struct {
	ID    string
	Image string
	Link  string
}

type Stock struct {
	ProductID string
	Quantity  int
}

type Address struct {
	ID         string `json:"id,omitempty"`
	Label      string `json:"label,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type ChatMessage struct {
	ID     string
	From   string
	Body   string
	SentAt time.Time
}

// HomeData is what the home screen shows.
type HomeData struct {
	Categories []Category
	Banners    []Banner
	Products   []Product
}

type ProductFilter struct {
	Query       string
	CategoryID  string
	InStockOnly bool
}

// FilterProducts keeps the products matching every non-empty criterion of f, in order.
func FilterProducts(products []Product, f ProductFilter) []Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	var result []Product
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		result = append(result, p)
	}
	return result
}
