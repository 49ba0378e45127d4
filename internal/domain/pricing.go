package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// WholesaleTier grants UnitPrice once the line quantity reaches MinQuantity.
type WholesaleTier struct {
	MinQuantity int             `json:"minQuantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// UnitPrice returns the price charged for a single unit when quantity units are bought.
//
// A single unit is always sold at retail. From two units on, the tier with the
// largest MinQuantity not exceeding quantity applies. When two tiers share the
// same MinQuantity, the one listed first wins.
func UnitPrice(retail decimal.Decimal, tiers []WholesaleTier, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	if quantity == 1 {
		return retail
	}

	sorted := make([]WholesaleTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinQuantity > sorted[j].MinQuantity
	})

	for _, tier := range sorted {
		if tier.MinQuantity <= quantity {
			return tier.UnitPrice
		}
	}

	return retail
}
