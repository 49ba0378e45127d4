package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone"`
}

type PaymentInfo struct {
	Method    string `json:"method"`
	Reference string `json:"reference,omitempty"`
}

// ShippingPolicy prices delivery: a flat fee plus a per started kilogram
// surcharge above the free weight allowance.
type ShippingPolicy struct {
	BaseFee         decimal.Decimal
	FreeWeightGrams int
	SurchargePerKg  decimal.Decimal
}

// OverweightSurcharge returns the surcharge for a parcel of weightGrams.
func (p ShippingPolicy) OverweightSurcharge(weightGrams int) decimal.Decimal {
	excess := weightGrams - p.FreeWeightGrams
	if excess <= 0 {
		return decimal.Zero
	}

	kilos := (excess + 999) / 1000
	return p.SurchargePerKg.Mul(decimal.NewFromInt(int64(kilos)))
}

type OrderLine struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// OrderSummary is computed once when the summary step is reached and stored as is.
type OrderSummary struct {
	Lines               []OrderLine
	Subtotal            Money
	ShippingFee         Money
	OverweightSurcharge Money
	GrandTotal          Money
}

func NewOrderSummary(cart Cart, policy ShippingPolicy) OrderSummary {
	unit := cart.Currency

	lines := make([]OrderLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, OrderLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}

	subtotal := cart.Total()
	shipping := Money{Amount: policy.BaseFee, Currency: unit}
	surcharge := Money{Amount: policy.OverweightSurcharge(cart.TotalWeightGrams()), Currency: unit}

	return OrderSummary{
		Lines:               lines,
		Subtotal:            subtotal,
		ShippingFee:         shipping,
		OverweightSurcharge: surcharge,
		GrandTotal:          subtotal.Add(shipping).Add(surcharge),
	}
}

// CheckoutDraft accumulates the checkout steps. Nil means the step was not completed.
type CheckoutDraft struct {
	Contact *ContactInfo
	Address *Address
	Summary *OrderSummary
	Payment *PaymentInfo
}

// Missing lists the steps not completed yet.
func (d CheckoutDraft) Missing() []string {
	var missing []string
	if d.Contact == nil {
		missing = append(missing, "contact")
	}
	if d.Address == nil {
		missing = append(missing, "address")
	}
	if d.Summary == nil || len(d.Summary.Lines) == 0 {
		missing = append(missing, "summary")
	}
	if d.Payment == nil {
		missing = append(missing, "payment")
	}
	return missing
}

type OrderRequest struct {
	ClientReference uuid.UUID
	Contact         ContactInfo
	Address         Address
	Summary         OrderSummary
	Payment         PaymentInfo
}

type Order struct {
	ID     string
	Status string
	Total  Money
}

func (r OrderRequest) Currency() currency.Unit {
	return r.Summary.GrandTotal.Currency
}
