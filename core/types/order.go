// Package types - Order value objects shared by the engine, CLI and API.
// This package contains NO pricing logic.
package types

import (
	"github.com/shopspring/decimal"

	"snackbar/core/catalog"
	"snackbar/core/ingredient"
)

// Addition is an extra ingredient on top of the sandwich's recipe
type Addition struct {
	Ingredient ingredient.Kind `json:"ingredient"`
	Quantity   int64           `json:"quantity"`
}

// Order is a single pricing request. A nil Additions slice is an order without extras.
type Order struct {
	Sandwich  catalog.Kind `json:"sandwich"`
	Additions []Addition   `json:"additions,omitempty"`
}

// Line is the priced contribution of one ingredient kind
type Line struct {
	// Ingredient is the kind this line covers
	Ingredient ingredient.Kind

	// Quantity is the summed quantity over every addition of this kind
	Quantity int64

	// UnitPrice is the ingredient's price
	UnitPrice decimal.Decimal

	// RawCost is Quantity * UnitPrice
	RawCost decimal.Decimal

	// Cost is RawCost after the kind's line promotion
	Cost decimal.Decimal
}

// AppliedPromotion records a promotion that changed the order's price
type AppliedPromotion struct {
	Name       string
	Ingredient ingredient.Kind
	Discount   decimal.Decimal
}

// PricedOrder is the engine's result. It is not modified after it is returned.
type PricedOrder struct {
	// Sandwich is the priced sandwich
	Sandwich catalog.Kind

	// Additions are the additions as given by the caller
	Additions []Addition

	// BasePrice is the sandwich's recipe price
	BasePrice decimal.Decimal

	// Lines holds one entry per distinct ingredient kind with a positive quantity
	Lines []Line

	// Promotions lists the promotions that produced a discount
	Promotions []AppliedPromotion

	// Total is rounded to 2 places, half to even
	Total decimal.Decimal
}

// TotalString renders the total with exactly two fractional digits
func (p *PricedOrder) TotalString() string {
	return p.Total.StringFixed(2)
}

// Discount returns the sum of every applied promotion
func (p *PricedOrder) Discount() decimal.Decimal {
	total := decimal.Zero
	for _, promo := range p.Promotions {
		total = total.Add(promo.Discount)
	}
	return total
}
