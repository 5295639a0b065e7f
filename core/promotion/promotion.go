// Package promotion - Quantity-triggered promotions, keyed by ingredient kind.
//
// A promotion is either a LineRule, which reprices the additions of its own
// ingredient kind, or an OrderRule, which takes a discount off the order
// subtotal once every line has been priced. Both are pure functions.
package promotion

import (
	"github.com/shopspring/decimal"

	"snackbar/core/catalog"
	"snackbar/core/ingredient"
)

// Line is what a rule sees for one ingredient kind of an order
type Line struct {
	// Ingredient is the kind being priced
	Ingredient ingredient.Kind

	// Quantity is the number of added portions
	Quantity int64

	// BuiltIn is the number of portions already in the sandwich's recipe
	BuiltIn int64

	// UnitPrice is the ingredient's unit price
	UnitPrice decimal.Decimal
}

// RawCost is the undiscounted cost of the added portions
func (l Line) RawCost() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Portions counts built-in and added portions together
func (l Line) Portions() int64 {
	return l.BuiltIn + l.Quantity
}

// Basket is the full composition of an order
type Basket struct {
	Recipe    catalog.Recipe
	Additions map[ingredient.Kind]int64
}

// Portions counts built-in and added portions of kind
func (b Basket) Portions(kind ingredient.Kind) int64 {
	return b.Recipe.Portions(kind) + b.Additions[kind]
}

// LineRule reprices the additions of one ingredient kind
type LineRule interface {
	// Name is the promotion's display name
	Name() string

	// Apply returns the discounted cost of the line. It never exceeds line.RawCost().
	Apply(line Line) decimal.Decimal
}

// OrderRule discounts the whole order, triggered by one ingredient kind
type OrderRule interface {
	// Name is the promotion's display name
	Name() string

	// Discount returns the amount to take off subtotal, zero when the rule does not apply
	Discount(line Line, basket Basket, subtotal decimal.Decimal) decimal.Decimal
}

// Registry maps ingredient kinds to their promotions.
// Register everything before sharing a Registry between goroutines.
type Registry struct {
	lines  map[ingredient.Kind]LineRule
	orders map[ingredient.Kind]OrderRule
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		lines:  make(map[ingredient.Kind]LineRule),
		orders: make(map[ingredient.Kind]OrderRule),
	}
}

// RegisterLine sets the line rule for kind, replacing any previous one
func (r *Registry) RegisterLine(kind ingredient.Kind, rule LineRule) *Registry {
	r.lines[kind] = rule
	return r
}

// RegisterOrder sets the order rule for kind, replacing any previous one
func (r *Registry) RegisterOrder(kind ingredient.Kind, rule OrderRule) *Registry {
	r.orders[kind] = rule
	return r
}

// LineRule returns the line rule registered for kind
func (r *Registry) LineRule(kind ingredient.Kind) (LineRule, bool) {
	rule, ok := r.lines[kind]
	return rule, ok
}

// OrderRule returns the order rule registered for kind
func (r *Registry) OrderRule(kind ingredient.Kind) (OrderRule, bool) {
	rule, ok := r.orders[kind]
	return rule, ok
}

// Names lists every registered promotion in ingredient order, line rules first
func (r *Registry) Names() []string {
	var names []string
	for _, k := range ingredient.Kinds() {
		if rule, ok := r.lines[k]; ok {
			names = append(names, rule.Name())
		}
	}
	for _, k := range ingredient.Kinds() {
		if rule, ok := r.orders[k]; ok {
			names = append(names, rule.Name())
		}
	}
	return names
}

// DefaultRegistry returns the house promotions:
//
//	PATTY    Extra meat    take 3 pay 2
//	CHEESE   Extra cheese  take 3 pay 2
//	LETTUCE  Light         10% off the order from 2 added lettuce
func DefaultRegistry() *Registry {
	return NewRegistry().
		RegisterLine(ingredient.Patty, TakePay{Label: "Extra meat", Take: 3, Pay: 2}).
		RegisterLine(ingredient.Cheese, TakePay{Label: "Extra cheese", Take: 3, Pay: 2}).
		RegisterOrder(ingredient.Lettuce, PercentOff{
			Label:       "Light",
			MinQuantity: 2,
			Percent:     decimal.NewFromInt(10),
		})
}
