// Package engine provides the order pricing engine.
// CLI and HTTP API are thin wrappers around it.
package engine

import (
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"snackbar/core/catalog"
	"snackbar/core/ingredient"
	"snackbar/core/promotion"
	"snackbar/core/types"
	pricingerrors "snackbar/internal/errors"
)

// Places is the number of fractional digits of every returned amount
const Places = 2

// Engine prices sandwiches and orders. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	catalog    *catalog.Catalog
	promotions *promotion.Registry
	logger     *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger attaches a logger; the engine logs at debug level only
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine over a catalog and a promotion registry
func New(c *catalog.Catalog, promotions *promotion.Registry, opts ...Option) *Engine {
	if promotions == nil {
		promotions = promotion.NewRegistry()
	}
	e := &Engine{
		catalog:    c,
		promotions: promotions,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewDefault creates an engine with the house prices and promotions
func NewDefault(opts ...Option) *Engine {
	return New(catalog.NewDefault(), promotion.DefaultRegistry(), opts...)
}

// Catalog returns the engine's catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Promotions returns the engine's promotion registry
func (e *Engine) Promotions() *promotion.Registry {
	return e.promotions
}

// PriceSandwich prices a sandwich without additions
func (e *Engine) PriceSandwich(kind catalog.Kind) (*types.PricedOrder, error) {
	base, err := e.catalog.BasePrice(kind)
	if err != nil {
		return nil, err
	}

	total := round(base)
	e.logger.Debug("priced sandwich",
		zap.Stringer("sandwich", kind),
		zap.String("total", total.StringFixed(Places)))

	return &types.PricedOrder{
		Sandwich:  kind,
		BasePrice: base,
		Total:     total,
	}, nil
}

// PriceOrder prices a sandwich plus its additions.
// Additions of the same ingredient are summed before promotions apply.
// A negative quantity fails the whole order.
func (e *Engine) PriceOrder(order types.Order) (*types.PricedOrder, error) {
	base, err := e.catalog.BasePrice(order.Sandwich)
	if err != nil {
		return nil, err
	}
	recipe, err := e.catalog.Recipe(order.Sandwich)
	if err != nil {
		return nil, err
	}

	quantities, err := groupAdditions(order.Additions, recipe)
	if err != nil {
		return nil, err
	}

	result := &types.PricedOrder{
		Sandwich:  order.Sandwich,
		Additions: append([]types.Addition(nil), order.Additions...),
		BasePrice: base,
	}

	prices := e.catalog.Prices()
	subtotal := base
	contexts := make(map[ingredient.Kind]promotion.Line, len(quantities))

	for _, kind := range ingredient.Kinds() {
		q := quantities[kind]
		if q == 0 {
			continue
		}

		line := promotion.Line{
			Ingredient: kind,
			Quantity:   q,
			BuiltIn:    recipe.Portions(kind),
			UnitPrice:  prices.Price(kind),
		}
		contexts[kind] = line

		raw := line.RawCost()
		cost := raw
		if rule, ok := e.promotions.LineRule(kind); ok {
			cost = rule.Apply(line)
			if discount := raw.Sub(cost); discount.IsPositive() {
				result.Promotions = append(result.Promotions, types.AppliedPromotion{
					Name:       rule.Name(),
					Ingredient: kind,
					Discount:   discount,
				})
			}
		}

		result.Lines = append(result.Lines, types.Line{
			Ingredient: kind,
			Quantity:   q,
			UnitPrice:  line.UnitPrice,
			RawCost:    raw,
			Cost:       cost,
		})
		subtotal = subtotal.Add(cost)
	}

	basket := promotion.Basket{Recipe: recipe, Additions: quantities}
	total := subtotal
	for _, kind := range ingredient.Kinds() {
		line, ok := contexts[kind]
		if !ok {
			continue
		}
		rule, ok := e.promotions.OrderRule(kind)
		if !ok {
			continue
		}
		if discount := rule.Discount(line, basket, subtotal); discount.IsPositive() {
			total = total.Sub(discount)
			result.Promotions = append(result.Promotions, types.AppliedPromotion{
				Name:       rule.Name(),
				Ingredient: kind,
				Discount:   discount,
			})
		}
	}

	result.Total = round(total)

	e.logger.Debug("priced order",
		zap.Stringer("sandwich", order.Sandwich),
		zap.Int("additions", len(order.Additions)),
		zap.Int("promotions", len(result.Promotions)),
		zap.String("total", result.Total.StringFixed(Places)))

	return result, nil
}

// groupAdditions sums quantities per ingredient, rejecting negative ones.
// A sum must leave room for the recipe's own portions, so that built-in plus
// added portions never overflow. Kinds outside the enumeration are kept but
// never priced.
func groupAdditions(additions []types.Addition, recipe catalog.Recipe) (map[ingredient.Kind]int64, error) {
	quantities := make(map[ingredient.Kind]int64, len(additions))
	for _, a := range additions {
		if a.Quantity < 0 {
			return nil, pricingerrors.InvalidQuantity(a.Ingredient.String(), a.Quantity)
		}
		room := math.MaxInt64 - recipe.Portions(a.Ingredient) - quantities[a.Ingredient]
		if a.Quantity > room {
			return nil, pricingerrors.QuantityTooLarge(a.Ingredient.String(), math.MaxInt64-recipe.Portions(a.Ingredient))
		}
		quantities[a.Ingredient] += a.Quantity
	}
	return quantities, nil
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(Places)
}
