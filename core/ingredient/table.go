package ingredient

import "github.com/shopspring/decimal"

// PriceTable maps an ingredient to its unit price
type PriceTable interface {
	Price(kind Kind) decimal.Decimal
}

var (
	priceLettuce = decimal.RequireFromString("0.40")
	priceBacon   = decimal.RequireFromString("2.00")
	pricePatty   = decimal.RequireFromString("3.00")
	priceEgg     = decimal.RequireFromString("0.80")
	priceCheese  = decimal.RequireFromString("1.50")
)

// DefaultTable is the fixed house price list
type DefaultTable struct{}

// Price returns the unit price, or zero outside the enumeration
func (DefaultTable) Price(kind Kind) decimal.Decimal {
	switch kind {
	case Lettuce:
		return priceLettuce
	case Bacon:
		return priceBacon
	case Patty:
		return pricePatty
	case Egg:
		return priceEgg
	case Cheese:
		return priceCheese
	default:
		return decimal.Zero
	}
}

// Table is a PriceTable backed by explicit prices.
// Kinds without an entry cost zero.
type Table struct {
	prices map[Kind]decimal.Decimal
}

// NewTable copies prices into a new table
func NewTable(prices map[Kind]decimal.Decimal) *Table {
	t := &Table{prices: make(map[Kind]decimal.Decimal, len(prices))}
	for k, p := range prices {
		t.prices[k] = p
	}
	return t
}

// Override returns a table with base's prices for every kind, replaced by overrides where given
func Override(base PriceTable, overrides map[Kind]decimal.Decimal) *Table {
	prices := make(map[Kind]decimal.Decimal, len(names))
	for _, k := range Kinds() {
		prices[k] = base.Price(k)
	}
	for k, p := range overrides {
		prices[k] = p
	}
	return &Table{prices: prices}
}

// Price returns the unit price, or zero when the kind is missing
func (t *Table) Price(kind Kind) decimal.Decimal {
	if p, ok := t.prices[kind]; ok {
		return p
	}
	return decimal.Zero
}
