// Package catalog - Sandwich catalog
// Each sandwich has a fixed recipe; its base price is the recipe priced
// against an ingredient price table.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"snackbar/core/ingredient"
	pricingerrors "snackbar/internal/errors"
)

// Kind identifies a sandwich. The set is closed.
type Kind int

const (
	XBurger Kind = iota
	XEgg
	XBacon
	XEggBacon
)

// Recipe is the built-in composition of a sandwich, in portions per ingredient
type Recipe map[ingredient.Kind]int64

// Portions returns how many portions of kind the recipe holds
func (r Recipe) Portions(kind ingredient.Kind) int64 {
	return r[kind]
}

type definition struct {
	name        string
	displayName string
	recipe      Recipe
}

var definitions = [...]definition{
	XBurger: {
		name:        "XBURGER",
		displayName: "X-Burger",
		recipe:      Recipe{ingredient.Patty: 1, ingredient.Cheese: 1},
	},
	XEgg: {
		name:        "XEGG",
		displayName: "X-Egg",
		recipe:      Recipe{ingredient.Egg: 1, ingredient.Patty: 1, ingredient.Cheese: 1},
	},
	XBacon: {
		name:        "XBACON",
		displayName: "X-Bacon",
		recipe:      Recipe{ingredient.Bacon: 1, ingredient.Patty: 1, ingredient.Cheese: 1},
	},
	XEggBacon: {
		name:        "XEGGBACON",
		displayName: "X-Egg Bacon",
		recipe:      Recipe{ingredient.Egg: 1, ingredient.Bacon: 1, ingredient.Patty: 1, ingredient.Cheese: 1},
	},
}

// Kinds returns every sandwich kind in declaration order
func Kinds() []Kind {
	return []Kind{XBurger, XEgg, XBacon, XEggBacon}
}

// Valid reports whether k belongs to the enumeration
func (k Kind) Valid() bool {
	return k >= XBurger && k <= XEggBacon
}

// String returns the upper-case name
func (k Kind) String() string {
	if !k.Valid() {
		return "UNKNOWN"
	}
	return definitions[k].name
}

// DisplayName returns the menu name, or "" outside the enumeration
func (k Kind) DisplayName() string {
	if !k.Valid() {
		return ""
	}
	return definitions[k].displayName
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, pricingerrors.UnknownSandwich(k.String())
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a name case-insensitively. "X-EGG BACON" style names are accepted too.
func ParseKind(s string) (Kind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "", " ", "", "_", "").Replace(name)
	for k, d := range definitions {
		if d.name == name {
			return Kind(k), nil
		}
	}
	return 0, pricingerrors.UnknownSandwich(s)
}

// Entry is one line of the menu
type Entry struct {
	Kind        Kind
	DisplayName string
	Recipe      Recipe
	BasePrice   decimal.Decimal
}

// Catalog prices sandwiches against a price table
type Catalog struct {
	prices ingredient.PriceTable
}

// New creates a catalog over prices
func New(prices ingredient.PriceTable) *Catalog {
	return &Catalog{prices: prices}
}

// NewDefault creates a catalog over the house price list
func NewDefault() *Catalog {
	return New(ingredient.DefaultTable{})
}

// Prices returns the price table the catalog uses
func (c *Catalog) Prices() ingredient.PriceTable {
	return c.prices
}

// Recipe returns a copy of the sandwich's built-in composition
func (c *Catalog) Recipe(kind Kind) (Recipe, error) {
	if !kind.Valid() {
		return nil, pricingerrors.UnknownSandwich(kind.String())
	}
	recipe := make(Recipe, len(definitions[kind].recipe))
	for k, n := range definitions[kind].recipe {
		recipe[k] = n
	}
	return recipe, nil
}

// DisplayName returns the sandwich's menu name
func (c *Catalog) DisplayName(kind Kind) (string, error) {
	if !kind.Valid() {
		return "", pricingerrors.UnknownSandwich(kind.String())
	}
	return kind.DisplayName(), nil
}

// BasePrice sums the recipe at unit prices. The result is not rounded.
func (c *Catalog) BasePrice(kind Kind) (decimal.Decimal, error) {
	if !kind.Valid() {
		return decimal.Zero, pricingerrors.UnknownSandwich(kind.String())
	}

	total := decimal.Zero
	for _, k := range ingredient.Kinds() {
		if n := definitions[kind].recipe[k]; n > 0 {
			total = total.Add(c.prices.Price(k).Mul(decimal.NewFromInt(n)))
		}
	}
	return total, nil
}

// Entries returns the full menu in declaration order
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(definitions))
	for _, kind := range Kinds() {
		recipe, _ := c.Recipe(kind)
		price, _ := c.BasePrice(kind)
		entries = append(entries, Entry{
			Kind:        kind,
			DisplayName: definitions[kind].displayName,
			Recipe:      recipe,
			BasePrice:   price.RoundBank(2),
		})
	}
	return entries
}
