package output

import (
	"snackbar/core/catalog"
	"snackbar/core/ingredient"
	"snackbar/core/types"
)

// Amounts are rendered as strings with two fractional digits so that JSON
// consumers never see binary floating point.

// OrderView is the JSON shape of a priced order
type OrderView struct {
	Sandwich   string          `json:"sandwich"`
	Name       string          `json:"name"`
	BasePrice  string          `json:"base_price"`
	Additions  []AdditionView  `json:"additions,omitempty"`
	Lines      []LineView      `json:"lines,omitempty"`
	Promotions []PromotionView `json:"promotions,omitempty"`
	Discount   string          `json:"discount"`
	Total      string          `json:"total"`
}

// AdditionView is the JSON shape of an addition
type AdditionView struct {
	Ingredient string `json:"ingredient"`
	Quantity   int64  `json:"quantity"`
}

// LineView is the JSON shape of a per-ingredient line
type LineView struct {
	Ingredient string `json:"ingredient"`
	Quantity   int64  `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	RawCost    string `json:"raw_cost"`
	Cost       string `json:"cost"`
}

// PromotionView is the JSON shape of an applied promotion
type PromotionView struct {
	Name       string `json:"name"`
	Ingredient string `json:"ingredient"`
	Discount   string `json:"discount"`
}

// MenuView is the JSON shape of the menu
type MenuView struct {
	Sandwiches  []SandwichView   `json:"sandwiches"`
	Ingredients []IngredientView `json:"ingredients"`
}

// SandwichView is one sandwich of the menu
type SandwichView struct {
	Kind      string           `json:"kind"`
	Name      string           `json:"name"`
	Recipe    map[string]int64 `json:"recipe"`
	BasePrice string           `json:"base_price"`
}

// IngredientView is one ingredient of the price list
type IngredientView struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

const places = 2

// NewOrderView converts a priced order
func NewOrderView(order *types.PricedOrder) OrderView {
	v := OrderView{
		Sandwich:  order.Sandwich.String(),
		Name:      order.Sandwich.DisplayName(),
		BasePrice: order.BasePrice.StringFixed(places),
		Discount:  order.Discount().StringFixed(places),
		Total:     order.TotalString(),
	}
	for _, a := range order.Additions {
		v.Additions = append(v.Additions, AdditionView{Ingredient: a.Ingredient.String(), Quantity: a.Quantity})
	}
	for _, l := range order.Lines {
		v.Lines = append(v.Lines, LineView{
			Ingredient: l.Ingredient.String(),
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice.StringFixed(places),
			RawCost:    l.RawCost.StringFixed(places),
			Cost:       l.Cost.StringFixed(places),
		})
	}
	for _, p := range order.Promotions {
		v.Promotions = append(v.Promotions, PromotionView{
			Name:       p.Name,
			Ingredient: p.Ingredient.String(),
			Discount:   p.Discount.StringFixed(places),
		})
	}
	return v
}

// NewMenuView converts the catalog entries and the price list
func NewMenuView(menu []catalog.Entry, prices ingredient.PriceTable) MenuView {
	v := MenuView{
		Sandwiches:  make([]SandwichView, 0, len(menu)),
		Ingredients: make([]IngredientView, 0, len(ingredient.Kinds())),
	}
	for _, e := range menu {
		recipe := make(map[string]int64, len(e.Recipe))
		for k, n := range e.Recipe {
			recipe[k.String()] = n
		}
		v.Sandwiches = append(v.Sandwiches, SandwichView{
			Kind:      e.Kind.String(),
			Name:      e.DisplayName,
			Recipe:    recipe,
			BasePrice: e.BasePrice.StringFixed(places),
		})
	}
	for _, k := range ingredient.Kinds() {
		v.Ingredients = append(v.Ingredients, IngredientView{
			Kind:  k.String(),
			Name:  k.DisplayName(),
			Price: prices.Price(k).StringFixed(places),
		})
	}
	return v
}
