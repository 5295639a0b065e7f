package engine

import (
	"math"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snackbar/core/catalog"
	"snackbar/core/ingredient"
	"snackbar/core/promotion"
	"snackbar/core/types"
	pricingerrors "snackbar/internal/errors"
)

func add(kind ingredient.Kind, qty int64) types.Addition {
	return types.Addition{Ingredient: kind, Quantity: qty}
}

// pinnedEngine prices against an explicit table so that a change to the
// house prices does not move these figures
func pinnedEngine() *Engine {
	prices := ingredient.NewTable(map[ingredient.Kind]decimal.Decimal{
		ingredient.Lettuce: decimal.RequireFromString("0.40"),
		ingredient.Bacon:   decimal.RequireFromString("2.00"),
		ingredient.Patty:   decimal.RequireFromString("3.00"),
		ingredient.Egg:     decimal.RequireFromString("0.80"),
		ingredient.Cheese:  decimal.RequireFromString("1.50"),
	})
	return New(catalog.New(prices), promotion.DefaultRegistry())
}

func TestPriceSandwich(t *testing.T) {
	tests := []struct {
		sandwich catalog.Kind
		want     string
	}{
		{catalog.XBacon, "6.50"},
		{catalog.XBurger, "4.50"},
		{catalog.XEgg, "5.30"},
		{catalog.XEggBacon, "7.30"},
	}

	e := pinnedEngine()
	for _, tt := range tests {
		t.Run(tt.sandwich.String(), func(t *testing.T) {
			priced, err := e.PriceSandwich(tt.sandwich)
			require.NoError(t, err)
			assert.Equal(t, tt.want, priced.TotalString())
			assert.Equal(t, tt.sandwich, priced.Sandwich)
		})
	}
}

func TestPriceOrder(t *testing.T) {
	tests := []struct {
		name      string
		sandwich  catalog.Kind
		additions []types.Addition
		want      string
	}{
		{
			name:      "no promotion",
			sandwich:  catalog.XBurger,
			additions: []types.Addition{add(ingredient.Egg, 1), add(ingredient.Bacon, 2)},
			want:      "9.30",
		},
		{
			name:     "nil additions",
			sandwich: catalog.XBurger,
			want:     "4.50",
		},
		{
			name:      "empty additions",
			sandwich:  catalog.XBurger,
			additions: []types.Addition{},
			want:      "4.50",
		},
		{
			name:      "light",
			sandwich:  catalog.XBurger,
			additions: []types.Addition{add(ingredient.Lettuce, 2)},
			want:      "4.77",
		},
		{
			name:      "extra meat two",
			sandwich:  catalog.XBacon,
			additions: []types.Addition{add(ingredient.Patty, 2)},
			want:      "9.50",
		},
		{
			name:      "extra meat six",
			sandwich:  catalog.XBacon,
			additions: []types.Addition{add(ingredient.Patty, 6)},
			want:      "18.50",
		},
		{
			name:      "extra cheese two",
			sandwich:  catalog.XEgg,
			additions: []types.Addition{add(ingredient.Cheese, 2)},
			want:      "6.80",
		},
		{
			name:      "extra cheese six",
			sandwich:  catalog.XEgg,
			additions: []types.Addition{add(ingredient.Cheese, 6)},
			want:      "11.30",
		},
		{
			name:     "all promotions",
			sandwich: catalog.XEgg,
			additions: []types.Addition{
				add(ingredient.Patty, 3),
				add(ingredient.Lettuce, 2),
				add(ingredient.Cheese, 5),
			},
			want: "14.94",
		},
		{
			name:      "single patty below threshold",
			sandwich:  catalog.XBacon,
			additions: []types.Addition{add(ingredient.Patty, 1)},
			want:      "9.50",
		},
		{
			name:      "single lettuce below threshold",
			sandwich:  catalog.XBurger,
			additions: []types.Addition{add(ingredient.Lettuce, 1)},
			want:      "4.90",
		},
		{
			name:      "light on a bacon sandwich",
			sandwich:  catalog.XBacon,
			additions: []types.Addition{add(ingredient.Lettuce, 2)},
			want:      "6.57",
		},
		{
			name:      "light with added bacon",
			sandwich:  catalog.XBurger,
			additions: []types.Addition{add(ingredient.Lettuce, 2), add(ingredient.Bacon, 1)},
			want:      "6.57",
		},
		{
			name:      "duplicate additions are summed",
			sandwich:  catalog.XBacon,
			additions: []types.Addition{add(ingredient.Patty, 1), add(ingredient.Patty, 1)},
			want:      "9.50",
		},
		{
			name:      "zero quantity contributes nothing",
			sandwich:  catalog.XBurger,
			additions: []types.Addition{add(ingredient.Lettuce, 0), add(ingredient.Cheese, 0)},
			want:      "4.50",
		},
	}

	e := pinnedEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priced, err := e.PriceOrder(types.Order{Sandwich: tt.sandwich, Additions: tt.additions})
			require.NoError(t, err)
			assert.Equal(t, tt.want, priced.TotalString())
		})
	}
}

func TestPriceOrderBreakdown(t *testing.T) {
	e := pinnedEngine()
	priced, err := e.PriceOrder(types.Order{
		Sandwich: catalog.XEgg,
		Additions: []types.Addition{
			add(ingredient.Cheese, 5),
			add(ingredient.Patty, 3),
			add(ingredient.Lettuce, 2),
		},
	})
	require.NoError(t, err)

	// lines follow ingredient order, not addition order
	require.Len(t, priced.Lines, 3)
	assert.Equal(t, ingredient.Lettuce, priced.Lines[0].Ingredient)
	assert.Equal(t, ingredient.Patty, priced.Lines[1].Ingredient)
	assert.Equal(t, ingredient.Cheese, priced.Lines[2].Ingredient)

	assert.Equal(t, "6.00", priced.Lines[1].Cost.StringFixed(2))
	assert.Equal(t, "9.00", priced.Lines[1].RawCost.StringFixed(2))
	assert.Equal(t, "4.50", priced.Lines[2].Cost.StringFixed(2))

	names := make([]string, 0, len(priced.Promotions))
	for _, p := range priced.Promotions {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Extra meat", "Extra cheese", "Light"}, names)
	assert.Equal(t, "7.66", priced.Discount().StringFixed(2))
}

func TestNoAdditionsIdentity(t *testing.T) {
	e := NewDefault()
	for _, kind := range catalog.Kinds() {
		sandwich, err := e.PriceSandwich(kind)
		require.NoError(t, err)
		order, err := e.PriceOrder(types.Order{Sandwich: kind})
		require.NoError(t, err)
		assert.True(t, sandwich.Total.Equal(order.Total), "%s: %s != %s", kind, sandwich.Total, order.Total)
	}
}

func TestDeterminism(t *testing.T) {
	e := NewDefault()
	order := types.Order{
		Sandwich:  catalog.XEggBacon,
		Additions: []types.Addition{add(ingredient.Cheese, 4), add(ingredient.Egg, 2), add(ingredient.Patty, 5)},
	}

	first, err := e.PriceOrder(order)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := e.PriceOrder(order)
		require.NoError(t, err)
		assert.Equal(t, first.TotalString(), again.TotalString())
		require.Len(t, again.Lines, len(first.Lines))
		for j := range first.Lines {
			assert.True(t, first.Lines[j].Cost.Equal(again.Lines[j].Cost))
		}
	}
}

func TestRoundingLaw(t *testing.T) {
	e := NewDefault()
	for _, kind := range catalog.Kinds() {
		for q := int64(0); q <= 7; q++ {
			for _, ing := range ingredient.Kinds() {
				priced, err := e.PriceOrder(types.Order{Sandwich: kind, Additions: []types.Addition{add(ing, q)}})
				require.NoError(t, err)
				assert.LessOrEqual(t, -priced.Total.Exponent(), int32(2), "%s+%s x%d = %s", kind, ing, q, priced.Total)
			}
		}
	}
}

func TestRoundHalfEven(t *testing.T) {
	// prices chosen so totals land exactly on a half cent
	prices := ingredient.NewTable(map[ingredient.Kind]decimal.Decimal{
		ingredient.Patty:   decimal.RequireFromString("1.00"),
		ingredient.Cheese:  decimal.RequireFromString("0.005"),
		ingredient.Lettuce: decimal.RequireFromString("0.01"),
	})
	e := New(catalog.New(prices), promotion.NewRegistry())

	// XBURGER base = 1.005 -> 1.00 (half to even)
	priced, err := e.PriceSandwich(catalog.XBurger)
	require.NoError(t, err)
	assert.Equal(t, "1.00", priced.TotalString())

	// 1.005 + 0.01 = 1.015 -> 1.02 (half to even)
	priced, err = e.PriceOrder(types.Order{Sandwich: catalog.XBurger, Additions: []types.Addition{add(ingredient.Lettuce, 1)}})
	require.NoError(t, err)
	assert.Equal(t, "1.02", priced.TotalString())
}

func TestAdditivityAcrossKinds(t *testing.T) {
	e := New(catalog.NewDefault(), promotion.NewRegistry())

	combined, err := e.PriceOrder(types.Order{
		Sandwich:  catalog.XBurger,
		Additions: []types.Addition{add(ingredient.Egg, 2), add(ingredient.Bacon, 3), add(ingredient.Lettuce, 1)},
	})
	require.NoError(t, err)

	sum := combined.BasePrice
	for _, a := range []types.Addition{add(ingredient.Egg, 2), add(ingredient.Bacon, 3), add(ingredient.Lettuce, 1)} {
		single, err := e.PriceOrder(types.Order{Sandwich: catalog.XBurger, Additions: []types.Addition{a}})
		require.NoError(t, err)
		sum = sum.Add(single.Total.Sub(single.BasePrice))
	}
	assert.True(t, sum.Equal(combined.Total), "sum %s != combined %s", sum, combined.Total)
}

func TestNegativeQuantity(t *testing.T) {
	e := NewDefault()
	priced, err := e.PriceOrder(types.Order{
		Sandwich:  catalog.XBurger,
		Additions: []types.Addition{add(ingredient.Egg, 1), add(ingredient.Bacon, -1)},
	})
	assert.Nil(t, priced)
	require.Error(t, err)
	assert.True(t, pricingerrors.IsType(err, pricingerrors.TypeInvalidQuantity))
}

func TestQuantityOverflow(t *testing.T) {
	tests := []struct {
		name      string
		sandwich  catalog.Kind
		additions []types.Addition
	}{
		{"summed additions wrap", catalog.XBurger, []types.Addition{add(ingredient.Egg, math.MaxInt64), add(ingredient.Egg, 2)}},
		{"added plus built-in wrap", catalog.XBurger, []types.Addition{add(ingredient.Patty, math.MaxInt64)}},
		{"cheese on top of the recipe", catalog.XEgg, []types.Addition{add(ingredient.Cheese, math.MaxInt64-1), add(ingredient.Cheese, 1)}},
	}

	e := NewDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priced, err := e.PriceOrder(types.Order{Sandwich: tt.sandwich, Additions: tt.additions})
			assert.Nil(t, priced)
			require.Error(t, err)
			assert.True(t, pricingerrors.IsType(err, pricingerrors.TypeInvalidQuantity))
		})
	}
}

func TestLargeQuantityStaysPositive(t *testing.T) {
	e := NewDefault()

	priced, err := e.PriceOrder(types.Order{
		Sandwich:  catalog.XBurger,
		Additions: []types.Addition{add(ingredient.Egg, math.MaxInt64-1), add(ingredient.Egg, 1)},
	})
	require.NoError(t, err)
	assert.True(t, priced.Total.IsPositive())
	assert.Equal(t, int64(math.MaxInt64), priced.Lines[0].Quantity)

	priced, err = e.PriceOrder(types.Order{
		Sandwich:  catalog.XBurger,
		Additions: []types.Addition{add(ingredient.Patty, math.MaxInt64-1)},
	})
	require.NoError(t, err)
	assert.True(t, priced.Total.IsPositive())
}

func TestUnknownSandwich(t *testing.T) {
	e := NewDefault()

	_, err := e.PriceSandwich(catalog.Kind(42))
	assert.True(t, pricingerrors.IsType(err, pricingerrors.TypeUnknownSandwich))

	_, err = e.PriceOrder(types.Order{Sandwich: catalog.Kind(-1)})
	assert.True(t, pricingerrors.IsType(err, pricingerrors.TypeUnknownSandwich))
}

func TestUnknownIngredientCostsNothing(t *testing.T) {
	e := NewDefault()
	priced, err := e.PriceOrder(types.Order{
		Sandwich:  catalog.XBurger,
		Additions: []types.Addition{add(ingredient.Kind(99), 3)},
	})
	require.NoError(t, err)
	assert.Equal(t, "4.50", priced.TotalString())
	assert.Empty(t, priced.Lines)
}

func TestAdditionsAreCopied(t *testing.T) {
	e := NewDefault()
	additions := []types.Addition{add(ingredient.Egg, 1)}
	priced, err := e.PriceOrder(types.Order{Sandwich: catalog.XBurger, Additions: additions})
	require.NoError(t, err)

	additions[0].Quantity = 10
	assert.Equal(t, int64(1), priced.Additions[0].Quantity)
}

func TestConcurrentPricing(t *testing.T) {
	e := NewDefault()
	order := types.Order{
		Sandwich:  catalog.XEgg,
		Additions: []types.Addition{add(ingredient.Patty, 3), add(ingredient.Lettuce, 2), add(ingredient.Cheese, 5)},
	}

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			priced, err := e.PriceOrder(order)
			if err != nil {
				results[i] = err.Error()
				return
			}
			results[i] = priced.TotalString()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "14.94", r)
	}
}
