package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snackbar/core/ingredient"
	"snackbar/core/types"
	pricingerrors "snackbar/internal/errors"
)

func TestParseAddition(t *testing.T) {
	tests := []struct {
		raw  string
		want types.Addition
	}{
		{"EGG", types.Addition{Ingredient: ingredient.Egg, Quantity: 1}},
		{"bacon=2", types.Addition{Ingredient: ingredient.Bacon, Quantity: 2}},
		{"CHEESE= 6", types.Addition{Ingredient: ingredient.Cheese, Quantity: 6}},
		{"LETTUCE=0", types.Addition{Ingredient: ingredient.Lettuce, Quantity: 0}},
		{"PATTY=-1", types.Addition{Ingredient: ingredient.Patty, Quantity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseAddition(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAdditionErrors(t *testing.T) {
	_, err := parseAddition("PICKLE=1")
	assert.True(t, pricingerrors.IsType(err, pricingerrors.TypeUnknownIngredient))

	_, err = parseAddition("EGG=two")
	assert.True(t, pricingerrors.IsType(err, pricingerrors.TypeInput))
}
