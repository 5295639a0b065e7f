// Package api - HTTP JSON API for order pricing
// The API only parses requests, calls the engine and serializes results.
// It never prices anything itself.
package api

import (
	"fmt"

	"snackbar/core/catalog"
	"snackbar/core/ingredient"
	"snackbar/core/types"
	pricingerrors "snackbar/internal/errors"
)

// OrderRequest is the body of POST /orders/price
type OrderRequest struct {
	// Sandwich is a sandwich kind, e.g. "XBURGER"
	Sandwich string `json:"sandwich"`

	// Additions are optional extra ingredients
	Additions []AdditionRequest `json:"additions,omitempty"`
}

// AdditionRequest is one extra ingredient
type AdditionRequest struct {
	Ingredient string `json:"ingredient"`
	Quantity   int64  `json:"quantity"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// toOrder resolves the request's names into an order.
// Quantities are validated by the engine.
func (r *OrderRequest) toOrder() (types.Order, error) {
	if r.Sandwich == "" {
		return types.Order{}, pricingerrors.New(pricingerrors.TypeInput, "sandwich is required")
	}

	sandwich, err := catalog.ParseKind(r.Sandwich)
	if err != nil {
		return types.Order{}, err
	}

	order := types.Order{Sandwich: sandwich}
	for i, a := range r.Additions {
		kind, err := ingredient.ParseKind(a.Ingredient)
		if err != nil {
			return types.Order{}, fmt.Errorf("additions[%d]: %w", i, err)
		}
		order.Additions = append(order.Additions, types.Addition{Ingredient: kind, Quantity: a.Quantity})
	}
	return order, nil
}
