// Package ingredient - Ingredient kinds and their unit prices.
package ingredient

import (
	"strings"

	pricingerrors "snackbar/internal/errors"
)

// Kind identifies an ingredient. The set is closed.
type Kind int

const (
	Lettuce Kind = iota
	Bacon
	Patty
	Egg
	Cheese
)

var names = [...]string{
	Lettuce: "LETTUCE",
	Bacon:   "BACON",
	Patty:   "PATTY",
	Egg:     "EGG",
	Cheese:  "CHEESE",
}

var displayNames = [...]string{
	Lettuce: "Lettuce",
	Bacon:   "Bacon",
	Patty:   "Beef patty",
	Egg:     "Egg",
	Cheese:  "Cheese",
}

// Kinds returns every ingredient kind in declaration order
func Kinds() []Kind {
	return []Kind{Lettuce, Bacon, Patty, Egg, Cheese}
}

// Valid reports whether k belongs to the enumeration
func (k Kind) Valid() bool {
	return k >= Lettuce && k <= Cheese
}

// String returns the upper-case name
func (k Kind) String() string {
	if !k.Valid() {
		return "UNKNOWN"
	}
	return names[k]
}

// DisplayName returns the human-readable name
func (k Kind) DisplayName() string {
	if !k.Valid() {
		return ""
	}
	return displayNames[k]
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, pricingerrors.UnknownIngredient(k.String())
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

// ParseKind resolves a name case-insensitively
func ParseKind(s string) (Kind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for k, n := range names {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, pricingerrors.UnknownIngredient(s)
}
