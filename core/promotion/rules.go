package promotion

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TakePay makes every Take-th portion of an ingredient free when the
// customer pays for Pay of them. Portions from the recipe count towards
// the groups, but only added portions are ever refunded.
type TakePay struct {
	Label string
	Take  int64
	Pay   int64
}

// Name returns the promotion's display name
func (r TakePay) Name() string {
	return r.Label
}

// Apply returns the cost of the added portions left to pay
func (r TakePay) Apply(line Line) decimal.Decimal {
	raw := line.RawCost()
	if line.Quantity <= 0 || r.Take <= 0 || r.Pay >= r.Take {
		return raw
	}

	free := (line.Portions() / r.Take) * (r.Take - r.Pay)
	if free <= 0 {
		return raw
	}
	if free > line.Quantity {
		free = line.Quantity
	}
	return line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity - free))
}

// PercentOff takes Percent off the order subtotal once MinQuantity portions
// of its ingredient were added. Other ingredients never affect it.
type PercentOff struct {
	Label       string
	MinQuantity int64
	Percent     decimal.Decimal
}

// Name returns the promotion's display name
func (r PercentOff) Name() string {
	return r.Label
}

// Discount returns the amount to take off subtotal
func (r PercentOff) Discount(line Line, _ Basket, subtotal decimal.Decimal) decimal.Decimal {
	if line.Quantity <= 0 || line.Quantity < r.MinQuantity {
		return decimal.Zero
	}
	if !subtotal.IsPositive() {
		return decimal.Zero
	}
	return subtotal.Mul(r.Percent).Div(hundred)
}
