// Package quote prices a prospective shipment before it is booked.
package quote

import (
	"errors"

	"cargo-consolidation/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrNoItems         = errors.New("at least one box is required")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

type Tier struct {
	Name            string
	MinBoxes        int
	DiscountPercent decimal.Decimal
}

// Tiers are ordered by ascending MinBoxes.
var Tiers = []Tier{
	{Name: "standard", MinBoxes: 0, DiscountPercent: decimal.Zero},
	{Name: "bronze", MinBoxes: 10, DiscountPercent: decimal.NewFromInt(5)},
	{Name: "silver", MinBoxes: 25, DiscountPercent: decimal.NewFromInt(10)},
	{Name: "gold", MinBoxes: 50, DiscountPercent: decimal.NewFromInt(15)},
}

func TierFor(boxes int) Tier {
	tier := Tiers[0]
	for _, t := range Tiers {
		if boxes >= t.MinBoxes {
			tier = t
		}
	}
	return tier
}

type Item struct {
	BoxVolume   decimal.Decimal
	PricePerBox decimal.Decimal
	Quantity    int
}

type Quote struct {
	TotalVolume     decimal.Decimal
	TotalBoxes      int
	Subtotal        decimal.Decimal
	Tier            string
	DiscountPercent decimal.Decimal
	Discount        decimal.Decimal
	TotalCost       decimal.Decimal
}

// Calculate charges each line at its per-box price, then applies the tier
// discount for the total number of boxes.
func Calculate(items []Item) (Quote, error) {
	if len(items) == 0 {
		return Quote{}, errs.Field("boxes", ErrNoItems)
	}
	volume := decimal.Zero
	subtotal := decimal.Zero
	boxes := 0
	for _, it := range items {
		if it.Quantity < 1 {
			return Quote{}, errs.Field("quantity", ErrInvalidQuantity)
		}
		qty := decimal.NewFromInt(int64(it.Quantity))
		volume = volume.Add(it.BoxVolume.Mul(qty))
		subtotal = subtotal.Add(it.PricePerBox.Mul(qty))
		boxes += it.Quantity
	}

	subtotal = subtotal.Round(2)
	tier := TierFor(boxes)
	discount := subtotal.Mul(tier.DiscountPercent).Div(decimal.NewFromInt(100)).Round(2)

	return Quote{
		TotalVolume:     volume.Round(2),
		TotalBoxes:      boxes,
		Subtotal:        subtotal,
		Tier:            tier.Name,
		DiscountPercent: tier.DiscountPercent,
		Discount:        discount,
		TotalCost:       subtotal.Sub(discount),
	}, nil
}
