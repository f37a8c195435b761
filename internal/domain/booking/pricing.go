package booking

import "github.com/shopspring/decimal"

// RatePerCubicMetre is the freight rate in GHS per cubic metre.
var RatePerCubicMetre = decimal.RequireFromString("453.66")

// LineVolume is box volume times quantity, unrounded.
func LineVolume(boxVolume decimal.Decimal, qty Quantity) decimal.Decimal {
	return boxVolume.Mul(decimal.NewFromInt(int64(qty.Value())))
}

// CalculateCost rounds half-up to 2dp. Inputs are non-negative so Round's
// half-away-from-zero is half-up here.
func CalculateCost(boxVolume decimal.Decimal, qty Quantity) decimal.Decimal {
	return LineVolume(boxVolume, qty).Mul(RatePerCubicMetre).Round(2)
}
