package request

import "github.com/shopspring/decimal"

type CreateBoxTypeRequest struct {
	Name        string          `json:"name" binding:"required"`
	LengthCM    int             `json:"length_cm" binding:"required"`
	WidthCM     int             `json:"width_cm" binding:"required"`
	HeightCM    int             `json:"height_cm" binding:"required"`
	PricePerKg  decimal.Decimal `json:"price_per_kg"`
	PricePerBox decimal.Decimal `json:"price_per_box"`
}
