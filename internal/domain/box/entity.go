package box

import (
	"errors"
	"strings"

	"cargo-consolidation/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MaxNameLength   = 50
	MaxDimensionCM  = 1000
	cubicCMPerMeter = 1_000_000
)

var (
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNameTooLong      = errors.New("name exceeds maximum length")
	ErrInvalidDimension = errors.New("dimension must be a positive number of centimetres")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

type Dimensions struct {
	lengthCM int
	widthCM  int
	heightCM int
}

func NewDimensions(lengthCM, widthCM, heightCM int) (Dimensions, error) {
	for _, d := range []struct {
		field string
		v     int
	}{{"length_cm", lengthCM}, {"width_cm", widthCM}, {"height_cm", heightCM}} {
		if d.v <= 0 || d.v > MaxDimensionCM {
			return Dimensions{}, errs.Field(d.field, ErrInvalidDimension)
		}
	}
	return Dimensions{lengthCM: lengthCM, widthCM: widthCM, heightCM: heightCM}, nil
}

func (d Dimensions) LengthCM() int { return d.lengthCM }
func (d Dimensions) WidthCM() int  { return d.widthCM }
func (d Dimensions) HeightCM() int { return d.heightCM }

// Volume in cubic metres. Exact: the divisor is a power of ten.
func (d Dimensions) Volume() decimal.Decimal {
	cm3 := int64(d.lengthCM) * int64(d.widthCM) * int64(d.heightCM)
	return decimal.NewFromInt(cm3).Div(decimal.NewFromInt(cubicCMPerMeter))
}

type BoxType struct {
	id          int64
	name        string
	dims        Dimensions
	pricePerKg  decimal.Decimal
	pricePerBox decimal.Decimal
}

func NewBoxType(name string, lengthCM, widthCM, heightCM int, pricePerKg, pricePerBox decimal.Decimal) (*BoxType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.Field("name", ErrEmptyName)
	}
	if len(name) > MaxNameLength {
		return nil, errs.Field("name", ErrNameTooLong)
	}
	dims, err := NewDimensions(lengthCM, widthCM, heightCM)
	if err != nil {
		return nil, err
	}
	if pricePerKg.IsNegative() {
		return nil, errs.Field("price_per_kg", ErrNegativePrice)
	}
	if pricePerBox.IsNegative() {
		return nil, errs.Field("price_per_box", ErrNegativePrice)
	}
	return &BoxType{
		name:        name,
		dims:        dims,
		pricePerKg:  pricePerKg.Round(2),
		pricePerBox: pricePerBox.Round(2),
	}, nil
}

// ReconstructBoxType rebuilds a persisted box type without validation.
func ReconstructBoxType(id int64, name string, lengthCM, widthCM, heightCM int, pricePerKg, pricePerBox decimal.Decimal) *BoxType {
	return &BoxType{
		id:          id,
		name:        name,
		dims:        Dimensions{lengthCM: lengthCM, widthCM: widthCM, heightCM: heightCM},
		pricePerKg:  pricePerKg,
		pricePerBox: pricePerBox,
	}
}

func (b *BoxType) ID() int64                    { return b.id }
func (b *BoxType) Name() string                 { return b.name }
func (b *BoxType) Dimensions() Dimensions       { return b.dims }
func (b *BoxType) PricePerKg() decimal.Decimal  { return b.pricePerKg }
func (b *BoxType) PricePerBox() decimal.Decimal { return b.pricePerBox }
func (b *BoxType) Volume() decimal.Decimal      { return b.dims.Volume() }
