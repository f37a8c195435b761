//go:build unit || e2e

package builder

import (
	"cargo-consolidation/internal/domain/box"
	reqdto "cargo-consolidation/internal/handler/dto/request"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type BoxBuilder struct {
	ID          int64
	Name        string
	LengthCM    int
	WidthCM     int
	HeightCM    int
	PricePerKg  decimal.Decimal
	PricePerBox decimal.Decimal
}

// NewBoxBuilder starts from the seeded "M" box.
func NewBoxBuilder() *BoxBuilder {
	return &BoxBuilder{
		ID:          2,
		Name:        "M",
		LengthCM:    45,
		WidthCM:     30,
		HeightCM:    30,
		PricePerKg:  decimal.RequireFromString("2.50"),
		PricePerBox: decimal.RequireFromString("100.00"),
	}
}

func (b *BoxBuilder) With(mutate func(*BoxBuilder)) *BoxBuilder {
	mutate(b)
	return b
}

func (b *BoxBuilder) AsCubicMetre() *BoxBuilder {
	b.ID = 1
	b.Name = "Cube"
	b.LengthCM, b.WidthCM, b.HeightCM = 100, 100, 100
	return b
}

func (b *BoxBuilder) AsSmall() *BoxBuilder {
	b.ID = 1
	b.Name = "S"
	b.LengthCM, b.WidthCM, b.HeightCM = 30, 20, 15
	b.PricePerBox = decimal.RequireFromString("50.00")
	return b
}

func (b *BoxBuilder) BuildDomain() (*box.BoxType, error) {
	if _, err := box.NewBoxType(b.Name, b.LengthCM, b.WidthCM, b.HeightCM, b.PricePerKg, b.PricePerBox); err != nil {
		return nil, err
	}
	return box.ReconstructBoxType(b.ID, b.Name, b.LengthCM, b.WidthCM, b.HeightCM, b.PricePerKg, b.PricePerBox), nil
}

func (b *BoxBuilder) MustBuildDomain() *box.BoxType {
	bt, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bt
}

func (b *BoxBuilder) BuildCreateRequestDTO() reqdto.CreateBoxTypeRequest {
	return reqdto.CreateBoxTypeRequest{
		Name:        b.Name,
		LengthCM:    b.LengthCM,
		WidthCM:     b.WidthCM,
		HeightCM:    b.HeightCM,
		PricePerKg:  b.PricePerKg,
		PricePerBox: b.PricePerBox,
	}
}

func (b *BoxBuilder) BuildView() *queries.BoxTypeView {
	bt := b.MustBuildDomain()
	return &queries.BoxTypeView{
		ID:          bt.ID(),
		Name:        bt.Name(),
		LengthCM:    b.LengthCM,
		WidthCM:     b.WidthCM,
		HeightCM:    b.HeightCM,
		Volume:      bt.Volume(),
		PricePerKg:  bt.PricePerKg(),
		PricePerBox: bt.PricePerBox(),
	}
}
