package repository

import (
	"context"

	"cargo-consolidation/internal/domain/box"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
)

const createBoxTypeSQL = `
INSERT INTO box_types (name, length_cm, width_cm, height_cm, price_per_kg, price_per_box)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

type BoxRepository struct{}

func NewBoxRepository() *BoxRepository {
	return &BoxRepository{}
}

func (r *BoxRepository) Create(ctx context.Context, tx db.DBTX, bt *box.BoxType) (int64, error) {
	dims := bt.Dimensions()
	var id int64
	err := tx.QueryRow(ctx, createBoxTypeSQL,
		bt.Name(),
		dims.LengthCM(),
		dims.WidthCM(),
		dims.HeightCM(),
		pgconv.DecimalToNumeric(bt.PricePerKg()),
		pgconv.DecimalToNumeric(bt.PricePerBox()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create box type", err)
	}
	return id, nil
}
