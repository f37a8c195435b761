package readstore

import (
	"context"

	"cargo-consolidation/internal/domain/box"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const boxTypeColumns = `id, name, length_cm, width_cm, height_cm, price_per_kg, price_per_box`

const (
	getBoxTypeByIDSQL   = `SELECT ` + boxTypeColumns + ` FROM box_types WHERE id = $1`
	getBoxTypesByIDsSQL = `SELECT ` + boxTypeColumns + ` FROM box_types WHERE id = ANY($1::bigint[]) ORDER BY id`
	listBoxTypesSQL     = `SELECT ` + boxTypeColumns + ` FROM box_types ORDER BY length_cm * width_cm * height_cm, id`
)

type BoxReadStore struct {
	db db.DBTX
}

func NewBoxReadStore(db db.DBTX) *BoxReadStore {
	return &BoxReadStore{db: db}
}

func (r *BoxReadStore) FindByID(ctx context.Context, id int64) (*queries.BoxTypeView, error) {
	v, err := scanBoxType(r.db.QueryRow(ctx, getBoxTypeByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("box type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get box type by id", err)
	}
	return v, nil
}

// FindByIDs returns the box types that exist; missing ids are simply absent.
func (r *BoxReadStore) FindByIDs(ctx context.Context, ids []int64) ([]*queries.BoxTypeView, error) {
	rows, err := r.db.Query(ctx, getBoxTypesByIDsSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get box types by ids", err)
	}
	return collectBoxTypes(rows)
}

func (r *BoxReadStore) List(ctx context.Context) ([]*queries.BoxTypeView, error) {
	rows, err := r.db.Query(ctx, listBoxTypesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list box types", err)
	}
	return collectBoxTypes(rows)
}

func collectBoxTypes(rows pgx.Rows) ([]*queries.BoxTypeView, error) {
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.BoxTypeView, error) {
		return scanBoxType(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan box types", err)
	}
	return views, nil
}

func scanBoxType(row pgx.Row) (*queries.BoxTypeView, error) {
	var (
		v             queries.BoxTypeView
		perKg, perBox pgtype.Numeric
		err           error
	)
	if err = row.Scan(&v.ID, &v.Name, &v.LengthCM, &v.WidthCM, &v.HeightCM, &perKg, &perBox); err != nil {
		return nil, err
	}
	if v.PricePerKg, err = pgconv.DecimalFromNumeric(perKg); err != nil {
		return nil, err
	}
	if v.PricePerBox, err = pgconv.DecimalFromNumeric(perBox); err != nil {
		return nil, err
	}
	v.Volume = box.ReconstructBoxType(v.ID, v.Name, v.LengthCM, v.WidthCM, v.HeightCM, v.PricePerKg, v.PricePerBox).Volume()
	return &v, nil
}
