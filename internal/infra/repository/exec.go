package repository

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
)

// execOne runs a statement that must touch exactly one row.
func execOne(ctx context.Context, tx db.DBTX, entity, sql string, args ...any) error {
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update "+entity, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(entity+" not found", nil, infra.KindNotFound)
	}
	return nil
}
