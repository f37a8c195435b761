package readstore

import (
	"cargo-consolidation/internal/pkg/pgconv"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// keysetArgs splits a cursor position into nullable query parameters; a nil
// keyset yields NULLs so the same statement serves the first page.
func keysetArgs(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}

func seqKeysetArgs(after *queries.SeqKeyset) (pgtype.Timestamptz, pgtype.Int8) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.Int8{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgtype.Int8{Int64: after.ID, Valid: true}
}

func uuidArg(id *uuid.UUID) pgtype.UUID {
	return pgconv.UUIDPtrToPgtype(id)
}
