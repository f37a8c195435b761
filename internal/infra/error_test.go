//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"cargo-consolidation/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name           string
		err            error
		kinds          []infra.RepositoryErrorKind
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), wantKind: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "bookings_reference_code_key"}, wantKind: infra.KindDuplicateKey, wantConstraint: "bookings_reference_code_key"},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503", ConstraintName: "bookings_box_type_id_fkey"}, wantKind: infra.KindForeignKeyViolated, wantConstraint: "bookings_box_type_id_fkey"},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, wantKind: infra.KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, wantKind: infra.KindDBFailure},
		{name: "plain error", err: errors.New("boom"), wantKind: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kinds: []infra.RepositoryErrorKind{infra.KindNotFound}, wantKind: infra.KindNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed", c.err, c.kinds...)
			assert.True(t, infra.IsKind(err, c.wantKind), "got %v", err)
			assert.Equal(t, c.wantConstraint, infra.ConstraintOf(err))
			assert.ErrorIs(t, err, c.err)
		})
	}

	t.Run("message includes kind", func(t *testing.T) {
		err := infra.WrapRepoErr("box type not found", nil, infra.KindNotFound)
		assert.Equal(t, "NOT_FOUND: box type not found", err.Error())
		assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
	})
}
