//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	dbpkg "cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
	"cargo-consolidation/migrations"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// referenceMarker splits the schema migration into DDL and the seed rows that
// a truncated database needs back.
const referenceMarker = "-- Reference data"

func CreateTestReferral(t *testing.T, db dbpkg.DBTX, email, code string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO referrals (id, email, code) VALUES ($1, $2, $3)", id, email, code)
	require.NoError(t, err)
	return id
}

// CreateOpenBatch opens a container batch; bookings otherwise open one lazily.
func CreateOpenBatch(t *testing.T, db dbpkg.DBTX) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO container_batches (status) VALUES ('open') RETURNING id").Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateNotificationJob inserts an outbox job in the given state, last
// touched at updatedAt.
func CreateNotificationJob(t *testing.T, db dbpkg.DBTX, status string, attempts, maxAttempts int, updatedAt time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
INSERT INTO notification_jobs (kind, topic, payload, status, attempts, max_attempts, run_at, updated_at)
VALUES ('booking_confirmation', 'bookings', '{}', $1, $2, $3, $4, $4)
RETURNING id`, status, attempts, maxAttempts, updatedAt).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db dbpkg.DBTX, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func ReferralReward(t *testing.T, db dbpkg.DBTX, id uuid.UUID) (decimal.Decimal, int) {
	t.Helper()

	var (
		reward pgtype.Numeric
		total  int
	)
	err := db.QueryRow(context.Background(),
		"SELECT reward_amount, total_referrals FROM referrals WHERE id = $1", id).Scan(&reward, &total)
	require.NoError(t, err)
	amount, err := pgconv.DecimalFromNumeric(reward)
	require.NoError(t, err)
	return amount, total
}

// SeedReferenceData re-inserts the box types, notification templates and
// periodic tasks shipped with the schema.
func SeedReferenceData(pool *pgxpool.Pool) error {
	seed, err := referenceSQL()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = pool.Exec(ctx, seed)
	return err
}

func referenceSQL() (string, error) {
	body, err := fs.ReadFile(migrations.FS, "001_initial_schema.sql")
	if err != nil {
		return "", err
	}
	_, seed, ok := strings.Cut(string(body), referenceMarker)
	if !ok {
		return "", fmt.Errorf("reference data marker not found in schema")
	}
	return seed, nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
