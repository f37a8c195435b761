package main

import (
	"context"
	"time"

	"cargo-consolidation/cmd/bootstrap"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var pool *pgxpool.Pool
			app := fx.New(
				bootstrap.ConfigModule,
				bootstrap.LoggerModule,
				bootstrap.DBModule,
				fx.Populate(&pool),
				fx.NopLogger,
			)
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				_ = app.Stop(ctx)
			}()

			applied, err := db.Migrate(cmd.Context(), pool, migrations.FS)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(applied) == 0 {
				writeLine(out, "Database is up to date")
			}
			for _, v := range applied {
				writeLine(out, "Applied %s", v)
			}
			return nil
		},
	}
}
