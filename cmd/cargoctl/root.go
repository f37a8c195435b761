package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"cargo-consolidation/cmd/bootstrap"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const startTimeout = 30 * time.Second

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cargoctl",
		Short:        "Cargo consolidation management commands",
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("json", false, "print results as JSON")

	root.AddCommand(
		newCheckDispatchCmd(),
		newCheckMilestonesCmd(),
		newMarkReadyBatchesCmd(),
		newSchedulesCmd(),
		newMigrateCmd(),
		newWorkerCmd(),
	)
	return root
}

// withApp starts the non-HTTP application graph, populates targets and runs fn.
func withApp(ctx context.Context, fn func(ctx context.Context) error, opts ...fx.Option) error {
	app := fx.New(
		bootstrap.CoreModule,
		fx.Options(opts...),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, startTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), startTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(ctx)
}

func printResult(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(out)
	return nil
}

func writeLine(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
