package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"os-scheduler/internal/report"
	"os-scheduler/internal/store"
)

func openStore(ctx context.Context, path string, logger *slog.Logger) (*store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(path, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return st, nil
}

func newRunsCmd(a *app) *cobra.Command {
	var dbPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List stored simulation runs, or show one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = a.config.StorePath
			}
			if dbPath == "" {
				return errors.New("no run history configured (set store.path or --db)")
			}
			st, err := openStore(cmd.Context(), dbPath, a.logger)
			if err != nil {
				return err
			}
			defer st.Close()

			if len(args) == 1 {
				run, err := st.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("run %s not found", args[0])
				}
				report.WriteRuns(cmd.OutOrStdout(), []*store.Run{run})
				report.WriteRunJobs(cmd.OutOrStdout(), run)
				return nil
			}

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			report.WriteRuns(cmd.OutOrStdout(), runs)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite run history path (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}
