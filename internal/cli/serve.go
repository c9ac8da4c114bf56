package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"os-scheduler/api"
	"os-scheduler/internal/schedulers"
)

func newServeCmd(a *app) *cobra.Command {
	var port int
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.config.Port = port
			}
			if cmd.Flags().Changed("db") {
				a.config.StorePath = dbPath
			}

			var runs api.RunStore
			if a.config.StorePath != "" {
				st, err := openStore(cmd.Context(), a.config.StorePath, a.logger)
				if err != nil {
					return err
				}
				defer st.Close()
				runs = st
				a.logger.Info("run history enabled", "path", a.config.StorePath)
			}

			handler := api.NewSchedulerHandlerImpl(a.config, schedulers.NewSimulator(a.logger), runs, a.logger)
			server := api.NewApp(handler)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				addr := fmt.Sprintf(":%d", a.config.Port)
				a.logger.Info("server starting", "addr", addr)
				errCh <- server.Listen(addr)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			a.logger.Info("shutting down")
			if err := server.Shutdown(); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			a.logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite run history path (default from config, empty disables)")
	return cmd
}
