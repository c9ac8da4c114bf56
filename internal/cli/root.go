package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"os-scheduler/config"
	"os-scheduler/internal/logging"
)

const version = "0.3.0"

// app carries what every subcommand needs after flags are parsed.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:     "os-scheduler",
		Short:   "CPU scheduling simulator",
		Version: version,
		Long: `os-scheduler simulates FCFS, LJF, RR, HRRN and LRTF dispatching over a
batch of jobs and reports per-job waiting and turnaround times.

Examples:
  # Compare all five policies on a generated workload
  os-scheduler simulate --seed 42

  # Run Round-Robin with quantum 2 on a CSV workload
  os-scheduler simulate --input jobs.csv --algorithm rr --quantum 2

  # Serve the HTTP API
  os-scheduler serve --port 9095
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newSimulateCmd(a))
	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newRunsCmd(a))
	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	a.config = cfg
	a.logger = logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	return nil
}
