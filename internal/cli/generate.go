package cli

import (
	"time"

	"github.com/spf13/cobra"

	"os-scheduler/internal/report"
	"os-scheduler/internal/workload"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seed        uint64
		count       int
		noEmergency bool
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.config.Workload
			if cmd.Flags().Changed("count") {
				cfg.Count = count
			}
			if noEmergency {
				cfg.Emergency = false
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}

			jobs, err := workload.Generate(cfg, workload.NewRand(seed))
			if err != nil {
				return err
			}
			if outPath == "" {
				report.WriteWorkload(cmd.OutOrStdout(), jobs)
				return nil
			}
			if err := workload.Save(outPath, jobs); err != nil {
				return err
			}
			a.logger.Info("workload saved", "path", outPath, "jobs", len(jobs), "seed", seed)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: time based)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of generated jobs (default from config)")
	cmd.Flags().BoolVar(&noEmergency, "no-emergency", false, "Do not append the emergency job")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to this .csv or .yaml file instead of stdout")
	return cmd
}
