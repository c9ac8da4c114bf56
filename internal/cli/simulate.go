package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"os-scheduler/internal/core"
	"os-scheduler/internal/report"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/store"
	"os-scheduler/internal/workload"
)

type simulateOptions struct {
	input        string
	seed         uint64
	algorithms   string
	quantum      int
	saveWorkload string
	summary      string
	dbPath       string
	quiet        bool
}

func newSimulateCmd(a *app) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run scheduling policies over a workload and report the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = uint64(time.Now().UnixNano())
			}
			return a.simulate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Workload file (.csv, .yaml); generated when empty")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for the generated workload (default: time based)")
	cmd.Flags().StringVarP(&opts.algorithms, "algorithm", "a", "all", "Comma-separated algorithms (fcfs, ljf, rr, hrrn, lrtf) or all")
	cmd.Flags().IntVarP(&opts.quantum, "quantum", "q", 0, "Round-Robin time quantum (default from config)")
	cmd.Flags().StringVar(&opts.saveWorkload, "save-workload", "", "Write the workload to this .csv or .yaml file")
	cmd.Flags().StringVar(&opts.summary, "summary", "", "Write the averages summary to this file")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "Store results in this SQLite run history (default from config)")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "Only print the summary")
	return cmd
}

func (a *app) simulate(cmd *cobra.Command, opts *simulateOptions) error {
	out := cmd.OutOrStdout()

	jobs, err := a.loadWorkload(opts)
	if err != nil {
		return err
	}
	if opts.saveWorkload != "" {
		if err := workload.Save(opts.saveWorkload, jobs); err != nil {
			return fmt.Errorf("save workload: %w", err)
		}
		a.logger.Info("workload saved", "path", opts.saveWorkload)
	}
	if !opts.quiet {
		report.WriteWorkload(out, jobs)
		fmt.Fprintln(out)
	}

	quantum := opts.quantum
	if quantum == 0 {
		quantum = a.config.RoundRobinTimeQuantum
	}
	results, err := a.runAlgorithms(jobs, opts.algorithms, quantum)
	if err != nil {
		return err
	}

	summary := make([]responses.ScheduleResponse, 0, len(results))
	for _, result := range results {
		resp, err := schedulers.GenerateResponse(result)
		if err != nil {
			return err
		}
		if !opts.quiet {
			report.WriteSchedule(out, resp)
			fmt.Fprintln(out)
		}
		summary = append(summary, resp)
	}

	if err := report.WriteSummary(out, summary); err != nil {
		return err
	}
	if opts.summary != "" {
		if err := report.SaveSummary(opts.summary, summary); err != nil {
			return fmt.Errorf("save summary: %w", err)
		}
		a.logger.Info("summary saved", "path", opts.summary)
	}

	dbPath := opts.dbPath
	if dbPath == "" {
		dbPath = a.config.StorePath
	}
	if dbPath != "" {
		return a.storeRuns(cmd, dbPath, summary)
	}
	return nil
}

func (a *app) loadWorkload(opts *simulateOptions) ([]*core.Process, error) {
	if opts.input != "" {
		jobs, err := workload.Load(opts.input)
		if err != nil {
			return nil, fmt.Errorf("load workload: %w", err)
		}
		return jobs, nil
	}
	a.logger.Info("generating workload", "seed", opts.seed, "count", a.config.Workload.Count)
	return workload.Generate(a.config.Workload, workload.NewRand(opts.seed))
}

func (a *app) runAlgorithms(jobs []*core.Process, names string, quantum int) ([]*schedulers.Result, error) {
	sim := schedulers.NewSimulator(a.logger)
	if strings.EqualFold(strings.TrimSpace(names), "all") {
		return sim.RunAll(jobs, quantum)
	}

	var results []*schedulers.Result
	for _, name := range strings.Split(names, ",") {
		alg, err := schedulers.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		result, err := sim.Run(alg, jobs, quantum)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (a *app) storeRuns(cmd *cobra.Command, dbPath string, summary []responses.ScheduleResponse) error {
	st, err := openStore(cmd.Context(), dbPath, a.logger)
	if err != nil {
		return err
	}
	defer st.Close()

	now := time.Now()
	for _, resp := range summary {
		run := store.NewRun(resp, now)
		if err := st.CreateRun(cmd.Context(), run); err != nil {
			return fmt.Errorf("store run: %w", err)
		}
		a.logger.Info("run stored", "id", run.ID, "algorithm", run.Algorithm)
	}
	return nil
}
