package schedulers

import (
	"fmt"
	"log/slog"
	"sync"

	"os-scheduler/internal/core"
)

// Result is the outcome of one policy over one batch.
type Result struct {
	Algorithm   Algorithm
	TimeQuantum int // zero unless Algorithm is RoundRobin
	Completed   []*core.Process
	Timeline    []core.Slice
	Metric      core.CpuMetric
}

// Simulator runs job batches through the dispatch loop.
type Simulator struct {
	logger *slog.Logger
}

func NewSimulator(logger *slog.Logger) *Simulator {
	return &Simulator{logger: logger.With("component", "simulator")}
}

// Run validates jobs, then simulates them under alg on a private copy of the
// batch. The caller's jobs are never modified.
func (s *Simulator) Run(alg Algorithm, jobs []*core.Process, timeQuantum int) (*Result, error) {
	strategy, err := NewStrategy(alg, timeQuantum)
	if err != nil {
		return nil, err
	}
	if err := core.ValidateBatch(jobs); err != nil {
		return nil, fmt.Errorf("%s: %w", alg.Label(), err)
	}

	result := s.dispatch(strategy, core.CopyBatch(jobs))
	if alg == RoundRobin {
		result.TimeQuantum = timeQuantum
	}
	s.logger.Info("simulation finished",
		"algorithm", alg.Label(),
		"jobs", len(result.Completed),
		"total_time", result.Metric.TotalTime,
		"idle_time", result.Metric.IdleTime)
	return result, nil
}

// RunAll simulates every algorithm over the same logical batch. Each run
// gets its own copy of jobs, so the runs execute concurrently without sharing
// any Process. Results follow Algorithms() order.
func (s *Simulator) RunAll(jobs []*core.Process, timeQuantum int) ([]*Result, error) {
	if timeQuantum <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidTimeQuantum, timeQuantum)
	}
	if err := core.ValidateBatch(jobs); err != nil {
		return nil, err
	}

	algorithms := Algorithms()
	results := make([]*Result, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, alg := range algorithms {
		go func(i int, alg Algorithm) {
			defer wg.Done()
			results[i], errs[i] = s.Run(alg, jobs, timeQuantum)
		}(i, alg)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// dispatch advances a single clock until every job has completed. New
// arrivals always enter the ready set before a preempted job is pushed back.
func (s *Simulator) dispatch(strategy Strategy, jobs []*core.Process) *Result {
	feed := core.NewArrivalFeed(jobs)
	cpu := core.NewCPU()
	done := make([]*core.Process, 0, len(jobs))

	admit := func() {
		for _, p := range feed.Arrived(cpu.Clock) {
			strategy.Push(p)
		}
	}

	for feed.Len() > 0 || strategy.Len() > 0 {
		admit()
		if strategy.Len() == 0 {
			// nothing ready: skip the gap up to the next arrival
			next, _ := feed.NextArrival()
			cpu.IdleUntil(next)
			continue
		}

		p, slice := strategy.Next(cpu.Clock)
		cpu.IdleUntil(p.ArrivalTime)

		if strategy.Preemptive() {
			p.WaitingTime += cpu.Clock - p.LastExecutedTime
		} else {
			p.WaitingTime = cpu.Clock - p.ArrivalTime
		}
		s.logger.Debug("dispatch", "job", p.ID, "start", cpu.Clock, "slice", slice)

		cpu.Execute(p, slice)
		p.LastExecutedTime = cpu.Clock

		if p.RemainingTime == 0 {
			complete(p, cpu.Clock)
			s.logger.Debug("job finished", "job", p.ID, "time", cpu.Clock,
				"waiting", p.WaitingTime, "turnaround", p.TurnaroundTime)
			done = append(done, p)
			continue
		}
		admit()
		strategy.Push(p)
	}

	return &Result{
		Algorithm: strategy.Algorithm(),
		Completed: done,
		Timeline:  cpu.Timeline,
		Metric:    cpu.Metric,
	}
}

func complete(p *core.Process, t int) {
	p.TurnaroundTime = t - p.ArrivalTime
	p.Completed = true
	if p.TurnaroundTime != p.WaitingTime+p.BurstTime {
		panic(fmt.Sprintf("dispatch: %s finished with turnaround %d != waiting %d + burst %d",
			p.ID, p.TurnaroundTime, p.WaitingTime, p.BurstTime))
	}
}
