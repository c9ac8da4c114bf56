package core

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyJobID         = errors.New("job id must not be empty")
	ErrDuplicateJobID     = errors.New("duplicate job id")
	ErrInvalidArrivalTime = errors.New("arrival time must be >= 0")
	ErrInvalidBurstTime   = errors.New("burst time must be > 0")
)

// Process is a single job of a simulation batch. A Process is owned by the
// run that operates on it; runs over the same logical jobs use CopyBatch.
type Process struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	Priority    int // lower is more urgent, carried but not used by the dispatch policies

	RemainingTime  int
	WaitingTime    int
	TurnaroundTime int
	Completed      bool

	// scratch fields
	ResponseRatio    float64 // HRRN, valid only for the current selection
	LastExecutedTime int     // RR, clock value at which the job last left the CPU
}

func NewProcess(id string, arrivalTime, burstTime, priority int) *Process {
	return &Process{
		ID:               id,
		ArrivalTime:      arrivalTime,
		BurstTime:        burstTime,
		Priority:         priority,
		RemainingTime:    burstTime,
		LastExecutedTime: arrivalTime,
	}
}

// CompletionTime is the clock value at which the job finished, or -1 when it
// has not completed yet.
func (p *Process) CompletionTime() int {
	if !p.Completed {
		return -1
	}
	return p.ArrivalTime + p.TurnaroundTime
}

func (p *Process) String() string {
	return fmt.Sprintf("%s(arrival=%d, burst=%d)", p.ID, p.ArrivalTime, p.BurstTime)
}

// Validate reports whether the job can enter a simulation run.
func (p *Process) Validate() error {
	if p.ID == "" {
		return ErrEmptyJobID
	}
	if p.ArrivalTime < 0 {
		return fmt.Errorf("job %s: %w (got %d)", p.ID, ErrInvalidArrivalTime, p.ArrivalTime)
	}
	if p.BurstTime <= 0 {
		return fmt.Errorf("job %s: %w (got %d)", p.ID, ErrInvalidBurstTime, p.BurstTime)
	}
	return nil
}

// ValidateBatch validates every job and rejects duplicate ids.
func ValidateBatch(jobs []*Process) error {
	seen := make(map[string]struct{}, len(jobs))
	for _, p := range jobs {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("job %s: %w", p.ID, ErrDuplicateJobID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// CopyBatch returns fresh, independent copies of jobs with all bookkeeping
// fields reset. Mutating the result never affects the input.
func CopyBatch(jobs []*Process) []*Process {
	out := make([]*Process, 0, len(jobs))
	for _, p := range jobs {
		out = append(out, NewProcess(p.ID, p.ArrivalTime, p.BurstTime, p.Priority))
	}
	return out
}

// SortByArrival orders jobs by arrival time, keeping input order for ties.
func SortByArrival(jobs []*Process) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})
}
