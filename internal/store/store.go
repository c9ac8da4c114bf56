package store

import (
	"time"

	"github.com/google/uuid"

	"os-scheduler/internal/responses"
)

// Run is one stored simulation result.
type Run struct {
	ID                    string    `json:"id"`
	Algorithm             string    `json:"algorithm"`
	TimeQuantum           int       `json:"time_quantum,omitempty"`
	JobCount              int       `json:"job_count"`
	AverageWaitingTime    float64   `json:"average_waiting_time"`
	AverageTurnAroundTime float64   `json:"average_turn_around_time"`
	TotalTime             int       `json:"total_time"`
	IdleTime              int       `json:"idle_time"`
	CreatedAt             time.Time `json:"created_at"`
	Jobs                  []RunJob  `json:"jobs,omitempty"`
}

type RunJob struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
}

// NewRun builds a Run with a fresh id from a schedule response.
func NewRun(resp responses.ScheduleResponse, now time.Time) *Run {
	run := &Run{
		ID:                    "run_" + uuid.NewString(),
		Algorithm:             resp.Algorithm,
		TimeQuantum:           resp.TimeQuantum,
		JobCount:              len(resp.Details),
		AverageWaitingTime:    resp.AverageWaitingTime,
		AverageTurnAroundTime: resp.AverageTurnAroundTime,
		TotalTime:             resp.TotalTime,
		IdleTime:              resp.IdleTime,
		CreatedAt:             now.UTC(),
		Jobs:                  make([]RunJob, 0, len(resp.Details)),
	}
	for _, d := range resp.Details {
		run.Jobs = append(run.Jobs, RunJob{
			ProcessId:      d.ProcessId,
			ArrivalTime:    d.ArrivalTime,
			BurstTime:      d.BurstTime,
			Priority:       d.Priority,
			WaitingTime:    d.WaitingTime,
			TurnAroundTime: d.TurnAroundTime,
		})
	}
	return run
}
