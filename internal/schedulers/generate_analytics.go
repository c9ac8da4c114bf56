package schedulers

import (
	"fmt"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

// GenerateResponse reduces a run to per-job details and aggregate metrics.
// It fails with util.ErrEmptyBatch when the run completed no jobs.
func GenerateResponse(result *Result) (responses.ScheduleResponse, error) {
	averageWaitingTime, averageTurnAroundTime, err := util.CalculateAverage(result.Completed)
	if err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("%s: %w", result.Algorithm.Label(), err)
	}

	details := make([]responses.ProcessResponse, 0, len(result.Completed))
	for _, p := range result.Completed {
		details = append(details, generateProcessDetails(p))
	}
	timeline := make([]responses.SliceResponse, 0, len(result.Timeline))
	for _, s := range result.Timeline {
		timeline = append(timeline, responses.SliceResponse{ProcessId: s.JobID, Start: s.Start, End: s.End})
	}

	return responses.ScheduleResponse{
		Algorithm:             result.Algorithm.Label(),
		TimeQuantum:           result.TimeQuantum,
		TotalTime:             result.Metric.TotalTime,
		IdleTime:              result.Metric.IdleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        result.Metric.Utilization(),
		CpuThroughput:         result.Metric.Throughput(len(result.Completed)),
		Details:               details,
		Timeline:              timeline,
	}, nil
}

func generateProcessDetails(p *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		WaitingTime:    p.WaitingTime,
		TurnAroundTime: p.TurnaroundTime,
		CompletionTime: p.CompletionTime(),
	}
}
