package util

import (
	"errors"

	"os-scheduler/internal/core"
)

var ErrEmptyBatch = errors.New("cannot average an empty batch")

// CalculateAverage returns the mean waiting and turnaround time of completed jobs.
func CalculateAverage(processes []*core.Process) (averageWaitingTime, averageTurnAroundTime float64, err error) {
	if len(processes) == 0 {
		return 0, 0, ErrEmptyBatch
	}

	var waitingTimeSum, turnAroundTimeSum int
	for _, p := range processes {
		waitingTimeSum += p.WaitingTime
		turnAroundTimeSum += p.TurnaroundTime
	}

	count := float64(len(processes))
	averageWaitingTime = float64(waitingTimeSum) / count
	averageTurnAroundTime = float64(turnAroundTimeSum) / count
	return
}
