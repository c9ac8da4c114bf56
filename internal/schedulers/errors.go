package schedulers

import (
	"errors"

	"os-scheduler/internal/core"
	"os-scheduler/internal/util"
)

var (
	ErrUnknownAlgorithm   = errors.New("unknown scheduling algorithm")
	ErrInvalidTimeQuantum = errors.New("time quantum must be > 0")
)

// IsInvalidInput reports whether err was caused by a rejected job batch or
// policy configuration rather than by the simulator itself.
func IsInvalidInput(err error) bool {
	for _, target := range []error{
		core.ErrEmptyJobID,
		core.ErrDuplicateJobID,
		core.ErrInvalidArrivalTime,
		core.ErrInvalidBurstTime,
		util.ErrEmptyBatch,
		ErrUnknownAlgorithm,
		ErrInvalidTimeQuantum,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
