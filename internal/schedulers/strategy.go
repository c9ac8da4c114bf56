package schedulers

import (
	"fmt"
	"strings"

	"os-scheduler/internal/core"
)

type Algorithm string

const (
	FirstComeFirstServe       Algorithm = "fcfs"
	LongestJobFirst           Algorithm = "ljf"
	RoundRobin                Algorithm = "rr"
	HighestResponseRatioNext  Algorithm = "hrrn"
	LongestRemainingTimeFirst Algorithm = "lrtf"
)

const DefaultTimeQuantum = 4

// Label is the upper-case short name used in reports.
func (a Algorithm) Label() string {
	return strings.ToUpper(string(a))
}

// Algorithms lists every supported policy in report order.
func Algorithms() []Algorithm {
	return []Algorithm{
		FirstComeFirstServe,
		LongestJobFirst,
		RoundRobin,
		HighestResponseRatioNext,
		LongestRemainingTimeFirst,
	}
}

func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Algorithms() {
		if alg == known {
			return alg, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Strategy is the ready set of one policy. The dispatch loop pushes arrived
// jobs, asks for the next job and its slice, and pushes preempted jobs back.
type Strategy interface {
	Algorithm() Algorithm
	// Preemptive strategies may return a slice shorter than the remaining
	// time; their waiting time accumulates across dispatches.
	Preemptive() bool
	Push(p *core.Process)
	// Next removes the job to run at clock t and returns how long to run it.
	Next(t int) (*core.Process, int)
	Len() int
}

// NewStrategy builds an empty ready set for alg. timeQuantum is only read by
// Round-Robin.
func NewStrategy(alg Algorithm, timeQuantum int) (Strategy, error) {
	switch alg {
	case FirstComeFirstServe:
		return newFirstComeFirstServe(), nil
	case LongestJobFirst:
		return newLongestJobFirst(), nil
	case RoundRobin:
		if timeQuantum <= 0 {
			return nil, fmt.Errorf("%w (got %d)", ErrInvalidTimeQuantum, timeQuantum)
		}
		return newRoundRobin(timeQuantum), nil
	case HighestResponseRatioNext:
		return newHighestResponseRatioNext(), nil
	case LongestRemainingTimeFirst:
		return newLongestRemainingTimeFirst(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}
