package util

import (
	"errors"
	"testing"

	"os-scheduler/internal/core"
)

func completed(id string, waiting, turnaround int) *core.Process {
	p := core.NewProcess(id, 0, turnaround-waiting, 1)
	p.WaitingTime = waiting
	p.TurnaroundTime = turnaround
	p.Completed = true
	return p
}

func TestCalculateAverage(t *testing.T) {
	ps := []*core.Process{completed("A", 0, 5), completed("B", 4, 7)}

	w, ta, err := CalculateAverage(ps)
	if err != nil {
		t.Fatalf("CalculateAverage: %v", err)
	}
	if w != 2 {
		t.Errorf("average waiting = %v, want 2", w)
	}
	if ta != 6 {
		t.Errorf("average turnaround = %v, want 6", ta)
	}
}

func TestCalculateAverageEmpty(t *testing.T) {
	_, _, err := CalculateAverage(nil)
	if !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("got %v, want ErrEmptyBatch", err)
	}
}
