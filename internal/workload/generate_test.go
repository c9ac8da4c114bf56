package workload

import (
	"errors"
	"testing"
)

func TestGenerateDefault(t *testing.T) {
	cfg := DefaultConfig()
	jobs, err := Generate(cfg, NewRand(7))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(jobs) != 31 {
		t.Fatalf("got %d jobs, want 31", len(jobs))
	}
	for i, p := range jobs[:30] {
		if p.ArrivalTime != i {
			t.Errorf("%s arrival = %d, want %d", p.ID, p.ArrivalTime, i)
		}
		if p.BurstTime < cfg.BurstMin || p.BurstTime > cfg.BurstMax {
			t.Errorf("%s burst %d outside [%d, %d]", p.ID, p.BurstTime, cfg.BurstMin, cfg.BurstMax)
		}
		if p.Priority < cfg.PriorityMin || p.Priority > cfg.PriorityMax {
			t.Errorf("%s priority %d outside [%d, %d]", p.ID, p.Priority, cfg.PriorityMin, cfg.PriorityMax)
		}
		if p.RemainingTime != p.BurstTime {
			t.Errorf("%s remaining %d != burst %d", p.ID, p.RemainingTime, p.BurstTime)
		}
	}
	last := jobs[30]
	if last.ID != "P31" || last.ArrivalTime != 15 || last.BurstTime != 2 || last.Priority != 1 {
		t.Errorf("emergency job = %+v", last)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := Config{Count: 10, BurstMin: 1, BurstMax: 20, PriorityMin: 1, PriorityMax: 3}
	a, _ := Generate(cfg, NewRand(42))
	b, _ := Generate(cfg, NewRand(42))
	for i := range a {
		if a[i].BurstTime != b[i].BurstTime || a[i].Priority != b[i].Priority {
			t.Fatalf("job %d differs between runs with the same seed", i)
		}
	}
	if len(a) != 10 {
		t.Errorf("got %d jobs without emergency, want 10", len(a))
	}
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	for _, cfg := range []Config{
		{Count: -1, BurstMin: 1, BurstMax: 2},
		{Count: MaxCount + 1, BurstMin: 1, BurstMax: 2},
		{Count: 3, BurstMin: 0, BurstMax: 2},
		{Count: 3, BurstMin: 5, BurstMax: 2},
		{Count: 3, BurstMin: 1, BurstMax: 2, PriorityMin: 4, PriorityMax: 1},
	} {
		if _, err := Generate(cfg, NewRand(1)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Generate(%+v) err = %v, want ErrInvalidConfig", cfg, err)
		}
	}
}
