package core

import "testing"

func ids(ps []*Process) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestArrivalFeed(t *testing.T) {
	jobs := []*Process{
		NewProcess("C", 4, 1, 1),
		NewProcess("A", 0, 1, 1),
		NewProcess("B1", 2, 1, 1),
		NewProcess("B2", 2, 1, 1),
	}
	feed := NewArrivalFeed(jobs)

	if got := feed.Arrived(0); len(got) != 1 || got[0].ID != "A" {
		t.Fatalf("Arrived(0) = %v, want [A]", ids(got))
	}
	if got := feed.Arrived(1); got != nil {
		t.Fatalf("Arrived(1) = %v, want none", ids(got))
	}
	next, ok := feed.NextArrival()
	if !ok || next != 2 {
		t.Fatalf("NextArrival = %d,%v, want 2,true", next, ok)
	}
	got := feed.Arrived(3)
	if len(got) != 2 || got[0].ID != "B1" || got[1].ID != "B2" {
		t.Fatalf("Arrived(3) = %v, want [B1 B2]", ids(got))
	}
	if got := feed.Arrived(3); got != nil {
		t.Fatalf("second Arrived(3) = %v, want none", ids(got))
	}
	if feed.Len() != 1 {
		t.Fatalf("Len = %d, want 1", feed.Len())
	}
	if got := feed.Arrived(100); len(got) != 1 || got[0].ID != "C" {
		t.Fatalf("Arrived(100) = %v, want [C]", ids(got))
	}
	if _, ok := feed.NextArrival(); ok {
		t.Error("NextArrival on empty feed reported ok")
	}
}

func TestArrivalFeedDoesNotReorderInput(t *testing.T) {
	jobs := []*Process{NewProcess("B", 3, 1, 1), NewProcess("A", 0, 1, 1)}
	NewArrivalFeed(jobs)
	if jobs[0].ID != "B" {
		t.Error("NewArrivalFeed reordered the caller's slice")
	}
}

func TestCPU(t *testing.T) {
	cpu := NewCPU()
	p := NewProcess("P1", 3, 4, 1)

	cpu.IdleUntil(3)
	cpu.Execute(p, 3)
	cpu.IdleUntil(2) // no-op, the clock never moves back

	if cpu.Clock != 6 {
		t.Errorf("Clock = %d, want 6", cpu.Clock)
	}
	if p.RemainingTime != 1 {
		t.Errorf("RemainingTime = %d, want 1", p.RemainingTime)
	}
	want := CpuMetric{TotalTime: 6, UtilizationTime: 3, IdleTime: 3}
	if cpu.Metric != want {
		t.Errorf("Metric = %+v, want %+v", cpu.Metric, want)
	}
	if len(cpu.Timeline) != 1 || cpu.Timeline[0] != (Slice{JobID: "P1", Start: 3, End: 6}) {
		t.Errorf("Timeline = %+v", cpu.Timeline)
	}
	if u := cpu.Metric.Utilization(); u != 0.5 {
		t.Errorf("Utilization = %v, want 0.5", u)
	}
}

func TestCPUExecuteRejectsOverrun(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a slice longer than the remaining time")
		}
	}()
	NewCPU().Execute(NewProcess("P1", 0, 2, 1), 3)
}

func TestCpuMetricEmpty(t *testing.T) {
	var m CpuMetric
	if m.Utilization() != 0 || m.Throughput(3) != 0 {
		t.Error("empty metric should report zero utilization and throughput")
	}
}
