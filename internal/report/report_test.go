package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/store"
)

func sample() responses.ScheduleResponse {
	return responses.ScheduleResponse{
		Algorithm:             "FCFS",
		TotalTime:             8,
		AverageWaitingTime:    2,
		AverageTurnAroundTime: 6,
		CpuThroughput:         0.25,
		Details: []responses.ProcessResponse{
			{ProcessId: "A", BurstTime: 5, WaitingTime: 0, TurnAroundTime: 5, CompletionTime: 5},
			{ProcessId: "B", ArrivalTime: 1, BurstTime: 3, WaitingTime: 4, TurnAroundTime: 7, CompletionTime: 8},
		},
		Timeline: []responses.SliceResponse{
			{ProcessId: "A", Start: 0, End: 5},
			{ProcessId: "B", Start: 5, End: 8},
		},
	}
}

func TestGantt(t *testing.T) {
	tests := []struct {
		name     string
		timeline []responses.SliceResponse
		want     string
	}{
		{"empty", nil, "(empty gantt)"},
		{"busy", sample().Timeline, "|0 A 5|5 B 8|"},
		{"idle gap", []responses.SliceResponse{{ProcessId: "A", Start: 3, End: 5}}, "|0 -- 3|3 A 5|"},
	}
	for _, tt := range tests {
		if got := Gantt(tt.timeline); got != tt.want {
			t.Errorf("%s: Gantt = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestWriteSchedule(t *testing.T) {
	var buf bytes.Buffer
	resp := sample()
	WriteSchedule(&buf, resp)

	out := buf.String()
	for _, want := range []string{"FCFS", "|0 A 5|5 B 8|", "TURNAROUND", "2.00", "6.00", "0.25"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	resp.Algorithm, resp.TimeQuantum = "RR", 4
	WriteSchedule(&buf, resp)
	if !strings.Contains(buf.String(), "RR (time quantum 4)") {
		t.Errorf("missing quantum in title:\n%s", buf.String())
	}
}

func TestWriteWorkload(t *testing.T) {
	var buf bytes.Buffer
	WriteWorkload(&buf, []*core.Process{core.NewProcess("P1", 0, 4, 3)})
	if !strings.Contains(buf.String(), "Workload (1 processes)") || !strings.Contains(buf.String(), "P1") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestSaveSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")
	if err := SaveSummary(path, []responses.ScheduleResponse{sample()}); err != nil {
		t.Fatalf("SaveSummary: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Scheduling algorithm performance summary:\n\n" +
		"FCFS average waiting time: 2.00\nFCFS average turnaround time: 6.00\n\n"
	if string(data) != want {
		t.Errorf("summary =\n%q\nwant\n%q", data, want)
	}
}

func TestWriteRuns(t *testing.T) {
	var buf bytes.Buffer
	WriteRuns(&buf, []*store.Run{
		{ID: "run_1", Algorithm: "RR", TimeQuantum: 4, JobCount: 2, AverageWaitingTime: 3, AverageTurnAroundTime: 7,
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		{ID: "run_2", Algorithm: "FCFS", JobCount: 2},
	})
	out := buf.String()
	for _, want := range []string{"run_1", "RR", "7.00", "2026-01-02T03:04:05Z", "run_2"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
