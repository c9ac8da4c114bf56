package workload

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"os-scheduler/internal/core"
)

func sampleJobs() []*core.Process {
	return []*core.Process{
		core.NewProcess("A", 0, 5, 2),
		core.NewProcess("B", 1, 3, 1),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleJobs()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "Process ID,Arrival Time,Burst Time,Priority\nA,0,5,2\nB,1,3,1\n"
	if buf.String() != want {
		t.Errorf("csv =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestReadCSVWithoutHeaderOrPriority(t *testing.T) {
	jobs, err := ReadCSV(strings.NewReader("P1, 0, 4\nP2, 3, 2, 5\n"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	if jobs[0].ID != "P1" || jobs[0].BurstTime != 4 || jobs[0].Priority != 0 {
		t.Errorf("first job = %+v", jobs[0])
	}
	if jobs[1].ArrivalTime != 3 || jobs[1].Priority != 5 {
		t.Errorf("second job = %+v", jobs[1])
	}
}

func TestReadCSVBadNumber(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("P1,zero,4\n")); err == nil {
		t.Fatal("expected an error for a non-numeric arrival time")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"jobs.csv", "jobs.yaml"} {
		path := filepath.Join(dir, name)
		if err := Save(path, sampleJobs()); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		jobs, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		if len(jobs) != 2 || jobs[1].ID != "B" || jobs[1].ArrivalTime != 1 || jobs[1].BurstTime != 3 || jobs[1].Priority != 1 {
			t.Errorf("%s: loaded %v", name, jobs)
		}
	}
}

func TestLoadUnsupported(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "jobs.txt")); err == nil {
		t.Fatal("expected an error")
	}
	if err := Save(filepath.Join(t.TempDir(), "jobs.txt"), nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Save err = %v, want ErrUnsupportedFormat", err)
	}
}
