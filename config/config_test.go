package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9095 || cfg.RoundRobinTimeQuantum != 4 {
		t.Errorf("port/quantum = %d/%d, want 9095/4", cfg.Port, cfg.RoundRobinTimeQuantum)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" || cfg.StorePath != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Workload.Count != 30 || cfg.Workload.BurstMin != 2 || cfg.Workload.BurstMax != 8 || !cfg.Workload.Emergency {
		t.Errorf("workload defaults = %+v", cfg.Workload)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	content := `port: 8081
scheduler:
  round_robin:
    time_quantum: 2
log:
  level: debug
store:
  path: runs.db
workload:
  count: 5
  emergency: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8081 || cfg.RoundRobinTimeQuantum != 2 || cfg.LogLevel != "debug" || cfg.StorePath != "runs.db" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Workload.Count != 5 || cfg.Workload.Emergency || cfg.Workload.BurstMax != 8 {
		t.Errorf("workload = %+v", cfg.Workload)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "6")
	t.Setenv("SCHED_PORT", "7000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RoundRobinTimeQuantum != 6 || cfg.Port != 7000 {
		t.Errorf("env override ignored: %+v", cfg)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
