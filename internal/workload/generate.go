package workload

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"os-scheduler/internal/core"
)

var ErrInvalidConfig = errors.New("invalid workload config")

// Config bounds the synthetic workload. Ranges are inclusive.
type Config struct {
	Count       int
	BurstMin    int
	BurstMax    int
	PriorityMin int
	PriorityMax int
	Emergency   bool
}

func DefaultConfig() Config {
	return Config{
		Count:       30,
		BurstMin:    2,
		BurstMax:    8,
		PriorityMin: 1,
		PriorityMax: 5,
		Emergency:   true,
	}
}

// MaxCount caps the number of generated jobs.
const MaxCount = 100_000

// Emergency job appended after the generated ones.
const (
	emergencyArrival  = 15
	emergencyBurst    = 2
	emergencyPriority = 1
)

func (c Config) Validate() error {
	switch {
	case c.Count < 0 || c.Count > MaxCount:
		return fmt.Errorf("%w: count %d", ErrInvalidConfig, c.Count)
	case c.BurstMin <= 0 || c.BurstMax < c.BurstMin:
		return fmt.Errorf("%w: burst range [%d, %d]", ErrInvalidConfig, c.BurstMin, c.BurstMax)
	case c.PriorityMax < c.PriorityMin:
		return fmt.Errorf("%w: priority range [%d, %d]", ErrInvalidConfig, c.PriorityMin, c.PriorityMax)
	}
	return nil
}

// Generate creates jobs P1..Pn arriving one time unit apart with random burst
// time and priority, plus the emergency job P(n+1) when enabled.
func Generate(cfg Config, rng *rand.Rand) ([]*core.Process, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	jobs := make([]*core.Process, 0, cfg.Count+1)
	for i := 1; i <= cfg.Count; i++ {
		burst := cfg.BurstMin + rng.IntN(cfg.BurstMax-cfg.BurstMin+1)
		priority := cfg.PriorityMin + rng.IntN(cfg.PriorityMax-cfg.PriorityMin+1)
		jobs = append(jobs, core.NewProcess(fmt.Sprintf("P%d", i), i-1, burst, priority))
	}
	if cfg.Emergency {
		id := fmt.Sprintf("P%d", cfg.Count+1)
		jobs = append(jobs, core.NewProcess(id, emergencyArrival, emergencyBurst, emergencyPriority))
	}
	return jobs, nil
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
