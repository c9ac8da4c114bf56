package core

import "fmt"

// Slice is one contiguous stretch of CPU time given to a job.
type Slice struct {
	JobID string
	Start int
	End   int
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is the busy share of the total time, 0 for an empty run.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed jobs per time unit, 0 for an empty run.
func (m CpuMetric) Throughput(jobCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(jobCount) / float64(m.TotalTime)
}

// CPU is the single logical processor of a run. Execution is an instant
// advance of Clock.
type CPU struct {
	Clock    int
	Timeline []Slice
	Metric   CpuMetric
}

func NewCPU() *CPU {
	return &CPU{Timeline: make([]Slice, 0)}
}

// IdleUntil moves the clock forward to t without running anything.
func (c *CPU) IdleUntil(t int) {
	if t <= c.Clock {
		return
	}
	c.Metric.IdleTime += t - c.Clock
	c.Clock = t
	c.Metric.TotalTime = c.Clock
}

// Execute runs p for slice time units starting at the current clock.
func (c *CPU) Execute(p *Process, slice int) {
	if slice <= 0 || slice > p.RemainingTime {
		panic(fmt.Sprintf("cpu: invalid slice %d for %s with %d remaining", slice, p.ID, p.RemainingTime))
	}
	start := c.Clock
	c.Clock += slice
	p.RemainingTime -= slice
	c.Metric.UtilizationTime += slice
	c.Metric.TotalTime = c.Clock
	c.Timeline = append(c.Timeline, Slice{JobID: p.ID, Start: start, End: c.Clock})
}
