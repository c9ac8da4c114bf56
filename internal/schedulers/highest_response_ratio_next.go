package schedulers

import (
	"math/bits"

	"os-scheduler/internal/core"
)

// highestResponseRatioNext re-ranks every ready job at each decision by
// (t - arrival + burst) / burst and runs the best one to completion.
// Ties go to the job that became ready first.
type highestResponseRatioNext struct {
	ready []*core.Process
}

func newHighestResponseRatioNext() *highestResponseRatioNext {
	return &highestResponseRatioNext{ready: make([]*core.Process, 0)}
}

func (s *highestResponseRatioNext) Algorithm() Algorithm { return HighestResponseRatioNext }
func (s *highestResponseRatioNext) Preemptive() bool     { return false }
func (s *highestResponseRatioNext) Len() int             { return len(s.ready) }

func (s *highestResponseRatioNext) Push(p *core.Process) {
	s.ready = append(s.ready, p)
}

func (s *highestResponseRatioNext) Next(t int) (*core.Process, int) {
	best := 0
	for i, p := range s.ready {
		p.ResponseRatio = ResponseRatio(p, t)
		if i > 0 && ratioGreater(p, s.ready[best], t) {
			best = i
		}
	}
	p := s.ready[best]
	s.ready = append(s.ready[:best], s.ready[best+1:]...)
	return p, p.RemainingTime
}

// ResponseRatio is (waited + burst) / burst at clock t.
func ResponseRatio(p *core.Process, t int) float64 {
	return float64(t-p.ArrivalTime+p.BurstTime) / float64(p.BurstTime)
}

// ratioGreater compares response ratios exactly by cross-multiplying in 128
// bits. Every operand is positive once a job is ready.
func ratioGreater(a, b *core.Process, t int) bool {
	aHi, aLo := bits.Mul64(uint64(t-a.ArrivalTime+a.BurstTime), uint64(b.BurstTime))
	bHi, bLo := bits.Mul64(uint64(t-b.ArrivalTime+b.BurstTime), uint64(a.BurstTime))
	if aHi != bHi {
		return aHi > bHi
	}
	return aLo > bLo
}
