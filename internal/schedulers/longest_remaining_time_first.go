package schedulers

import "os-scheduler/internal/core"

// longestRemainingTimeFirst picks the ready job with the most remaining time
// and runs it to completion. Jobs never re-enter the ready set part way
// through, so remaining time equals burst time at every selection and the
// resulting schedule is the same as longestJobFirst.
type longestRemainingTimeFirst struct {
	ready *longestQueue
}

func newLongestRemainingTimeFirst() *longestRemainingTimeFirst {
	return &longestRemainingTimeFirst{ready: &longestQueue{
		key: func(p *core.Process) int { return p.RemainingTime },
	}}
}

func (s *longestRemainingTimeFirst) Algorithm() Algorithm { return LongestRemainingTimeFirst }
func (s *longestRemainingTimeFirst) Preemptive() bool     { return false }
func (s *longestRemainingTimeFirst) Len() int             { return s.ready.Len() }
func (s *longestRemainingTimeFirst) Push(p *core.Process) { s.ready.add(p) }

func (s *longestRemainingTimeFirst) Next(int) (*core.Process, int) {
	p := s.ready.take()
	return p, p.RemainingTime
}
