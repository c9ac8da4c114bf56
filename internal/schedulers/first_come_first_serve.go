package schedulers

import "os-scheduler/internal/core"

// firstComeFirstServe runs jobs to completion in the order they became ready.
type firstComeFirstServe struct {
	queue []*core.Process
}

func newFirstComeFirstServe() *firstComeFirstServe {
	return &firstComeFirstServe{queue: make([]*core.Process, 0)}
}

func (s *firstComeFirstServe) Algorithm() Algorithm { return FirstComeFirstServe }
func (s *firstComeFirstServe) Preemptive() bool     { return false }
func (s *firstComeFirstServe) Len() int             { return len(s.queue) }

func (s *firstComeFirstServe) Push(p *core.Process) {
	s.queue = append(s.queue, p)
}

func (s *firstComeFirstServe) Next(int) (*core.Process, int) {
	p := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return p, p.RemainingTime
}
