package schedulers

import "os-scheduler/internal/core"

// roundRobin rotates through the ready jobs, giving each at most one quantum
// per turn. Preempted jobs go to the back of the queue.
type roundRobin struct {
	queue       []*core.Process
	timeQuantum int
}

func newRoundRobin(timeQuantum int) *roundRobin {
	return &roundRobin{
		queue:       make([]*core.Process, 0),
		timeQuantum: timeQuantum,
	}
}

func (s *roundRobin) Algorithm() Algorithm { return RoundRobin }
func (s *roundRobin) Preemptive() bool     { return true }
func (s *roundRobin) Len() int             { return len(s.queue) }

func (s *roundRobin) Push(p *core.Process) {
	s.queue = append(s.queue, p)
}

func (s *roundRobin) Next(int) (*core.Process, int) {
	p := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return p, min(s.timeQuantum, p.RemainingTime)
}
