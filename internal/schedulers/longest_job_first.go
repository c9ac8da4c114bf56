package schedulers

import (
	"container/heap"

	"os-scheduler/internal/core"
)

type longestEntry struct {
	process *core.Process
	seq     int
}

// longestQueue is a max-heap on key. Equal keys pop in push order, which is
// arrival order because the dispatch loop pushes arrivals as they come.
type longestQueue struct {
	entries []longestEntry
	key     func(*core.Process) int
	seq     int
}

func (q *longestQueue) Len() int { return len(q.entries) }

func (q *longestQueue) Less(i, j int) bool {
	ki, kj := q.key(q.entries[i].process), q.key(q.entries[j].process)
	if ki != kj {
		return ki > kj
	}
	return q.entries[i].seq < q.entries[j].seq
}

func (q *longestQueue) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
}

func (q *longestQueue) Push(x any) {
	q.entries = append(q.entries, x.(longestEntry))
}

func (q *longestQueue) Pop() any {
	old := q.entries
	n := len(old)
	item := old[n-1]
	old[n-1] = longestEntry{}
	q.entries = old[:n-1]
	return item
}

func (q *longestQueue) add(p *core.Process) {
	heap.Push(q, longestEntry{process: p, seq: q.seq})
	q.seq++
}

func (q *longestQueue) take() *core.Process {
	return heap.Pop(q).(longestEntry).process
}

// longestJobFirst runs the ready job with the largest burst time to completion.
type longestJobFirst struct {
	ready *longestQueue
}

func newLongestJobFirst() *longestJobFirst {
	return &longestJobFirst{ready: &longestQueue{
		key: func(p *core.Process) int { return p.BurstTime },
	}}
}

func (s *longestJobFirst) Algorithm() Algorithm { return LongestJobFirst }
func (s *longestJobFirst) Preemptive() bool     { return false }
func (s *longestJobFirst) Len() int             { return s.ready.Len() }
func (s *longestJobFirst) Push(p *core.Process) { s.ready.add(p) }

func (s *longestJobFirst) Next(int) (*core.Process, int) {
	p := s.ready.take()
	return p, p.RemainingTime
}
