package core

// ArrivalFeed hands out jobs as the clock reaches their arrival time.
type ArrivalFeed struct {
	pending []*Process
}

// NewArrivalFeed sorts a copy of the job slice by arrival time (stable).
func NewArrivalFeed(jobs []*Process) *ArrivalFeed {
	pending := make([]*Process, len(jobs))
	copy(pending, jobs)
	SortByArrival(pending)
	return &ArrivalFeed{pending: pending}
}

// Arrived removes and returns every pending job with ArrivalTime <= t, in
// arrival order. A job is returned at most once.
func (f *ArrivalFeed) Arrived(t int) []*Process {
	n := 0
	for n < len(f.pending) && f.pending[n].ArrivalTime <= t {
		n++
	}
	if n == 0 {
		return nil
	}
	arrived := f.pending[:n:n]
	f.pending = f.pending[n:]
	return arrived
}

// NextArrival returns the arrival time of the earliest pending job.
func (f *ArrivalFeed) NextArrival() (int, bool) {
	if len(f.pending) == 0 {
		return 0, false
	}
	return f.pending[0].ArrivalTime, true
}

func (f *ArrivalFeed) Len() int {
	return len(f.pending)
}
