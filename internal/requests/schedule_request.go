package requests

import "os-scheduler/internal/core"

type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum overrides the configured Round-Robin quantum when > 0.
	TimeQuantum int  `json:"time_quantum,omitempty"`
	Save        bool `json:"save,omitempty"`
}

// Processes converts the request jobs into fresh job records.
func (r *ScheduleRequests) Processes() []*core.Process {
	processes := make([]*core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority))
	}
	return processes
}

// FromProcesses is the inverse of Processes.
func FromProcesses(processes []*core.Process) []Job {
	jobs := make([]Job, 0, len(processes))
	for _, p := range processes {
		jobs = append(jobs, Job{
			ProcessId:   p.ID,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
		})
	}
	return jobs
}
