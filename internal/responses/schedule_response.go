package responses

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	CompletionTime int    `json:"completion_time"`
}

type SliceResponse struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []SliceResponse   `json:"timeline"`
}

type ComparisonResponse struct {
	Results []ScheduleResponse `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
