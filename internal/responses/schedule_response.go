package responses

import "cpu-scheduler-simulator/internal/core"

type ProcessResponse struct {
	core.Process
	Start          int `json:"start"`
	End            int `json:"end"`
	WaitingTime    int `json:"waitingTime"`
	TurnaroundTime int `json:"turnaroundTime"`
}

// ScheduleResponse is the result of one simulation. Result is in completion order.
type ScheduleResponse struct {
	Result            []ProcessResponse     `json:"result"`
	AvgWaitingTime    float64               `json:"avgWaitingTime"`
	AvgTurnaroundTime float64               `json:"avgTurnaroundTime"`
	TotalTime         int                   `json:"totalTime"`
	IdleTime          int                   `json:"idleTime"`
	CpuUtilization    float64               `json:"cpuUtilization"`
	CpuThroughput     float64               `json:"cpuThroughput"`
	Timeline          []core.ExecutionSlice `json:"timeline"`
}

type AllAlgorithmsResponse struct {
	Results map[string]ScheduleResponse `json:"results"`
}

type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
}

type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
	RequestId  string `json:"requestId,omitempty"`
}
