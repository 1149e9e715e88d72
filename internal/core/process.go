package core

// Process is one unit of work submitted to the simulator. It is never mutated by a scheduler.
type Process struct {
	ID          string `json:"id" yaml:"id"`
	ArrivalTime int    `json:"arrivalTime" yaml:"arrivalTime"`
	BurstTime   int    `json:"burstTime" yaml:"burstTime"`
}

type ProcessState int

const (
	Unarrived ProcessState = iota
	Ready
	Running
	Completed
)

func (s ProcessState) String() string {
	switch s {
	case Unarrived:
		return "unarrived"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Completed:
		return "completed"
	}
	return "unknown"
}
