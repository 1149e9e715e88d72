package requests

import (
	"errors"
	"fmt"
	"math"

	"cpu-scheduler-simulator/internal/core"
)

var (
	ErrEmptyProcessList   = errors.New("process list is empty")
	ErrInvalidProcess     = errors.New("invalid process")
	ErrDuplicateProcessID = errors.New("duplicate process id")
	ErrTooManyProcesses   = errors.New("too many processes")
	ErrWorkloadTooLarge   = errors.New("total burst time too large")
	ErrArrivalTooLate     = errors.New("arrival time too large")
)

type ScheduleRequest struct {
	Processes []core.Process `json:"processes" yaml:"processes"`
	Algorithm string         `json:"algorithm" yaml:"algorithm"`
}

// Limits bounds the size of a simulation. Zero disables a limit.
type Limits struct {
	MaxProcesses   int
	MaxTotalBurst  int
	MaxArrivalTime int
}

func (r *ScheduleRequest) Validate(limits Limits) error {
	return ValidateProcesses(r.Processes, limits)
}

// ValidateProcesses rejects input the schedulers are not defined for.
func ValidateProcesses(processes []core.Process, limits Limits) error {
	if len(processes) == 0 {
		return ErrEmptyProcessList
	}
	if limits.MaxProcesses > 0 && len(processes) > limits.MaxProcesses {
		return fmt.Errorf("%w: %d exceeds limit of %d", ErrTooManyProcesses, len(processes), limits.MaxProcesses)
	}

	seen := make(map[string]struct{}, len(processes))
	totalBurst := 0
	latestArrival := 0
	for i, process := range processes {
		if process.ID == "" {
			return fmt.Errorf("%w: process %d has an empty id", ErrInvalidProcess, i)
		}
		if _, ok := seen[process.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateProcessID, process.ID)
		}
		seen[process.ID] = struct{}{}

		if process.ArrivalTime < 0 {
			return fmt.Errorf("%w: %q has negative arrival time %d", ErrInvalidProcess, process.ID, process.ArrivalTime)
		}
		if process.BurstTime <= 0 {
			return fmt.Errorf("%w: %q has non-positive burst time %d", ErrInvalidProcess, process.ID, process.BurstTime)
		}
		if limits.MaxArrivalTime > 0 && process.ArrivalTime > limits.MaxArrivalTime {
			return fmt.Errorf("%w: %q arrives at %d, limit is %d", ErrArrivalTooLate, process.ID, process.ArrivalTime, limits.MaxArrivalTime)
		}
		latestArrival = max(latestArrival, process.ArrivalTime)

		if process.BurstTime > math.MaxInt-totalBurst {
			return fmt.Errorf("%w: overflows the simulation clock", ErrWorkloadTooLarge)
		}
		totalBurst += process.BurstTime
		if limits.MaxTotalBurst > 0 && totalBurst > limits.MaxTotalBurst {
			return fmt.Errorf("%w: exceeds limit of %d", ErrWorkloadTooLarge, limits.MaxTotalBurst)
		}
	}

	// no schedule can end later than the last arrival plus every burst
	if latestArrival > math.MaxInt-totalBurst {
		return fmt.Errorf("%w: last completion would overflow the simulation clock", ErrWorkloadTooLarge)
	}
	return nil
}
