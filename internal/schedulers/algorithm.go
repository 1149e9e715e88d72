package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

type Algorithm string

const (
	FCFS             Algorithm = "FCFS"
	SJFNonPreemptive Algorithm = "SJF-Non-Preemptive"
	SJFPreemptive    Algorithm = "SJF-Preemptive"
	SRJF             Algorithm = "SRJF"
)

var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

type scheduleFunc func(processes []core.Process) responses.ScheduleResponse

var algorithms = map[Algorithm]scheduleFunc{
	FCFS:             ScheduleFirstComeFirstServe,
	SJFNonPreemptive: ScheduleShortestJobFirst,
	SJFPreemptive:    ScheduleShortestJobFirstPreemptive,
	SRJF:             ScheduleShortestRemainingJobFirst,
}

var algorithmOrder = []Algorithm{FCFS, SJFNonPreemptive, SJFPreemptive, SRJF}

// Algorithms lists every supported discipline in a stable order.
func Algorithms() []Algorithm {
	names := make([]Algorithm, len(algorithmOrder))
	copy(names, algorithmOrder)
	return names
}

func ParseAlgorithm(name string) (Algorithm, error) {
	algorithm := Algorithm(name)
	if _, ok := algorithms[algorithm]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return algorithm, nil
}

// Schedule runs one discipline. Callers are expected to have validated the process list.
func Schedule(algorithm Algorithm, processes []core.Process) (responses.ScheduleResponse, error) {
	schedule, ok := algorithms[algorithm]
	if !ok {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	return schedule(processes), nil
}

// ScheduleAll runs every discipline. SRJF and SJF-Preemptive are the same discipline,
// so it is computed once and both entries share the result.
func ScheduleAll(processes []core.Process) map[Algorithm]responses.ScheduleResponse {
	results := make(map[Algorithm]responses.ScheduleResponse, len(algorithmOrder))
	for _, algorithm := range algorithmOrder {
		if algorithm == SRJF {
			continue
		}
		results[algorithm] = algorithms[algorithm](processes)
	}
	results[SRJF] = results[SJFPreemptive]
	return results
}
