package schedulers

import (
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

type remainingState struct {
	process       core.Process
	remainingTime int
	start         int
	started       bool
	state         core.ProcessState
}

// ScheduleShortestJobFirstPreemptive always runs the process with the shortest remaining
// time, so a newly arrived shorter process preempts the running one.
//
// The choice can only change when a process arrives or completes: the running process
// only gets shorter and every other candidate stays put. The clock therefore advances
// from event to event instead of one unit at a time.
func ScheduleShortestJobFirstPreemptive(processes []core.Process) responses.ScheduleResponse {
	jobs := sortByArrival(processes)
	states := make([]remainingState, len(jobs))
	for i, job := range jobs {
		states[i] = remainingState{process: job, remainingTime: job.BurstTime, state: core.Unarrived}
	}

	cpu := core.NewCpu()
	processDetails := make([]responses.ProcessResponse, 0, len(states))
	admitted := 0
	running := -1
	for len(processDetails) < len(states) {
		// states is in arrival order, so everything before the cursor has arrived
		for admitted < len(states) && states[admitted].process.ArrivalTime <= cpu.Now() {
			s := &states[admitted]
			admitted++
			if s.remainingTime <= 0 {
				s.state = core.Completed
				processDetails = append(processDetails, generateProcessDetails(s.process, cpu.Now(), cpu.Now()))
				continue
			}
			s.state = core.Ready
		}

		current := shortestRemaining(states[:admitted])
		if current == -1 {
			if admitted == len(states) {
				break
			}
			cpu.IdleUntil(states[admitted].process.ArrivalTime)
			continue
		}

		if running != -1 && running != current {
			states[running].state = core.Ready
		}
		s := &states[current]
		if !s.started {
			s.start = cpu.Now()
			s.started = true
		}
		s.state = core.Running
		running = current

		units := s.remainingTime
		if admitted < len(states) {
			units = min(units, states[admitted].process.ArrivalTime-cpu.Now())
		}
		s.remainingTime -= units
		cpu.Execute(s.process.ID, units)

		if s.remainingTime == 0 {
			s.state = core.Completed
			running = -1
			processDetails = append(processDetails, generateProcessDetails(s.process, s.start, cpu.Now()))
		}
	}

	return generateResponse(processDetails, cpu)
}

// ScheduleShortestRemainingJobFirst is the same discipline as ScheduleShortestJobFirstPreemptive.
func ScheduleShortestRemainingJobFirst(processes []core.Process) responses.ScheduleResponse {
	return ScheduleShortestJobFirstPreemptive(processes)
}

// shortestRemaining scans in arrival order and returns the first candidate with the
// smallest remaining time, or -1 when nothing can run.
func shortestRemaining(states []remainingState) int {
	shortest := -1
	for i := range states {
		s := states[i]
		if s.state != core.Ready && s.state != core.Running {
			continue
		}
		if shortest == -1 || s.remainingTime < states[shortest].remainingTime {
			shortest = i
		}
	}
	return shortest
}
