package schedulers

import (
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

// ScheduleShortestJobFirst is the non-preemptive variant: the shortest ready job runs to completion.
func ScheduleShortestJobFirst(processes []core.Process) responses.ScheduleResponse {
	pending := sortByArrival(processes)
	readyQueue := make([]core.Process, 0, len(pending))

	cpu := core.NewCpu()
	processDetails := make([]responses.ProcessResponse, 0, len(pending))
	for len(pending) > 0 || len(readyQueue) > 0 {
		for len(pending) > 0 && pending[0].ArrivalTime <= cpu.Now() {
			readyQueue = append(readyQueue, pending[0])
			pending = pending[1:]
		}

		if len(readyQueue) == 0 {
			// nothing ready, jump straight to the next arrival
			cpu.IdleUntil(pending[0].ArrivalTime)
			continue
		}

		next := shortestJob(readyQueue)
		job := readyQueue[next]
		readyQueue = append(readyQueue[:next], readyQueue[next+1:]...)

		start := cpu.Now()
		end := cpu.Execute(job.ID, job.BurstTime)
		processDetails = append(processDetails, generateProcessDetails(job, start, end))
	}

	return generateResponse(processDetails, cpu)
}

// shortestJob returns the index of the first job with the smallest burst time.
func shortestJob(readyQueue []core.Process) int {
	shortest := 0
	for i := 1; i < len(readyQueue); i++ {
		if readyQueue[i].BurstTime < readyQueue[shortest].BurstTime {
			shortest = i
		}
	}
	return shortest
}
