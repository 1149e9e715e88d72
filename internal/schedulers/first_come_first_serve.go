package schedulers

import (
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

func ScheduleFirstComeFirstServe(processes []core.Process) responses.ScheduleResponse {
	jobs := sortByArrival(processes)

	cpu := core.NewCpu()
	processDetails := make([]responses.ProcessResponse, 0, len(jobs))
	for _, job := range jobs {
		cpu.IdleUntil(job.ArrivalTime)
		start := cpu.Now()
		end := cpu.Execute(job.ID, job.BurstTime)
		processDetails = append(processDetails, generateProcessDetails(job, start, end))
	}

	return generateResponse(processDetails, cpu)
}
