package schedulers

import (
	"sort"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/util"
)

func generateResponse(processDetails []responses.ProcessResponse, cpu *core.Cpu) responses.ScheduleResponse {
	averageWaitingTime, averageTurnaroundTime := util.CalculateAverage(processDetails)

	metric := cpu.Metric()
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = 1 - float64(metric.IdleTime)/float64(metric.TotalTime)
		throughput = float64(len(processDetails)) / float64(metric.TotalTime)
	}

	return responses.ScheduleResponse{
		Result:            processDetails,
		AvgWaitingTime:    averageWaitingTime,
		AvgTurnaroundTime: averageTurnaroundTime,
		TotalTime:         metric.TotalTime,
		IdleTime:          metric.IdleTime,
		CpuUtilization:    utilization,
		CpuThroughput:     throughput,
		Timeline:          cpu.Timeline(),
	}
}

func generateProcessDetails(process core.Process, start, end int) responses.ProcessResponse {
	turnaroundTime := end - process.ArrivalTime
	return responses.ProcessResponse{
		Process:        process,
		Start:          start,
		End:            end,
		WaitingTime:    turnaroundTime - process.BurstTime,
		TurnaroundTime: turnaroundTime,
	}
}

// sortByArrival returns a stably sorted copy; ties keep input order.
func sortByArrival(processes []core.Process) []core.Process {
	jobs := make([]core.Process, len(processes))
	copy(jobs, processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})
	return jobs
}
