package util

import "cpu-scheduler-simulator/internal/responses"

// CalculateAverage returns the mean waiting and turnaround time. An empty list yields NaN.
func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageTurnaroundTime float64) {
	var waitingTimeSum float64
	var turnaroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += float64(process.WaitingTime)
		turnaroundTimeSum += float64(process.TurnaroundTime)
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = waitingTimeSum / processCount
	averageTurnaroundTime = turnaroundTimeSum / processCount
	return
}
