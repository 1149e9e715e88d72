package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/responses"
)

func renderSchedule(w io.Writer, title string, response responses.ScheduleResponse) {
	outputTitle(w, title)
	outputGantt(w, response.Timeline)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, timeline []core.ExecutionSlice) {
	gantt := withIdle(timeline)

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		label := gantt[i].ProcessId
		if label == "" {
			label = "idle"
		}
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].End))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// withIdle fills gaps in the timeline with slices that have no process id.
func withIdle(timeline []core.ExecutionSlice) []core.ExecutionSlice {
	gantt := make([]core.ExecutionSlice, 0, len(timeline))
	previousEnd := 0
	for _, slice := range timeline {
		if slice.Start > previousEnd {
			gantt = append(gantt, core.ExecutionSlice{Start: previousEnd, End: slice.Start})
		}
		gantt = append(gantt, slice)
		previousEnd = slice.End
	}
	return gantt
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	rows := make([][]string, len(response.Result))
	for i, p := range response.Result {
		rows[i] = []string{
			p.ID,
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.Start),
			fmt.Sprint(p.End),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Exit", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AvgTurnaroundTime)})
	table.Render()

	_, _ = fmt.Fprintf(w, "Utilization %.2f%%  Throughput %.2f/t  Idle %d\n\n",
		response.CpuUtilization*100, response.CpuThroughput, response.IdleTime)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
