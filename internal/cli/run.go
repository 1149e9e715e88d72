package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/schedulers"
)

func newRunCmd() *cobra.Command {
	var (
		file      string
		algorithm string
		output    string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule a process list read from a csv, json or yaml file",
		Example: "  simulate run -f processes.csv -a SRJF\n" +
			"  simulate run -f processes.yaml --all -o json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "table" && output != "json" {
				return fmt.Errorf("unknown output format %q (want table or json)", output)
			}

			processes, err := LoadProcesses(file)
			if err != nil {
				return err
			}
			if err := requests.ValidateProcesses(processes, cfg.Limits()); err != nil {
				return err
			}
			logger.Debug("processes loaded", zap.String("file", file), zap.Int("count", len(processes)))

			selected := schedulers.Algorithms()
			results := make(map[string]responses.ScheduleResponse)
			if all {
				for name, response := range schedulers.ScheduleAll(processes) {
					results[string(name)] = response
				}
			} else {
				parsed, err := schedulers.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
				response, err := schedulers.Schedule(parsed, processes)
				if err != nil {
					return err
				}
				selected = []schedulers.Algorithm{parsed}
				results[string(parsed)] = response
			}
			for _, name := range selected {
				logger.Info("processes scheduled",
					zap.String("algorithm", string(name)),
					zap.Float64("avgWaitingTime", results[string(name)].AvgWaitingTime),
					zap.Float64("avgTurnaroundTime", results[string(name)].AvgTurnaroundTime),
				)
			}

			out := cmd.OutOrStdout()
			if output == "json" {
				if all {
					return writeJSON(out, responses.AllAlgorithmsResponse{Results: results})
				}
				return writeJSON(out, results[string(selected[0])])
			}
			for _, name := range selected {
				renderSchedule(out, string(name), results[string(name)])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Process file (.csv, .json, .yaml)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(schedulers.FCFS), "Scheduling discipline")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	cmd.Flags().BoolVar(&all, "all", false, "Run every discipline")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
