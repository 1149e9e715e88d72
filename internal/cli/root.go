package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/logging"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	logger *zap.Logger
	cfg    *config.SchedulerConfig
)

// NewRootCmd creates the root cobra command for the simulate CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate CPU scheduling disciplines",
		Long: "simulate computes start, completion, waiting and turnaround times for a process list\n" +
			"under FCFS, SJF (non-preemptive and preemptive) and SRJF scheduling.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadSchedulerConfig(flagConfig)
			if err != nil {
				return err
			}
			cfg = loaded
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default ./config.yaml)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newAlgorithmsCmd(),
	)

	return root
}
