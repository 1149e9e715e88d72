package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler-simulator/internal/schedulers"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported scheduling disciplines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, algorithm := range schedulers.Algorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), algorithm)
			}
			return nil
		},
	}
}
