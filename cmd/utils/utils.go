package utils

import (
	"github.com/spf13/cobra"
)

// GetThreadsFlag returns the value of the --threads flag, clamped to at
// least 1.
func GetThreadsFlag(cmd *cobra.Command) int {
	threads, err := cmd.Flags().GetInt("threads")
	if err != nil || threads < 1 {
		return 1
	}
	return threads
}
