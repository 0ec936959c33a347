// Command calctl exercises the extractor and the recurrence expander offline
// and authorizes the Google Calendar mirror.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "calctl",
		Short:         "Household calendar extraction tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newExtractCmd(), newExpandCmd(), newGCalAuthCmd())
	return root
}
