package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

// buildCommit is set at link time by the build target.
var buildCommit string

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the readykit version",
		Args:  cobra.NoArgs,
		// Skip config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			if buildCommit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "readykit %s (%s)\n", types.AppVersion, buildCommit)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), "readykit", types.AppVersion)
		},
	}
}
