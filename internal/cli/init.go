package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/readykit/internal/paths"
)

func newInitCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config file and initialize storage",
		Long: `Create the configuration directory with a default config.yaml, then
open the configured backend once so its data directory or schema exists.
Running init again is harmless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := r.open(cmd)
			if err != nil {
				return err
			}
			if err := a.Close(); err != nil {
				return sysErr(fmt.Errorf("close store: %w", err))
			}

			if r.flags.jsonMode {
				return printJSON(cmd, map[string]string{
					"config":  filepath.Join(r.configDir, paths.ConfigFileName),
					"backend": r.cfg.Store.Backend,
					"data":    r.cfg.Store.DataDir,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config:  %s\n", filepath.Join(r.configDir, paths.ConfigFileName))
			fmt.Fprintf(out, "Backend: %s\n", r.cfg.Store.Backend)
			fmt.Fprintf(out, "Data:    %s\n", r.cfg.Store.DataDir)
			fmt.Fprintln(out, "readykit initialized")
			return nil
		},
	}
}
