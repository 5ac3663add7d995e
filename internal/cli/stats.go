package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/readykit/internal/app"
	"github.com/mesh-intelligence/readykit/internal/repo"
	"github.com/mesh-intelligence/readykit/internal/transfer"
	"github.com/mesh-intelligence/readykit/internal/views"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

// statsReport is the JSON shape of the stats command.
type statsReport struct {
	Counts    transfer.Counts `json:"counts"`
	Checklist repo.Stats      `json:"checklist"`
	Storage   app.Usage       `json:"storage"`
	// Stored lists the keys holding saved data; the rest use defaults.
	Stored []string `json:"stored"`
}

func newStatsCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show data counts and storage usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, func(a *app.App) error {
				usage, err := a.StorageUsage(cmd.Context())
				if err != nil {
					return sysErr(fmt.Errorf("measure storage: %w", err))
				}
				rep := statsReport{
					Counts:    transfer.CountOf(transfer.Collect(a, r.now())),
					Checklist: a.Checklist.Stats(),
					Storage:   usage,
					Stored:    []string{},
				}
				for _, key := range types.StandardKeys {
					if a.Adapter().Has(key) {
						rep.Stored = append(rep.Stored, key)
					}
				}
				if r.flags.jsonMode {
					return printJSON(cmd, rep)
				}
				printCounts(cmd, rep.Counts)
				summary(cmd, "Checklist: %d of %d done (%d%%)", rep.Checklist.Completed, rep.Checklist.Total, rep.Checklist.Percent)
				if usage.Quota > 0 {
					summary(cmd, "Storage: %s of %s (%d%%)", views.FormatBytes(usage.Used), views.FormatBytes(usage.Quota), usage.Percent)
				} else {
					summary(cmd, "Storage: %s (no quota)", views.FormatBytes(usage.Used))
				}
				summary(cmd, "Saved: %d of %d collections and settings (the rest use defaults)", len(rep.Stored), len(types.StandardKeys))
				if usage.Warning {
					summary(cmd, "%s storage is almost full; export a backup and remove old entries", color.YellowString("Warning:"))
				}
				return nil
			})
		},
	}
}
