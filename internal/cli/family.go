package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/readykit/internal/app"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

func newFamilyCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "family",
		Short: "Describe the household the plan covers",
	}
	cmd.AddCommand(newFamilyShowCmd(r), newFamilySetCmd(r))
	return cmd
}

func printFamily(cmd *cobra.Command, f types.FamilyInfo) {
	printTable(cmd, "", []string{"Field", "Value"}, [][]string{
		{"Adults", fmt.Sprint(f.Adults)},
		{"Children", fmt.Sprint(f.Children)},
		{"Pets", fmt.Sprint(f.Pets)},
		{"Total", fmt.Sprint(f.Total())},
		{"Location", f.Location},
		{"Special needs", f.SpecialNeeds},
		{"Emergency plan", f.EmergencyPlan},
	})
}

func newFamilyShowCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show household details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, func(a *app.App) error {
				if r.flags.jsonMode {
					return printJSON(cmd, a.FamilyInfo())
				}
				printFamily(cmd, a.FamilyInfo())
				return nil
			})
		},
	}
}

func newFamilySetCmd(r *runner) *cobra.Command {
	var f types.FamilyInfo
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change household details",
		Long: `Change the household fields given as flags.

Examples:
  readykit family set --adults 2 --children 3 --pets 1
  readykit family set --plan "Meet at the library on Main St."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			var p types.FamilyInfoPatch
			for name, dst := range map[string]**int{"adults": &p.Adults, "children": &p.Children, "pets": &p.Pets} {
				if !fs.Changed(name) {
					continue
				}
				n, _ := fs.GetInt(name)
				if n < 0 {
					return userErr(fmt.Errorf("--%s must not be negative", name))
				}
				*dst = types.Ptr(n)
			}
			if fs.Changed("special-needs") {
				p.SpecialNeeds = types.Ptr(f.SpecialNeeds)
			}
			if fs.Changed("location") {
				p.Location = types.Ptr(f.Location)
			}
			if fs.Changed("plan") {
				p.EmergencyPlan = types.Ptr(f.EmergencyPlan)
			}
			return r.withApp(cmd, func(a *app.App) error {
				if err := a.UpdateFamilyInfo(p); err != nil {
					return writeErr(err)
				}
				if r.flags.jsonMode {
					return printJSON(cmd, a.FamilyInfo())
				}
				printFamily(cmd, a.FamilyInfo())
				return nil
			})
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&f.Adults, "adults", 0, "number of adults")
	fs.IntVar(&f.Children, "children", 0, "number of children")
	fs.IntVar(&f.Pets, "pets", 0, "number of pets")
	fs.StringVar(&f.SpecialNeeds, "special-needs", "", "medical or mobility needs")
	fs.StringVar(&f.Location, "location", "", "home location")
	fs.StringVar(&f.EmergencyPlan, "plan", "", "meeting point and evacuation plan")
	return cmd
}
