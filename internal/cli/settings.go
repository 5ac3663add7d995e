package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/readykit/internal/app"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

func newSettingsCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change display preferences",
	}
	cmd.AddCommand(newSettingsShowCmd(r), newSettingsThemeCmd(r), newSettingsUnitsCmd(r))
	return cmd
}

// preferences is the JSON shape of the settings commands.
type preferences struct {
	Theme   types.Theme           `json:"theme"`
	Metrics types.MetricsSettings `json:"metricsSettings"`
}

func (r *runner) printPreferences(cmd *cobra.Command, a *app.App) error {
	p := preferences{Theme: a.Theme(), Metrics: a.Metrics()}
	if r.flags.jsonMode {
		return printJSON(cmd, p)
	}
	printTable(cmd, "", []string{"Setting", "Value"}, [][]string{
		{"Theme", string(p.Theme)},
		{"Volume", p.Metrics.Volume},
		{"Weight", p.Metrics.Weight},
		{"Temperature", p.Metrics.Temperature},
		{"Distance", p.Metrics.Distance},
	})
	return nil
}

func newSettingsShowCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the theme and measurement units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, func(a *app.App) error {
				return r.printPreferences(cmd, a)
			})
		},
	}
}

func newSettingsThemeCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:       "theme light|dark|system",
		Short:     "Set the display theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(types.ThemeLight), string(types.ThemeDark), string(types.ThemeSystem)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(a *app.App) error {
				if err := a.SetTheme(types.Theme(args[0])); err != nil {
					if errors.Is(err, types.ErrInvalidTheme) {
						return userErr(err)
					}
					return writeErr(err)
				}
				summary(cmd, "Theme set to %s", a.Theme())
				return nil
			})
		},
	}
}

func newSettingsUnitsCmd(r *runner) *cobra.Command {
	var m types.MetricsSettings
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Set measurement units",
		Long: fmt.Sprintf(`Set the unit used for each measured dimension.

Volume:      %v
Weight:      %v
Temperature: %v
Distance:    %v

Examples:
  readykit settings units --volume liters --weight kilograms`,
			types.VolumeUnits, types.WeightUnits, types.TemperatureUnits, types.DistanceUnits),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			var p types.MetricsSettingsPatch
			if fs.Changed("volume") {
				p.Volume = types.Ptr(m.Volume)
			}
			if fs.Changed("weight") {
				p.Weight = types.Ptr(m.Weight)
			}
			if fs.Changed("temperature") {
				p.Temperature = types.Ptr(m.Temperature)
			}
			if fs.Changed("distance") {
				p.Distance = types.Ptr(m.Distance)
			}
			return r.withApp(cmd, func(a *app.App) error {
				if err := a.UpdateMetrics(p); err != nil {
					if errors.Is(err, types.ErrInvalidUnit) {
						return userErr(err)
					}
					return writeErr(err)
				}
				return r.printPreferences(cmd, a)
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&m.Volume, "volume", "", "volume unit")
	fs.StringVar(&m.Weight, "weight", "", "weight unit")
	fs.StringVar(&m.Temperature, "temperature", "", "temperature unit")
	fs.StringVar(&m.Distance, "distance", "", "distance unit")
	return cmd
}
