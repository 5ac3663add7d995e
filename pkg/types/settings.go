package types

import "fmt"

// FamilyInfo describes the household the plan is made for.
type FamilyInfo struct {
	Adults        int    `json:"adults" yaml:"adults"`
	Children      int    `json:"children" yaml:"children"`
	Pets          int    `json:"pets" yaml:"pets"`
	SpecialNeeds  string `json:"specialNeeds" yaml:"special_needs"`
	Location      string `json:"location" yaml:"location"`
	EmergencyPlan string `json:"emergencyPlan" yaml:"emergency_plan"`
}

// Total returns the number of adults, children and pets.
func (f FamilyInfo) Total() int {
	return f.Adults + f.Children + f.Pets
}

// DefaultFamilyInfo is used until the user records their own household.
var DefaultFamilyInfo = FamilyInfo{Adults: 2}

// Unit sets accepted by MetricsSettings.
var (
	VolumeUnits      = []string{"gallons", "liters", "quarts"}
	WeightUnits      = []string{"pounds", "kilograms", "ounces"}
	TemperatureUnits = []string{"fahrenheit", "celsius"}
	DistanceUnits    = []string{"miles", "kilometers", "feet"}
)

// MetricsSettings holds the display unit for each measured dimension.
type MetricsSettings struct {
	Volume      string `json:"volume" yaml:"volume"`
	Weight      string `json:"weight" yaml:"weight"`
	Temperature string `json:"temperature" yaml:"temperature"`
	Distance    string `json:"distance" yaml:"distance"`
}

// DefaultMetricsSettings are US customary units.
var DefaultMetricsSettings = MetricsSettings{
	Volume:      "gallons",
	Weight:      "pounds",
	Temperature: "fahrenheit",
	Distance:    "miles",
}

// Validate returns ErrInvalidUnit when any unit is outside its set.
func (m MetricsSettings) Validate() error {
	checks := []struct {
		field string
		value string
		set   []string
	}{
		{"volume", m.Volume, VolumeUnits},
		{"weight", m.Weight, WeightUnits},
		{"temperature", m.Temperature, TemperatureUnits},
		{"distance", m.Distance, DistanceUnits},
	}
	for _, c := range checks {
		if !oneOf(c.value, c.set) {
			return fmt.Errorf("%w: %s %q", ErrInvalidUnit, c.field, c.value)
		}
	}
	return nil
}

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DefaultTheme is used until the user picks one.
const DefaultTheme = ThemeLight

// Validate returns ErrInvalidTheme for unknown themes.
func (t Theme) Validate() error {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidTheme, string(t))
}
