package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/readykit/internal/views"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d6dae0"))
)

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return sysErr(fmt.Errorf("encode json: %w", err))
	}
	return nil
}

// printTable renders rows under headers. An empty table prints empty
// instead.
func printTable(cmd *cobra.Command, empty string, headers []string, rows [][]string) {
	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, empty)
		return
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(out, t.String())
}

// noteWidth bounds free-text columns in tables.
const noteWidth = 32

// note shortens free text for a table cell.
func note(s string) string {
	return views.Truncate(strings.Join(strings.Fields(s), " "), noteWidth)
}

// check renders a boolean as a mark.
func check(b bool) string {
	if b {
		return color.GreenString("✓")
	}
	return ""
}

// expiryLabel describes a pantry expiry date for display.
func expiryLabel(st views.ExpiryStatus) string {
	switch st.Status {
	case views.LevelExpired:
		return color.RedString("expired %d %s ago", st.Days, views.Pluralize("day", st.Days))
	case views.LevelExpiring:
		if st.Days == 0 {
			return color.RedString("expires today")
		}
		return color.YellowString("%d %s left", st.Days, views.Pluralize("day", st.Days))
	case views.LevelWarning:
		return color.YellowString("%d days left", st.Days)
	}
	return color.GreenString("good")
}

// formatQty prints whole quantities without a fraction.
func formatQty(q float64) string {
	s := fmt.Sprintf("%.2f", q)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// summary prints a one-line status message.
func summary(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
