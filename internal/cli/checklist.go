package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/readykit/internal/app"
	"github.com/mesh-intelligence/readykit/internal/repo"
	"github.com/mesh-intelligence/readykit/internal/views"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

func newChecklistCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checklist",
		Aliases: []string{"cl"},
		Short:   "Work through the preparedness checklist",
	}
	cmd.AddCommand(
		newChecklistListCmd(r),
		newChecklistMarkCmd(r, "check", true),
		newChecklistMarkCmd(r, "uncheck", false),
		newChecklistToggleCmd(r),
		newChecklistQtyCmd(r),
		newChecklistProgressCmd(r),
		newChecklistResetCmd(r),
	)
	return cmd
}

func newChecklistListCmd(r *runner) *cobra.Command {
	var category int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show checklist items by category",
		Long: `Show checklist items grouped by category.

Examples:
  readykit checklist list
  readykit checklist list --category 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, func(a *app.App) error {
				cats := a.Checklist.Categories()
				if cmd.Flags().Changed("category") {
					c, ok := a.Checklist.Category(category)
					if !ok {
						return userErr(fmt.Errorf("%w: category %d", types.ErrNotFound, category))
					}
					cats = []types.ChecklistCategory{c}
				}
				volume := a.Metrics().Volume
				for ci := range cats {
					for ii := range cats[ci].Items {
						it := &cats[ci].Items[ii]
						it.Text = views.ConvertUnitText(it.Text, volume)
					}
				}
				if r.flags.jsonMode {
					return printJSON(cmd, cats)
				}
				for _, c := range cats {
					st, _ := a.Checklist.CategoryStats(c.ID)
					summary(cmd, "%d. %s (%d/%d, %d%%)", c.ID, c.Name, st.Completed, st.Total, st.Percent)
					rows := make([][]string, 0, len(c.Items))
					for _, it := range c.Items {
						rows = append(rows, []string{it.ID, check(it.Completed), strconv.Itoa(it.Quantity), it.Text})
					}
					printTable(cmd, "  (no items)", []string{"ID", "Done", "Qty", "Item"}, rows)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&category, "category", 0, "show only this category id")
	return cmd
}

// parseItemRef parses the CATEGORY ITEM argument pair.
func parseItemRef(args []string) (int, string, error) {
	catID, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, "", userErr(fmt.Errorf("category id %q is not a number", args[0]))
	}
	return catID, args[1], nil
}

func notFoundItem(catID int, itemID string) error {
	return userErr(fmt.Errorf("%w: item %q in category %d", types.ErrNotFound, itemID, catID))
}

func newChecklistMarkCmd(r *runner, use string, done bool) *cobra.Command {
	short := "Mark an item as done"
	if !done {
		short = "Mark an item as not done"
	}
	return &cobra.Command{
		Use:   use + " CATEGORY ITEM",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catID, itemID, err := parseItemRef(args)
			if err != nil {
				return err
			}
			return r.withApp(cmd, func(a *app.App) error {
				ok, err := a.Checklist.SetCompleted(catID, itemID, done)
				if !ok {
					return notFoundItem(catID, itemID)
				}
				if err != nil {
					return writeErr(err)
				}
				st, _ := a.Checklist.CategoryStats(catID)
				if r.flags.jsonMode {
					return printJSON(cmd, st)
				}
				summary(cmd, "%sed %s (%d/%d done)", use, itemID, st.Completed, st.Total)
				return nil
			})
		},
	}
}

func newChecklistToggleCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle CATEGORY ITEM",
		Short: "Flip an item between done and not done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catID, itemID, err := parseItemRef(args)
			if err != nil {
				return err
			}
			return r.withApp(cmd, func(a *app.App) error {
				ok, err := a.Checklist.Toggle(catID, itemID)
				if !ok {
					return notFoundItem(catID, itemID)
				}
				if err != nil {
					return writeErr(err)
				}
				c, _ := a.Checklist.Category(catID)
				it := c.Items[c.Item(itemID)]
				if r.flags.jsonMode {
					return printJSON(cmd, it)
				}
				state := "not done"
				if it.Completed {
					state = "done"
				}
				summary(cmd, "%s is now %s", itemID, state)
				return nil
			})
		},
	}
}

func newChecklistQtyCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "qty CATEGORY ITEM N",
		Short: "Set the quantity on hand for an item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			catID, itemID, err := parseItemRef(args)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[2])
			if err != nil || n < 0 {
				return userErr(fmt.Errorf("quantity %q must be a whole number of at least 0", args[2]))
			}
			return r.withApp(cmd, func(a *app.App) error {
				ok, err := a.Checklist.SetQuantity(catID, itemID, n)
				if !ok {
					return notFoundItem(catID, itemID)
				}
				if err != nil {
					return writeErr(err)
				}
				summary(cmd, "%s quantity set to %d", itemID, n)
				return nil
			})
		},
	}
}

// progressReport is the JSON shape of checklist progress.
type progressReport struct {
	Overall    repo.Stats         `json:"overall"`
	Categories []categoryProgress `json:"categories"`
}

type categoryProgress struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	repo.Stats
}

func newChecklistProgressCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show completion per category and overall",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, func(a *app.App) error {
				rep := progressReport{Overall: a.Checklist.Stats()}
				for _, c := range a.Checklist.Categories() {
					st, _ := a.Checklist.CategoryStats(c.ID)
					rep.Categories = append(rep.Categories, categoryProgress{ID: c.ID, Name: c.Name, Stats: st})
				}
				if r.flags.jsonMode {
					return printJSON(cmd, rep)
				}
				rows := make([][]string, 0, len(rep.Categories))
				for _, c := range rep.Categories {
					rows = append(rows, []string{
						strconv.Itoa(c.ID), c.Name,
						fmt.Sprintf("%d/%d", c.Completed, c.Total),
						fmt.Sprintf("%d%%", c.Percent),
					})
				}
				printTable(cmd, "No categories.", []string{"ID", "Category", "Done", "Progress"}, rows)
				summary(cmd, "Overall: %d of %d items ready (%d%%)", rep.Overall.Completed, rep.Overall.Total, rep.Overall.Percent)
				return nil
			})
		},
	}
}

func newChecklistResetCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Uncheck every item, keeping quantities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, func(a *app.App) error {
				if err := a.Checklist.Reset(); err != nil {
					return writeErr(err)
				}
				summary(cmd, "Checklist reset")
				return nil
			})
		},
	}
}
