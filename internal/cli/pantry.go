package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mesh-intelligence/readykit/internal/app"
	"github.com/mesh-intelligence/readykit/internal/views"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

func newPantryCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pantry",
		Short: "Track stocked food and supplies",
	}
	cmd.AddCommand(
		newPantryListCmd(r),
		newPantryAddCmd(r),
		newPantryUpdateCmd(r),
		newDeleteCmd(r, "pantry item", "pantry items", func(a *app.App) deleter { return a.Pantry }),
		newPantryExpiringCmd(r),
		newPantryLowCmd(r),
	)
	return cmd
}

// pantryView is a pantry item with its computed expiry status.
type pantryView struct {
	types.PantryItem
	Expiry *views.ExpiryStatus `json:"expiry,omitempty"`
	Low    bool                `json:"low"`
}

func (r *runner) pantryViews(items []types.PantryItem) []pantryView {
	now := r.now()
	out := make([]pantryView, len(items))
	for i, it := range items {
		out[i] = pantryView{PantryItem: it, Low: it.Quantity < it.MinQuantity}
		if st, err := views.Expiry(it.ExpiryDate, now); err == nil {
			out[i].Expiry = &st
		}
	}
	return out
}

func (r *runner) printPantry(cmd *cobra.Command, empty string, items []types.PantryItem, group bool) error {
	vs := r.pantryViews(items)
	if r.flags.jsonMode {
		return printJSON(cmd, vs)
	}
	if !group {
		printTable(cmd, empty, pantryHeaders, pantryRows(vs))
		return nil
	}
	groups := views.GroupBy(vs, func(v pantryView) string { return string(v.Category) })
	if len(groups) == 0 {
		summary(cmd, empty)
	}
	for _, g := range groups {
		summary(cmd, "%s (%d)", g.Key, len(g.Items))
		printTable(cmd, empty, pantryHeaders, pantryRows(g.Items))
	}
	return nil
}

var pantryHeaders = []string{"ID", "Name", "Category", "Qty", "Min", "Expires", "Status", "Notes"}

func pantryRows(vs []pantryView) [][]string {
	rows := make([][]string, 0, len(vs))
	for _, v := range vs {
		status := "unknown date"
		if v.Expiry != nil {
			status = expiryLabel(*v.Expiry)
		}
		qty := strings.TrimSpace(formatQty(v.Quantity) + " " + v.Unit)
		minQty := formatQty(v.MinQuantity)
		if v.Low {
			minQty += " (low)"
		}
		rows = append(rows, []string{v.ID, v.Name, string(v.Category), qty, minQty, v.ExpiryDate, status, note(v.Notes)})
	}
	return rows
}

// pantrySortKeys maps --sort values to sort keys.
var pantrySortKeys = map[string]func([]types.PantryItem, views.Direction) []types.PantryItem{
	"name": func(items []types.PantryItem, d views.Direction) []types.PantryItem {
		return views.SortBy(items, func(p types.PantryItem) string { return strings.ToLower(p.Name) }, d)
	},
	"category": func(items []types.PantryItem, d views.Direction) []types.PantryItem {
		return views.SortBy(items, func(p types.PantryItem) string { return string(p.Category) }, d)
	},
	"quantity": func(items []types.PantryItem, d views.Direction) []types.PantryItem {
		return views.SortBy(items, func(p types.PantryItem) float64 { return p.Quantity }, d)
	},
	"min": func(items []types.PantryItem, d views.Direction) []types.PantryItem {
		return views.SortBy(items, func(p types.PantryItem) float64 { return p.MinQuantity }, d)
	},
	// YYYY-MM-DD sorts chronologically as a string.
	"expiry": func(items []types.PantryItem, d views.Direction) []types.PantryItem {
		return views.SortBy(items, func(p types.PantryItem) string { return p.ExpiryDate }, d)
	},
}

func newPantryListCmd(r *runner) *cobra.Command {
	var (
		search string
		sortBy string
		desc   bool
		group  bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pantry items",
		Long: `List pantry items with their expiry status.

Examples:
  readykit pantry list
  readykit pantry list --search rice --sort expiry
  readykit pantry list --group --sort quantity --desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sorter, ok := pantrySortKeys[sortBy]
			if !ok {
				return userErr(fmt.Errorf("invalid --sort %q (choose from: name, category, quantity, expiry, min)", sortBy))
			}
			dir := views.Asc
			if desc {
				dir = views.Desc
			}
			return r.withApp(cmd, func(a *app.App) error {
				items := views.FilterBySearch(a.Pantry.List(), search,
					func(p types.PantryItem) string { return p.Name },
					func(p types.PantryItem) string { return string(p.Category) },
					func(p types.PantryItem) string { return p.Notes },
				)
				return r.printPantry(cmd, "No pantry items.", sorter(items, dir), group)
			})
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name, category or notes")
	cmd.Flags().StringVar(&sortBy, "sort", "name", "sort by name, category, quantity, expiry or min")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().BoolVar(&group, "group", false, "group by category")
	return cmd
}

// pantryFlags are the editable fields of a pantry item.
type pantryFlags struct {
	name     string
	category string
	quantity float64
	unit     string
	expiry   string
	min      float64
	notes    string
}

func (f *pantryFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "item name")
	fs.StringVar(&f.category, "category", string(types.PantryOther), "pantry category")
	fs.Float64Var(&f.quantity, "quantity", 1, "quantity on hand")
	fs.StringVar(&f.unit, "unit", "", "unit such as cans or lbs")
	fs.StringVar(&f.expiry, "expiry", "", "expiry date (YYYY-MM-DD)")
	fs.Float64Var(&f.min, "min", 0, "minimum quantity to keep")
	fs.StringVar(&f.notes, "notes", "", "free-form notes")
}

// patch builds a patch from the flags the user set.
func (f *pantryFlags) patch(fs *pflag.FlagSet) (types.PantryItemPatch, error) {
	var p types.PantryItemPatch
	if fs.Changed("name") {
		if strings.TrimSpace(f.name) == "" {
			return p, userErr(fmt.Errorf("name must not be empty"))
		}
		p.Name = types.Ptr(f.name)
	}
	if fs.Changed("category") {
		c, err := parseChoice("category", f.category, types.PantryCategories)
		if err != nil {
			return p, err
		}
		p.Category = &c
	}
	if fs.Changed("quantity") {
		if f.quantity < 0 {
			return p, userErr(fmt.Errorf("quantity must not be negative"))
		}
		p.Quantity = types.Ptr(f.quantity)
	}
	if fs.Changed("unit") {
		p.Unit = types.Ptr(f.unit)
	}
	if fs.Changed("expiry") {
		if _, err := views.ParseDate(f.expiry, time.Local); err != nil {
			return p, userErr(err)
		}
		p.ExpiryDate = types.Ptr(f.expiry)
	}
	if fs.Changed("min") {
		if f.min < 0 {
			return p, userErr(fmt.Errorf("min must not be negative"))
		}
		p.MinQuantity = types.Ptr(f.min)
	}
	if fs.Changed("notes") {
		p.Notes = types.Ptr(f.notes)
	}
	return p, nil
}

func newPantryAddCmd(r *runner) *cobra.Command {
	var f pantryFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pantry item",
		Long: `Add a pantry item.

Examples:
  readykit pantry add --name Rice --category "Grains & Pasta" --quantity 20 --unit lbs --expiry 2027-06-01 --min 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			// Defaults count as set for a new item.
			for _, name := range []string{"category", "quantity", "min"} {
				if !fs.Changed(name) {
					_ = fs.Set(name, fs.Lookup(name).DefValue)
				}
			}
			p, err := f.patch(fs)
			if err != nil {
				return err
			}
			if p.Name == nil {
				return userErr(fmt.Errorf("--name is required"))
			}
			if p.ExpiryDate == nil {
				return userErr(fmt.Errorf("--expiry is required"))
			}
			var it types.PantryItem
			p.Apply(&it)
			return r.withApp(cmd, func(a *app.App) error {
				added, err := a.Pantry.Add(it)
				if err != nil {
					return writeErr(err)
				}
				if r.flags.jsonMode {
					return printJSON(cmd, added)
				}
				summary(cmd, "Added %s (%s)", added.Name, added.ID)
				return nil
			})
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newPantryUpdateCmd(r *runner) *cobra.Command {
	var f pantryFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a pantry item",
		Long: `Change the fields given as flags; other fields keep their values.

Examples:
  readykit pantry update 3 --quantity 12
  readykit pantry update 3 --expiry 2027-01-15 --notes "rotated"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.patch(cmd.Flags())
			if err != nil {
				return err
			}
			return r.withApp(cmd, func(a *app.App) error {
				ok, err := a.Pantry.Update(args[0], p)
				if !ok {
					return userErr(fmt.Errorf("%w: pantry item %q", types.ErrNotFound, args[0]))
				}
				if err != nil {
					return writeErr(err)
				}
				it, _ := a.Pantry.Get(args[0])
				if r.flags.jsonMode {
					return printJSON(cmd, it)
				}
				summary(cmd, "Updated %s (%s)", it.Name, it.ID)
				return nil
			})
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newPantryExpiringCmd(r *runner) *cobra.Command {
	var within int
	cmd := &cobra.Command{
		Use:   "expiring",
		Short: "List items expired or expiring soon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if within < 0 {
				return userErr(fmt.Errorf("--within must not be negative"))
			}
			return r.withApp(cmd, func(a *app.App) error {
				items := views.ExpiringSoon(a.Pantry.List(), r.now(), within)
				items = views.SortBy(items, func(p types.PantryItem) string { return p.ExpiryDate }, views.Asc)
				return r.printPantry(cmd, fmt.Sprintf("Nothing expires within %d days.", within), items, false)
			})
		},
	}
	cmd.Flags().IntVar(&within, "within", views.ExpiringWithin, "days ahead to look")
	return cmd
}

func newPantryLowCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "low",
		Short: "List items below their minimum quantity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, func(a *app.App) error {
				return r.printPantry(cmd, "Everything is stocked.", views.LowStock(a.Pantry.List()), false)
			})
		},
	}
}
