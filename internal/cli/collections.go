package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/readykit/internal/app"
	"github.com/mesh-intelligence/readykit/internal/views"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

// deleter is the part of a repository the delete command needs.
type deleter interface {
	Len() int
	DeleteMultiple(ids []string) error
}

func newDeleteCmd(r *runner, noun, plural string, pick func(*app.App) deleter) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID...",
		Aliases: []string{"rm"},
		Short:   "Delete one or more " + plural + " by id",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(cmd, func(a *app.App) error {
				coll := pick(a)
				before := coll.Len()
				if err := coll.DeleteMultiple(args); err != nil {
					return writeErr(err)
				}
				n := before - coll.Len()
				if n == 0 {
					return userErr(fmt.Errorf("%w: no %s with id %s", types.ErrNotFound, noun, strings.Join(args, ", ")))
				}
				if n == 1 {
					summary(cmd, "Deleted 1 %s", noun)
				} else {
					summary(cmd, "Deleted %d %s", n, plural)
				}
				return nil
			})
		},
	}
}

// listSpec describes how to search and tabulate one collection.
type listSpec[T any] struct {
	empty   string
	headers []string
	row     func(T) []string
	search  []func(T) string
}

func newListCmd[T any](r *runner, spec listSpec[T], list func(*app.App) []T) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(cmd, func(a *app.App) error {
				items := views.FilterBySearch(list(a), search, spec.search...)
				if r.flags.jsonMode {
					if items == nil {
						items = []T{}
					}
					return printJSON(cmd, items)
				}
				rows := make([][]string, 0, len(items))
				for _, it := range items {
					rows = append(rows, spec.row(it))
				}
				printTable(cmd, spec.empty, spec.headers, rows)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive text filter")
	return cmd
}

// addResult prints the outcome of an Add.
func (r *runner) addResult(cmd *cobra.Command, v types.Entity, label string, err error) error {
	if err != nil {
		return writeErr(err)
	}
	if r.flags.jsonMode {
		return printJSON(cmd, v)
	}
	summary(cmd, "Added %s (%s)", label, v.EntityID())
	return nil
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return userErr(fmt.Errorf("--%s is required", name))
	}
	return nil
}

func newContactsCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Aliases: []string{"contact"},
		Short:   "Manage emergency contacts",
	}
	cmd.AddCommand(
		newListCmd(r, listSpec[types.EmergencyContact]{
			empty:   "No contacts.",
			headers: []string{"ID", "Name", "Relationship", "Phone", "Email", "Emergency"},
			row: func(c types.EmergencyContact) []string {
				return []string{c.ID, c.Name, string(c.Relationship), c.Phone, c.Email, check(c.IsEmergencyContact)}
			},
			search: []func(types.EmergencyContact) string{
				func(c types.EmergencyContact) string { return c.Name },
				func(c types.EmergencyContact) string { return string(c.Relationship) },
				func(c types.EmergencyContact) string { return c.Phone },
				func(c types.EmergencyContact) string { return c.Email },
				func(c types.EmergencyContact) string { return c.Notes },
			},
		}, func(a *app.App) []types.EmergencyContact { return a.Contacts.List() }),
		newContactAddCmd(r),
		newDeleteCmd(r, "contact", "contacts", func(a *app.App) deleter { return a.Contacts }),
	)
	return cmd
}

func newContactAddCmd(r *runner) *cobra.Command {
	var (
		c   types.EmergencyContact
		rel string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an emergency contact",
		Long: `Add an emergency contact.

Examples:
  readykit contacts add --name "Dr. Smith" --relationship Doctor --phone 555-0101 --emergency`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := required("name", c.Name); err != nil {
				return err
			}
			if err := required("phone", c.Phone); err != nil {
				return err
			}
			if !views.ValidPhone(c.Phone) {
				return userErr(fmt.Errorf("invalid phone number %q", c.Phone))
			}
			if c.Email != "" && !views.ValidEmail(c.Email) {
				return userErr(fmt.Errorf("invalid email address %q", c.Email))
			}
			var err error
			if c.Relationship, err = parseChoice("relationship", rel, types.ContactRelationships); err != nil {
				return err
			}
			return r.withApp(cmd, func(a *app.App) error {
				added, err := a.Contacts.Add(c)
				return r.addResult(cmd, added, added.Name, err)
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&c.Name, "name", "", "contact name")
	fs.StringVar(&rel, "relationship", string(types.RelOther), "relationship to the household")
	fs.StringVar(&c.Phone, "phone", "", "phone number")
	fs.StringVar(&c.Email, "email", "", "email address")
	fs.StringVar(&c.Address, "address", "", "postal address")
	fs.BoolVar(&c.IsEmergencyContact, "emergency", false, "call this contact first in an emergency")
	fs.StringVar(&c.Notes, "notes", "", "free-form notes")
	return cmd
}

func newBooksCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "books",
		Aliases: []string{"book"},
		Short:   "Manage the reference library",
	}
	cmd.AddCommand(
		newListCmd(r, listSpec[types.Book]{
			empty:   "No books.",
			headers: []string{"ID", "Title", "Author", "Category", "Location", "Essential", "Notes"},
			row: func(b types.Book) []string {
				return []string{b.ID, b.Title, b.Author, string(b.Category), b.Location, check(b.IsEssential), note(b.Notes)}
			},
			search: []func(types.Book) string{
				func(b types.Book) string { return b.Title },
				func(b types.Book) string { return b.Author },
				func(b types.Book) string { return string(b.Category) },
				func(b types.Book) string { return b.Notes },
			},
		}, func(a *app.App) []types.Book { return a.Books.List() }),
		newBookAddCmd(r),
		newDeleteCmd(r, "book", "books", func(a *app.App) deleter { return a.Books }),
	)
	return cmd
}

func newBookAddCmd(r *runner) *cobra.Command {
	var (
		b   types.Book
		cat string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := required("title", b.Title); err != nil {
				return err
			}
			var err error
			if b.Category, err = parseChoice("category", cat, types.BookCategories); err != nil {
				return err
			}
			return r.withApp(cmd, func(a *app.App) error {
				added, err := a.Books.Add(b)
				return r.addResult(cmd, added, added.Title, err)
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&b.Title, "title", "", "book title")
	fs.StringVar(&b.Author, "author", "", "author")
	fs.StringVar(&cat, "category", string(types.BookOther), "book category")
	fs.StringVar(&b.Location, "location", "", "where the book is kept")
	fs.BoolVar(&b.IsEssential, "essential", false, "mark as essential")
	fs.StringVar(&b.Notes, "notes", "", "free-form notes")
	return cmd
}

func newFrequenciesCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "frequencies",
		Aliases: []string{"freq"},
		Short:   "Manage radio frequencies",
	}
	cmd.AddCommand(
		newListCmd(r, listSpec[types.HamFrequency]{
			empty:   "No frequencies.",
			headers: []string{"ID", "Frequency", "Description", "Type", "Emergency"},
			row: func(h types.HamFrequency) []string {
				return []string{h.ID, h.Frequency, note(h.Description), string(h.Location), check(h.IsEmergency)}
			},
			search: []func(types.HamFrequency) string{
				func(h types.HamFrequency) string { return h.Frequency },
				func(h types.HamFrequency) string { return h.Description },
				func(h types.HamFrequency) string { return string(h.Location) },
				func(h types.HamFrequency) string { return h.Notes },
			},
		}, func(a *app.App) []types.HamFrequency { return a.Frequencies.List() }),
		newFrequencyAddCmd(r),
		newDeleteCmd(r, "frequency", "frequencies", func(a *app.App) deleter { return a.Frequencies }),
	)
	return cmd
}

func newFrequencyAddCmd(r *runner) *cobra.Command {
	var (
		h   types.HamFrequency
		loc string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a radio frequency",
		Long: `Add a radio frequency.

Examples:
  readykit frequencies add --frequency "146.520 MHz" --description "2m calling" --type "Emergency Communications" --emergency`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := required("frequency", h.Frequency); err != nil {
				return err
			}
			var err error
			if h.Location, err = parseChoice("type", loc, types.HamLocations); err != nil {
				return err
			}
			return r.withApp(cmd, func(a *app.App) error {
				added, err := a.Frequencies.Add(h)
				return r.addResult(cmd, added, added.Frequency, err)
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&h.Frequency, "frequency", "", "frequency, e.g. \"146.520 MHz\"")
	fs.StringVar(&h.Description, "description", "", "what the frequency is used for")
	fs.StringVar(&loc, "type", string(types.HamOther), "frequency type")
	fs.BoolVar(&h.IsEmergency, "emergency", false, "mark as an emergency frequency")
	fs.StringVar(&h.Notes, "notes", "", "free-form notes")
	return cmd
}

func newDocumentsCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs"},
		Short:   "Track where important documents are kept",
	}
	cmd.AddCommand(
		newListCmd(r, listSpec[types.Document]{
			empty:   "No documents.",
			headers: []string{"ID", "Name", "Category", "Location", "Digital", "Notes"},
			row: func(d types.Document) []string {
				return []string{d.ID, d.Name, string(d.Category), d.Location, check(d.IsDigital), note(d.Notes)}
			},
			search: []func(types.Document) string{
				func(d types.Document) string { return d.Name },
				func(d types.Document) string { return string(d.Category) },
				func(d types.Document) string { return d.Location },
				func(d types.Document) string { return d.Notes },
			},
		}, func(a *app.App) []types.Document { return a.Documents.List() }),
		newDocumentAddCmd(r),
		newDeleteCmd(r, "document", "documents", func(a *app.App) deleter { return a.Documents }),
	)
	return cmd
}

func newDocumentAddCmd(r *runner) *cobra.Command {
	var (
		d   types.Document
		cat string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a document's location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := required("name", d.Name); err != nil {
				return err
			}
			var err error
			if d.Category, err = parseChoice("category", cat, types.DocumentCategories); err != nil {
				return err
			}
			return r.withApp(cmd, func(a *app.App) error {
				added, err := a.Documents.Add(d)
				return r.addResult(cmd, added, added.Name, err)
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&d.Name, "name", "", "document name")
	fs.StringVar(&cat, "category", string(types.DocOther), "document category")
	fs.StringVar(&d.Location, "location", "", "where the document is kept")
	fs.BoolVar(&d.IsDigital, "digital", false, "a digital copy exists")
	fs.StringVar(&d.Notes, "notes", "", "free-form notes")
	return cmd
}
