package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/readykit/internal/app"
	"github.com/mesh-intelligence/readykit/internal/printer"
	"github.com/mesh-intelligence/readykit/internal/transfer"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

func (r *runner) pdfPrinter() transfer.Printer {
	if r.printer != nil {
		return r.printer
	}
	return printer.New(r.cfg.ChromeBin, r.cfg.ChromeURL, r.log)
}

func newExportCmd(r *runner) *cobra.Command {
	var (
		format    string
		out       string
		clipboard bool
	)
	names := make([]string, len(transfer.Formats))
	for i, f := range transfer.Formats {
		names[i] = string(f)
	}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data as a backup or printable report",
		Long: `Export all data. json and yaml are full backups; json is the format
import reads. csv and txt list the checklist, html and pdf are printable
reports, and xlsx is a workbook with one sheet per collection.

Examples:
  readykit export
  readykit export --format pdf --out ~/Documents
  readykit export --format csv --out -
  readykit export --clipboard`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := transfer.ParseFormat(format)
			if err != nil {
				return userErr(err)
			}
			return r.withApp(cmd, func(a *app.App) error {
				now := r.now()
				snap := transfer.Collect(a, now)

				if clipboard {
					if err := transfer.CopyJSON(r.clipboard, snap); err != nil {
						return sysErr(err)
					}
					summary(cmd, "Backup copied to clipboard")
					return nil
				}

				opts := transfer.Options{Now: now}
				if f == transfer.FormatPDF {
					opts.Printer = r.pdfPrinter()
				}
				if out == "-" {
					return exportErr(transfer.Export(cmd.Context(), cmd.OutOrStdout(), f, snap, opts))
				}

				path := filepath.Join(out, transfer.FileName(f, now))
				if err := writeExport(cmd, path, f, snap, opts); err != nil {
					return err
				}
				r.log.Info("exported", zap.String("format", string(f)), zap.String("path", path))
				summary(cmd, "Exported %s", path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(transfer.FormatJSON), "one of "+strings.Join(names, ", "))
	cmd.Flags().StringVarP(&out, "out", "o", ".", `output directory, or "-" for stdout`)
	cmd.Flags().BoolVar(&clipboard, "clipboard", false, "copy the JSON backup to the clipboard instead")
	return cmd
}

// writeExport writes the export to path, removing the file again on failure.
func writeExport(cmd *cobra.Command, path string, f transfer.Format, snap types.Snapshot, opts transfer.Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return sysErr(fmt.Errorf("create output dir: %w", err))
	}
	file, err := os.Create(path)
	if err != nil {
		return sysErr(fmt.Errorf("create %s: %w", path, err))
	}
	err = transfer.Export(cmd.Context(), file, f, snap, opts)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return exportErr(err)
	}
	return nil
}

func exportErr(err error) error {
	if err == nil {
		return nil
	}
	return sysErr(fmt.Errorf("export: %w", err))
}

func newImportCmd(r *runner) *cobra.Command {
	var atomic bool
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Restore data from a JSON backup",
		Long: `Replace stored data with the contents of a JSON backup made by export.
Collections missing from the backup are left as they are. The backup must
contain familyInfo and checklistItems. FILE may be "-" to read standard input.

By default each collection is written on its own, so a storage failure on
one does not stop the rest. With --atomic the backup is written all at once
or not at all.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return userErr(fmt.Errorf("open backup: %w", err))
				}
				defer f.Close()
				in = f
			}
			return r.withApp(cmd, func(a *app.App) error {
				im := transfer.NewImporter(a, r.log)
				im.Atomic = atomic
				res, err := im.Import(cmd.Context(), in)
				if errors.Is(err, types.ErrInvalidFormat) {
					return userErr(err)
				}
				if err != nil && len(res.Written) == 0 {
					return sysErr(err)
				}
				if r.flags.jsonMode {
					if jerr := printJSON(cmd, res.Counts); jerr != nil {
						return jerr
					}
				} else {
					printCounts(cmd, res.Counts)
					summary(cmd, "Imported %d of %d collections", len(res.Written), presentCount(res.Snapshot))
				}
				if err != nil {
					return sysErr(fmt.Errorf("some collections were not written: %w", err))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&atomic, "atomic", false, "write everything or nothing")
	return cmd
}

// presentCount returns how many stored values the backup carries.
func presentCount(s types.Snapshot) int {
	n := 0
	for _, present := range []bool{
		s.FamilyInfo != nil, s.ChecklistItems != nil, s.PantryItems != nil, s.Books != nil,
		s.Contacts != nil, s.Frequencies != nil, s.Documents != nil, s.MetricsSettings != nil,
	} {
		if present {
			n++
		}
	}
	return n
}

func printCounts(cmd *cobra.Command, c transfer.Counts) {
	printTable(cmd, "", []string{"Collection", "Entries"}, [][]string{
		{"Checklist items", fmt.Sprint(c.ChecklistItems)},
		{"Pantry items", fmt.Sprint(c.PantryItems)},
		{"Contacts", fmt.Sprint(c.Contacts)},
		{"Books", fmt.Sprint(c.Books)},
		{"Frequencies", fmt.Sprint(c.Frequencies)},
		{"Documents", fmt.Sprint(c.Documents)},
	})
}
