package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

// Format names an export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "txt"
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
	FormatYAML Format = "yaml"
	FormatPDF  Format = "pdf"
)

// Formats lists every supported export format.
var Formats = []Format{FormatJSON, FormatCSV, FormatText, FormatHTML, FormatXLSX, FormatYAML, FormatPDF}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// FileName returns the download name for an export of kind f made at now.
func FileName(f Format, now time.Time) string {
	date := now.UTC().Format("2006-01-02")
	switch f {
	case FormatJSON, FormatYAML:
		return fmt.Sprintf("emergency-prep-backup-%s.%s", date, f)
	case FormatXLSX:
		return fmt.Sprintf("emergency-prep-data-%s.xlsx", date)
	}
	return fmt.Sprintf("emergency-prep-checklist-%s.%s", date, f)
}

// Options carries what some exporters need beyond the snapshot.
type Options struct {
	// Now is used for human-readable timestamps in text, HTML and PDF output.
	Now time.Time
	// Printer renders PDF output. Required for FormatPDF.
	Printer Printer
}

// Export writes snap to w in format f.
func Export(ctx context.Context, w io.Writer, f Format, snap types.Snapshot, opts Options) error {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	switch f {
	case FormatJSON:
		return ExportJSON(w, snap)
	case FormatCSV:
		return ExportCSV(w, snap)
	case FormatText:
		return ExportText(w, snap, opts.Now)
	case FormatHTML:
		return ExportHTML(w, snap, opts.Now)
	case FormatXLSX:
		return ExportXLSX(w, snap)
	case FormatYAML:
		return ExportYAML(w, snap)
	case FormatPDF:
		return ExportPDF(ctx, w, opts.Printer, snap, opts.Now)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// ExportJSON writes the snapshot as two-space indented JSON. The output is
// the backup format Import reads.
func ExportJSON(w io.Writer, snap types.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportYAML writes the snapshot as YAML.
func ExportYAML(w io.Writer, snap types.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return enc.Close()
}

// csvQuote always quotes, doubling embedded quotes.
func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportCSV writes one row per checklist item.
func ExportCSV(w io.Writer, snap types.Snapshot) error {
	var b bytes.Buffer
	b.WriteString("Category,Name,Details,Status\n")
	for _, cat := range snap.ChecklistItems {
		for _, it := range cat.Items {
			status := "Pending"
			if it.Completed {
				status = "Completed"
			}
			fields := []string{
				csvQuote(cat.Name),
				csvQuote(it.Text),
				csvQuote("Quantity: " + strconv.Itoa(it.Quantity)),
				csvQuote(status),
			}
			b.WriteString(strings.Join(fields, ","))
			b.WriteByte('\n')
		}
	}
	_, err := w.Write(b.Bytes())
	return err
}

// localeLayout renders timestamps the way an en-US browser does.
const localeLayout = "1/2/2006, 3:04:05 PM"

// ExportText writes a plain-text checklist.
func ExportText(w io.Writer, snap types.Snapshot, now time.Time) error {
	family := types.DefaultFamilyInfo
	if snap.FamilyInfo != nil {
		family = *snap.FamilyInfo
	}

	var b strings.Builder
	b.WriteString("=== EMERGENCY PREPAREDNESS CHECKLIST ===\n\n")
	fmt.Fprintf(&b, "Export Date: %s\n\n", now.Format(localeLayout))
	b.WriteString("Family Information:\n")
	fmt.Fprintf(&b, "- Adults: %d\n", family.Adults)
	fmt.Fprintf(&b, "- Children: %d\n", family.Children)
	fmt.Fprintf(&b, "- Pets: %d\n\n", family.Pets)

	for _, cat := range snap.ChecklistItems {
		fmt.Fprintf(&b, "\n%s:\n", cat.Name)
		b.WriteString(strings.Repeat("=", utf8.RuneCountInString(cat.Name)+1))
		b.WriteByte('\n')
		for _, it := range cat.Items {
			mark := "[ ]"
			if it.Completed {
				mark = "[✓]"
			}
			fmt.Fprintf(&b, "%s %s (Qty: %d)\n", mark, it.Text, it.Quantity)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
