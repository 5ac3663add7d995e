package transfer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/mesh-intelligence/readykit/internal/views"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

//go:embed templates/report.html.tmpl
var templates embed.FS

var reportTmpl = template.Must(template.New("report.html.tmpl").Funcs(template.FuncMap{
	"number": func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
	"date": func(s string) string {
		t, err := views.ParseDate(s, time.Local)
		if err != nil {
			return s
		}
		return t.Format("1/2/2006")
	},
}).ParseFS(templates, "templates/report.html.tmpl"))

type reportData struct {
	Generated string
	Family    types.FamilyInfo
	Snap      types.Snapshot
}

// ExportHTML writes a self-contained printable report. Collection tables are
// omitted when the collection is empty.
func ExportHTML(w io.Writer, snap types.Snapshot, now time.Time) error {
	family := types.DefaultFamilyInfo
	if snap.FamilyInfo != nil {
		family = *snap.FamilyInfo
	}
	data := reportData{
		Generated: now.Format(localeLayout),
		Family:    family,
		Snap:      snap,
	}
	if err := reportTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

// Printer turns an HTML document into PDF bytes.
type Printer interface {
	PrintPDF(ctx context.Context, html []byte) ([]byte, error)
}

// ExportPDF renders the HTML report and prints it through p.
func ExportPDF(ctx context.Context, w io.Writer, p Printer, snap types.Snapshot, now time.Time) error {
	if p == nil {
		return fmt.Errorf("%w: no printer configured", types.ErrPrint)
	}
	var buf bytes.Buffer
	if err := ExportHTML(&buf, snap, now); err != nil {
		return err
	}
	pdf, err := p.PrintPDF(ctx, buf.Bytes())
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrPrint, err)
	}
	_, err = w.Write(pdf)
	return err
}
