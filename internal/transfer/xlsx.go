package transfer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

// sheet is one worksheet of the workbook export.
type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]any
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func workbookSheets(snap types.Snapshot) []sheet {
	family := types.DefaultFamilyInfo
	if snap.FamilyInfo != nil {
		family = *snap.FamilyInfo
	}

	checklist := sheet{name: "Checklist", headers: []string{"Category", "Item", "Quantity", "Status"}, widths: []float64{28, 60, 10, 12}}
	for _, cat := range snap.ChecklistItems {
		for _, it := range cat.Items {
			status := "Pending"
			if it.Completed {
				status = "Completed"
			}
			checklist.rows = append(checklist.rows, []any{cat.Name, it.Text, it.Quantity, status})
		}
	}

	pantry := sheet{name: "Pantry", headers: []string{"Item", "Category", "Quantity", "Unit", "Expiry Date", "Min Quantity", "Notes"}, widths: []float64{24, 18, 10, 10, 14, 14, 40}}
	for _, p := range snap.PantryItems {
		pantry.rows = append(pantry.rows, []any{p.Name, string(p.Category), p.Quantity, p.Unit, p.ExpiryDate, p.MinQuantity, p.Notes})
	}

	contacts := sheet{name: "Contacts", headers: []string{"Name", "Relationship", "Phone", "Email", "Address", "Emergency", "Notes"}, widths: []float64{26, 20, 18, 28, 36, 12, 40}}
	for _, c := range snap.Contacts {
		contacts.rows = append(contacts.rows, []any{c.Name, string(c.Relationship), c.Phone, c.Email, c.Address, yesNo(c.IsEmergencyContact), c.Notes})
	}

	books := sheet{name: "Books", headers: []string{"Title", "Author", "Category", "Location", "Essential", "Notes"}, widths: []float64{32, 24, 16, 20, 12, 40}}
	for _, b := range snap.Books {
		books.rows = append(books.rows, []any{b.Title, b.Author, string(b.Category), b.Location, yesNo(b.IsEssential), b.Notes})
	}

	freqs := sheet{name: "Frequencies", headers: []string{"Frequency", "Description", "Location/Type", "Emergency", "Notes"}, widths: []float64{14, 40, 26, 12, 40}}
	for _, h := range snap.Frequencies {
		freqs.rows = append(freqs.rows, []any{h.Frequency, h.Description, string(h.Location), yesNo(h.IsEmergency), h.Notes})
	}

	docs := sheet{name: "Documents", headers: []string{"Document", "Category", "Location", "Type", "Notes"}, widths: []float64{28, 16, 24, 10, 40}}
	for _, d := range snap.Documents {
		kind := "Physical"
		if d.IsDigital {
			kind = "Digital"
		}
		docs.rows = append(docs.rows, []any{d.Name, string(d.Category), d.Location, kind, d.Notes})
	}

	fam := sheet{name: "Family", headers: []string{"Field", "Value"}, widths: []float64{24, 60}, rows: [][]any{
		{"Adults", family.Adults},
		{"Children", family.Children},
		{"Pets", family.Pets},
		{"Total Family Members", family.Total()},
		{"Special Needs", family.SpecialNeeds},
		{"Location", family.Location},
		{"Emergency Plan", family.EmergencyPlan},
		{"Export Date", snap.ExportDate},
		{"App Version", snap.AppVersion},
	}}

	return []sheet{checklist, pantry, contacts, books, freqs, docs, fam}
}

// ExportXLSX writes an Excel workbook with one sheet per collection plus a
// family sheet.
func ExportXLSX(w io.Writer, snap types.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	// The first sheet takes over the default "Sheet1" so it stays active.
	for i, s := range workbookSheets(snap) {
		if i == 0 {
			err = f.SetSheetName("Sheet1", s.name)
		} else {
			_, err = f.NewSheet(s.name)
		}
		if err != nil {
			return fmt.Errorf("creating sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	for col, header := range s.headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.name, cell, header); err != nil {
			return fmt.Errorf("setting header %s!%s: %w", s.name, cell, err)
		}
		if err := f.SetCellStyle(s.name, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("styling header %s!%s: %w", s.name, cell, err)
		}
	}
	for i, width := range s.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.name, col, col, width); err != nil {
			return fmt.Errorf("setting width %s!%s: %w", s.name, col, err)
		}
	}
	for r, row := range s.rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(s.name, cell, value); err != nil {
				return fmt.Errorf("setting %s!%s: %w", s.name, cell, err)
			}
		}
	}
	return f.SetPanes(s.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
