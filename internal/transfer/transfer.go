// Package transfer moves readykit data in and out: snapshot collection, the
// JSON, CSV, text, HTML, XLSX, YAML and PDF exporters, clipboard copy, and the
// JSON backup importer.
package transfer

import (
	"time"

	"github.com/mesh-intelligence/readykit/internal/app"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

// isoLayout matches JavaScript's Date.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Collect builds a snapshot of everything the app holds, stamped with now.
func Collect(a *app.App, now time.Time) types.Snapshot {
	family := a.FamilyInfo()
	metrics := a.Metrics()
	return types.Snapshot{
		FamilyInfo:      &family,
		ChecklistItems:  a.Checklist.Categories(),
		PantryItems:     a.Pantry.List(),
		Books:           a.Books.List(),
		Contacts:        a.Contacts.List(),
		Frequencies:     a.Frequencies.List(),
		Documents:       a.Documents.List(),
		MetricsSettings: &metrics,
		ExportDate:      now.UTC().Format(isoLayout),
		AppVersion:      types.AppVersion,
	}
}

// Counts is the number of records per collection in a snapshot.
type Counts struct {
	ChecklistItems int `json:"checklistItems"`
	PantryItems    int `json:"pantryItems"`
	Books          int `json:"books"`
	Contacts       int `json:"contacts"`
	Frequencies    int `json:"frequencies"`
	Documents      int `json:"documents"`
}

// CountOf summarizes snap.
func CountOf(snap types.Snapshot) Counts {
	total, _ := snap.ChecklistTotals()
	return Counts{
		ChecklistItems: total,
		PantryItems:    len(snap.PantryItems),
		Books:          len(snap.Books),
		Contacts:       len(snap.Contacts),
		Frequencies:    len(snap.Frequencies),
		Documents:      len(snap.Documents),
	}
}
