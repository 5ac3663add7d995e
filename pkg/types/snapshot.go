package types

// AppVersion is stamped on every exported snapshot.
const AppVersion = "1.1.0"

// Snapshot is the complete persisted state at one point in time; the unit of
// import and export. Nil pointers and nil slices mean the field was absent
// from an imported document.
type Snapshot struct {
	FamilyInfo      *FamilyInfo         `json:"familyInfo" yaml:"family_info"`
	ChecklistItems  []ChecklistCategory `json:"checklistItems" yaml:"checklist_items"`
	PantryItems     []PantryItem        `json:"pantryItems" yaml:"pantry_items"`
	Books           []Book              `json:"books" yaml:"books"`
	Contacts        []EmergencyContact  `json:"contacts" yaml:"contacts"`
	Frequencies     []HamFrequency      `json:"frequencies" yaml:"frequencies"`
	Documents       []Document          `json:"documents" yaml:"documents"`
	MetricsSettings *MetricsSettings    `json:"metricsSettings" yaml:"metrics_settings"`
	ExportDate      string              `json:"exportDate" yaml:"export_date"`
	AppVersion      string              `json:"appVersion" yaml:"app_version"`
}

// ChecklistTotals returns the total and completed item counts over every
// category.
func (s Snapshot) ChecklistTotals() (total, completed int) {
	for _, c := range s.ChecklistItems {
		total += len(c.Items)
		completed += c.Completed()
	}
	return total, completed
}
