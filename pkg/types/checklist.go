package types

// ChecklistCategory groups checklist items. Category and item ids are fixed
// when the checklist is defined; they are never generated at runtime.
type ChecklistCategory struct {
	ID    int             `json:"id" yaml:"id"`
	Name  string          `json:"category" yaml:"category"`
	Items []ChecklistItem `json:"items" yaml:"items"`
}

// ChecklistItem is a single supply or task on the checklist.
type ChecklistItem struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
	Quantity  int    `json:"quantity" yaml:"quantity"`
}

// Completed returns the number of completed items in the category.
func (c ChecklistCategory) Completed() int {
	n := 0
	for _, it := range c.Items {
		if it.Completed {
			n++
		}
	}
	return n
}

// Item returns the index of the item with the given id, or -1.
func (c ChecklistCategory) Item(id string) int {
	for i, it := range c.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
