package types

// Patch types carry partial updates. A nil field leaves the existing value in
// place; a non-nil field overwrites it.

// PantryItemPatch is a partial update for a PantryItem.
type PantryItemPatch struct {
	Name        *string
	Category    *PantryCategory
	Quantity    *float64
	Unit        *string
	ExpiryDate  *string
	MinQuantity *float64
	Notes       *string
}

// Apply merges the set fields of p into it.
func (p PantryItemPatch) Apply(it *PantryItem) {
	set(&it.Name, p.Name)
	set(&it.Category, p.Category)
	set(&it.Quantity, p.Quantity)
	set(&it.Unit, p.Unit)
	set(&it.ExpiryDate, p.ExpiryDate)
	set(&it.MinQuantity, p.MinQuantity)
	set(&it.Notes, p.Notes)
}

// ContactPatch is a partial update for an EmergencyContact.
type ContactPatch struct {
	Name               *string
	Relationship       *ContactRelationship
	Phone              *string
	Email              *string
	Address            *string
	IsEmergencyContact *bool
	Notes              *string
}

// Apply merges the set fields of p into c.
func (p ContactPatch) Apply(c *EmergencyContact) {
	set(&c.Name, p.Name)
	set(&c.Relationship, p.Relationship)
	set(&c.Phone, p.Phone)
	set(&c.Email, p.Email)
	set(&c.Address, p.Address)
	set(&c.IsEmergencyContact, p.IsEmergencyContact)
	set(&c.Notes, p.Notes)
}

// BookPatch is a partial update for a Book.
type BookPatch struct {
	Title       *string
	Author      *string
	Category    *BookCategory
	Location    *string
	IsEssential *bool
	Notes       *string
}

// Apply merges the set fields of p into b.
func (p BookPatch) Apply(b *Book) {
	set(&b.Title, p.Title)
	set(&b.Author, p.Author)
	set(&b.Category, p.Category)
	set(&b.Location, p.Location)
	set(&b.IsEssential, p.IsEssential)
	set(&b.Notes, p.Notes)
}

// FrequencyPatch is a partial update for a HamFrequency.
type FrequencyPatch struct {
	Frequency   *string
	Description *string
	Location    *HamLocation
	Notes       *string
	IsEmergency *bool
}

// Apply merges the set fields of p into h.
func (p FrequencyPatch) Apply(h *HamFrequency) {
	set(&h.Frequency, p.Frequency)
	set(&h.Description, p.Description)
	set(&h.Location, p.Location)
	set(&h.Notes, p.Notes)
	set(&h.IsEmergency, p.IsEmergency)
}

// DocumentPatch is a partial update for a Document.
type DocumentPatch struct {
	Name      *string
	Category  *DocumentCategory
	Location  *string
	IsDigital *bool
	Notes     *string
}

// Apply merges the set fields of p into d.
func (p DocumentPatch) Apply(d *Document) {
	set(&d.Name, p.Name)
	set(&d.Category, p.Category)
	set(&d.Location, p.Location)
	set(&d.IsDigital, p.IsDigital)
	set(&d.Notes, p.Notes)
}

// FamilyInfoPatch is a partial update for FamilyInfo.
type FamilyInfoPatch struct {
	Adults        *int
	Children      *int
	Pets          *int
	SpecialNeeds  *string
	Location      *string
	EmergencyPlan *string
}

// Apply merges the set fields of p into f.
func (p FamilyInfoPatch) Apply(f *FamilyInfo) {
	set(&f.Adults, p.Adults)
	set(&f.Children, p.Children)
	set(&f.Pets, p.Pets)
	set(&f.SpecialNeeds, p.SpecialNeeds)
	set(&f.Location, p.Location)
	set(&f.EmergencyPlan, p.EmergencyPlan)
}

// MetricsSettingsPatch is a partial update for MetricsSettings.
type MetricsSettingsPatch struct {
	Volume      *string
	Weight      *string
	Temperature *string
	Distance    *string
}

// Apply merges the set fields of p into m.
func (p MetricsSettingsPatch) Apply(m *MetricsSettings) {
	set(&m.Volume, p.Volume)
	set(&m.Weight, p.Weight)
	set(&m.Temperature, p.Temperature)
	set(&m.Distance, p.Distance)
}

func set[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

// Ptr returns a pointer to v. Handy for building patches.
func Ptr[V any](v V) *V { return &v }
