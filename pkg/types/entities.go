package types

// Entity is implemented by every record held in an id-keyed collection.
type Entity interface {
	EntityID() string
}

// PantryItem is a stocked food or supply item with an expiry date.
type PantryItem struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Category    PantryCategory `json:"category" yaml:"category"`
	Quantity    float64        `json:"quantity" yaml:"quantity"`
	Unit        string         `json:"unit" yaml:"unit"`
	ExpiryDate  string         `json:"expiryDate" yaml:"expiry_date"` // YYYY-MM-DD
	MinQuantity float64        `json:"minQuantity" yaml:"min_quantity"`
	Notes       string         `json:"notes" yaml:"notes"`
}

func (p PantryItem) EntityID() string { return p.ID }
func (p *PantryItem) SetEntityID(id string) { p.ID = id }

// EmergencyContact is a person or service to reach during an emergency.
type EmergencyContact struct {
	ID                 string              `json:"id" yaml:"id"`
	Name               string              `json:"name" yaml:"name"`
	Relationship       ContactRelationship `json:"relationship" yaml:"relationship"`
	Phone              string              `json:"phone" yaml:"phone"`
	Email              string              `json:"email" yaml:"email"`
	Address            string              `json:"address" yaml:"address"`
	IsEmergencyContact bool                `json:"isEmergencyContact" yaml:"is_emergency_contact"`
	Notes              string              `json:"notes" yaml:"notes"`
}

func (c EmergencyContact) EntityID() string { return c.ID }
func (c *EmergencyContact) SetEntityID(id string) { c.ID = id }

// Book is a reference book kept for preparedness.
type Book struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Author      string       `json:"author" yaml:"author"`
	Category    BookCategory `json:"category" yaml:"category"`
	Location    string       `json:"location" yaml:"location"`
	IsEssential bool         `json:"isEssential" yaml:"is_essential"`
	Notes       string       `json:"notes" yaml:"notes"`
}

func (b Book) EntityID() string { return b.ID }
func (b *Book) SetEntityID(id string) { b.ID = id }

// HamFrequency is a radio frequency worth monitoring. Frequency is free text
// such as "146.52 MHz".
type HamFrequency struct {
	ID          string      `json:"id" yaml:"id"`
	Frequency   string      `json:"frequency" yaml:"frequency"`
	Description string      `json:"description" yaml:"description"`
	Location    HamLocation `json:"location" yaml:"location"`
	Notes       string      `json:"notes" yaml:"notes"`
	IsEmergency bool        `json:"isEmergency" yaml:"is_emergency"`
}

func (h HamFrequency) EntityID() string { return h.ID }
func (h *HamFrequency) SetEntityID(id string) { h.ID = id }

// Document records where an important document is kept.
type Document struct {
	ID        string           `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	Category  DocumentCategory `json:"category" yaml:"category"`
	Location  string           `json:"location" yaml:"location"`
	IsDigital bool             `json:"isDigital" yaml:"is_digital"`
	Notes     string           `json:"notes" yaml:"notes"`
}

func (d Document) EntityID() string { return d.ID }
func (d *Document) SetEntityID(id string) { d.ID = id }
