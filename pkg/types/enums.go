package types

// PantryCategory classifies pantry items.
type PantryCategory string

const (
	PantryCannedGoods    PantryCategory = "Canned Goods"
	PantryGrainsPasta    PantryCategory = "Grains & Pasta"
	PantryBeverages      PantryCategory = "Beverages"
	PantrySnacks         PantryCategory = "Snacks"
	PantryCondiments     PantryCategory = "Condiments"
	PantryBakingSupplies PantryCategory = "Baking Supplies"
	PantryFrozenFoods    PantryCategory = "Frozen Foods"
	PantryOther          PantryCategory = "Other"
)

var PantryCategories = []PantryCategory{
	PantryCannedGoods, PantryGrainsPasta, PantryBeverages, PantrySnacks,
	PantryCondiments, PantryBakingSupplies, PantryFrozenFoods, PantryOther,
}

// ContactRelationship classifies emergency contacts.
type ContactRelationship string

const (
	RelEmergencyServices ContactRelationship = "Emergency Services"
	RelMedical           ContactRelationship = "Medical"
	RelNeighbor          ContactRelationship = "Neighbor"
	RelWork              ContactRelationship = "Work"
	RelInsurance         ContactRelationship = "Insurance"
	RelUtilities         ContactRelationship = "Utilities"
	RelFamily            ContactRelationship = "Family"
	RelFriend            ContactRelationship = "Friend"
	RelSpouse            ContactRelationship = "Spouse"
	RelParent            ContactRelationship = "Parent"
	RelChild             ContactRelationship = "Child"
	RelSibling           ContactRelationship = "Sibling"
	RelDoctor            ContactRelationship = "Doctor"
	RelLawyer            ContactRelationship = "Lawyer"
	RelInsuranceAgent    ContactRelationship = "Insurance Agent"
	RelWorkContact       ContactRelationship = "Work Contact"
	RelOther             ContactRelationship = "Other"
)

var ContactRelationships = []ContactRelationship{
	RelEmergencyServices, RelMedical, RelNeighbor, RelWork, RelInsurance,
	RelUtilities, RelFamily, RelFriend, RelSpouse, RelParent, RelChild,
	RelSibling, RelDoctor, RelLawyer, RelInsuranceAgent, RelWorkContact, RelOther,
}

// BookCategory classifies books.
type BookCategory string

const (
	BookMedical       BookCategory = "Medical"
	BookSurvival      BookCategory = "Survival"
	BookFoodStorage   BookCategory = "Food Storage"
	BookPreparedness  BookCategory = "Preparedness"
	BookHomesteading  BookCategory = "Homesteading"
	BookNavigation    BookCategory = "Navigation"
	BookSelfDefense   BookCategory = "Self-Defense"
	BookCommunication BookCategory = "Communication"
	BookOther         BookCategory = "Other"
)

var BookCategories = []BookCategory{
	BookMedical, BookSurvival, BookFoodStorage, BookPreparedness,
	BookHomesteading, BookNavigation, BookSelfDefense, BookCommunication, BookOther,
}

// DocumentCategory classifies documents.
type DocumentCategory string

const (
	DocPersonalID DocumentCategory = "Personal ID"
	DocFinancial  DocumentCategory = "Financial"
	DocMedical    DocumentCategory = "Medical"
	DocInsurance  DocumentCategory = "Insurance"
	DocLegal      DocumentCategory = "Legal"
	DocProperty   DocumentCategory = "Property"
	DocEducation  DocumentCategory = "Education"
	DocOther      DocumentCategory = "Other"
)

var DocumentCategories = []DocumentCategory{
	DocPersonalID, DocFinancial, DocMedical, DocInsurance,
	DocLegal, DocProperty, DocEducation, DocOther,
}

// HamLocation is the kind of station or band a frequency belongs to.
type HamLocation string

const (
	HamEmergencyComms HamLocation = "Emergency Communications"
	HamLocalRepeater  HamLocation = "Local Repeater"
	HamLongDistance   HamLocation = "Long Distance"
	HamWeather        HamLocation = "Weather"
	HamOther          HamLocation = "Other"
)

var HamLocations = []HamLocation{
	HamEmergencyComms, HamLocalRepeater, HamLongDistance, HamWeather, HamOther,
}

// oneOf reports whether v is in set.
func oneOf[S ~string](v S, set []S) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ValidPantryCategory reports whether c is a known pantry category.
func ValidPantryCategory(c PantryCategory) bool { return oneOf(c, PantryCategories) }

// ValidRelationship reports whether r is a known contact relationship.
func ValidRelationship(r ContactRelationship) bool { return oneOf(r, ContactRelationships) }

// ValidBookCategory reports whether c is a known book category.
func ValidBookCategory(c BookCategory) bool { return oneOf(c, BookCategories) }

// ValidDocumentCategory reports whether c is a known document category.
func ValidDocumentCategory(c DocumentCategory) bool { return oneOf(c, DocumentCategories) }

// ValidHamLocation reports whether l is a known frequency location type.
func ValidHamLocation(l HamLocation) bool { return oneOf(l, HamLocations) }
