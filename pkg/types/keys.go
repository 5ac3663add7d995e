package types

// Store keys. Each key holds one JSON document.
const (
	KeyFamilyInfo      = "familyInfo"
	KeyChecklistItems  = "checklistItems"
	KeyMetricsSettings = "metricsSettings"
	KeyPantryItems     = "pantryItems"
	KeyBooks           = "books"
	KeyContacts        = "emergencyContacts"
	KeyFrequencies     = "frequencies"
	KeyDocuments       = "documents"
	KeyTheme           = "theme"
)

// StandardKeys lists every key readykit reads or writes.
var StandardKeys = []string{
	KeyFamilyInfo,
	KeyChecklistItems,
	KeyMetricsSettings,
	KeyPantryItems,
	KeyBooks,
	KeyContacts,
	KeyFrequencies,
	KeyDocuments,
	KeyTheme,
}
