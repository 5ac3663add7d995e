package repo

import "github.com/mesh-intelligence/readykit/pkg/types"

// Seed data shown until the user saves their own list. Each function returns
// a fresh slice so callers may mutate it.

func defaultPantry() []types.PantryItem {
	return []types.PantryItem{
		{ID: "1", Name: "Canned Beans", Category: types.PantryCannedGoods, Quantity: 6, Unit: "cans", ExpiryDate: "2025-06-15", MinQuantity: 2, Notes: "Black beans and kidney beans for protein"},
		{ID: "2", Name: "Rice", Category: types.PantryGrainsPasta, Quantity: 10, Unit: "pounds", ExpiryDate: "2026-03-20", MinQuantity: 5, Notes: "Long grain white rice"},
		{ID: "3", Name: "Bottled Water", Category: types.PantryBeverages, Quantity: 24, Unit: "bottles", ExpiryDate: "2025-12-01", MinQuantity: 12, Notes: "16.9 oz bottles"},
		{ID: "4", Name: "Protein Bars", Category: types.PantrySnacks, Quantity: 8, Unit: "bars", ExpiryDate: "2024-11-30", MinQuantity: 4, Notes: "High protein emergency food"},
		{ID: "5", Name: "Canned Tuna", Category: types.PantryCannedGoods, Quantity: 4, Unit: "cans", ExpiryDate: "2025-08-10", MinQuantity: 2, Notes: "Albacore tuna in water"},
		{ID: "6", Name: "Peanut Butter", Category: types.PantryCondiments, Quantity: 2, Unit: "jars", ExpiryDate: "2025-02-15", MinQuantity: 1, Notes: "Natural peanut butter"},
		{ID: "7", Name: "Crackers", Category: types.PantrySnacks, Quantity: 3, Unit: "boxes", ExpiryDate: "2024-12-20", MinQuantity: 1, Notes: "Saltine crackers"},
		{ID: "8", Name: "Canned Vegetables", Category: types.PantryCannedGoods, Quantity: 8, Unit: "cans", ExpiryDate: "2025-07-05", MinQuantity: 4, Notes: "Mixed vegetables and corn"},
	}
}

func defaultContacts() []types.EmergencyContact {
	return []types.EmergencyContact{
		{ID: "1", Name: "Local Police Department", Relationship: types.RelEmergencyServices, Phone: "911", Address: "Local jurisdiction", IsEmergencyContact: true, Notes: "Primary emergency contact for law enforcement"},
		{ID: "2", Name: "Local Fire Department", Relationship: types.RelEmergencyServices, Phone: "911", Address: "Local jurisdiction", IsEmergencyContact: true, Notes: "Primary emergency contact for fire and rescue"},
		{ID: "3", Name: "Nearest Hospital", Relationship: types.RelMedical, Phone: "(555) 123-4567", Address: "123 Medical Center Dr, City, State", IsEmergencyContact: true, Notes: "Nearest emergency medical facility"},
		{ID: "4", Name: "Family Doctor", Relationship: types.RelMedical, Phone: "(555) 234-5678", Email: "doctor@medicalclinic.com", Address: "456 Health Ave, City, State", Notes: "Primary care physician"},
	}
}

func defaultBooks() []types.Book {
	return []types.Book{
		{ID: "1", Title: "SAS Survival Handbook", Author: `John "Lofty" Wiseman`, Category: types.BookSurvival, Location: "Home library", IsEssential: true, Notes: "Comprehensive survival guide covering wilderness, urban, and disaster scenarios"},
		{ID: "2", Title: "Where There Is No Doctor", Author: "David Werner", Category: types.BookMedical, Location: "Home library", IsEssential: true, Notes: "Essential medical guide for when professional help is unavailable"},
	}
}

func defaultFrequencies() []types.HamFrequency {
	return []types.HamFrequency{
		{ID: "1", Frequency: "146.52 MHz", Description: "National Calling Frequency (2m) - FM", Location: types.HamEmergencyComms, Notes: "Primary emergency calling frequency for 2-meter band", IsEmergency: true},
		{ID: "2", Frequency: "446.00 MHz", Description: "National Calling Frequency (70cm) - FM", Location: types.HamEmergencyComms, Notes: "Primary emergency calling frequency for 70cm band", IsEmergency: true},
	}
}
