package repo

import (
	"fmt"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

// items builds a category's items with ids prefix-1, prefix-2, ... Every item
// starts incomplete with quantity 1.
func items(prefix string, texts ...string) []types.ChecklistItem {
	out := make([]types.ChecklistItem, len(texts))
	for i, text := range texts {
		out[i] = types.ChecklistItem{ID: fmt.Sprintf("%s-%d", prefix, i+1), Text: text, Quantity: 1}
	}
	return out
}

// defaultChecklist returns a fresh copy of the built-in checklist.
func defaultChecklist() []types.ChecklistCategory {
	return []types.ChecklistCategory{
		{ID: 1, Name: "Water & Hydration", Items: items("water",
			"Water",
			"Water filter",
			"Water purification tablet",
			"Distilled water",
			"Water bottle",
			"Foldable water bottle",
			"Kettle",
			"Thermos",
		)},
		{ID: 2, Name: "Food & Nutrition", Items: items("food",
			"Salt",
			"Sugar",
			"Baby food",
			"Dry fruits",
			"Spices",
			"Baking soda",
			"Preserves",
			"Biscuit",
			"Protein bar",
			"Mixed nuts",
			"NRG-5 food ration",
			"Cooking utensils",
			"Animal foods",
		)},
		{ID: 3, Name: "Medical & First Aid", Items: items("medical",
			"Medical adhesive tape",
			"Bandages",
			"Eye pads",
			"Waterproof band-aid",
			"Thermometer",
			"Medicine box",
			"Safety pin",
			"Disinfectant spray",
			"Oral thermometer",
			"Tweezers",
			"Antiseptics",
			"Eye drops",
			"Aspirin",
			"Hot compress",
			"Cold compress",
			"Burn cream",
			"Wrist splint",
			"Painkiller",
			"Necessary medicines",
			"Diarrhea medication",
			"Antihistamine tablets",
			"Antibiotics",
			"CPR Mask",
			"Elastic bandage",
			"Skin rash cream",
			"Tourniquet strap",
			"Medical mask",
			"Sterile gloves",
			"Sterile gauze pads",
			"Wound healing creme",
			"Vitamins",
			"First aid scissors",
			"First aid booklet",
			"Antiseptic wipes",
		)},
		{ID: 4, Name: "Tools & Equipment", Items: items("tools",
			"Duct tape",
			"Gas mask",
			"Battery",
			"Lighter",
			"Whistle",
			"Firesteel",
			"Work gloves",
			"Portable pickaxe",
			"Razor blade",
			"Carabiner clips",
			"Pocket knife",
			"Watch",
			"Fishing gear",
			"Pen",
			"Screwdriver set",
			"Outdoor saw",
			"Plastic handcuff",
			"Rope",
			"Scissors",
			"Nail scissors",
			"Sewing kit",
			"Geiger counter",
			"Gas mask NBC filter",
			"Compass",
			"Map",
			"Tent",
			"Helmet",
			"Backpack",
			"Life vest",
		)},
		{ID: 5, Name: "Electronics & Communication", Items: items("electronics",
			"Phone charger",
			"USB battery",
			"Portable solar panel",
			"USB cooler/heater",
			"Dumb phone",
			"USB memory stick",
			"Starlink",
			"Powerbank",
			"Headlamp",
			"Headphone",
			"Radio",
			"HAM Radio",
			"Flashlight (battery/dynamo/USB)",
			"Candle",
			"Matches",
		)},
		{ID: 6, Name: "Personal Care & Hygiene", Items: items("hygiene",
			"Wet wipes",
			"T-shirt",
			"Towel",
			"Shampoo",
			"Hair comb",
			"Trousers",
			"Seasonal clothes",
			"Toothpaste",
			"Toothbrush",
			"Sneakers",
			"Socks",
			"Soap",
			"Underwear",
			"Protective clothes",
			"Dust mask",
			"Safety Glasses",
			"Sunglasses",
			"Sanitary pads",
			"Contact lenses",
			"Glasses",
			"Hair washing bonnet",
			"Toilet paper",
			"Garbage bag",
			"Laundry bag",
			"Alcohol wipes",
			"Insect repellent spray",
		)},
		{ID: 7, Name: "Shelter & Comfort", Items: items("shelter",
			"Blanket",
			"Mat",
			"Hand warmer",
			"Cotton",
			"Sleeping bag",
			"CVS cups",
			"Inflatable bed",
			"Pillow",
			"Sleeping mat",
			"Thermal blanket",
			"Raincoat",
		)},
		{ID: 8, Name: "Documents & Money", Items: items("docs",
			"Banknotes and coins",
			"Printed deed",
			"Printed military discharge certificate",
			"Printed diploma",
			"Printed copy of passport",
			"Printed headshot photos",
			"Printed driving license",
			"Printed identity card",
			"Printed insurance papers",
			"Wallet",
			"House keys",
			"Contacts list",
			"Notebook",
			"Jewelry",
			"Gold and silver",
		)},
		{ID: 9, Name: "Special Items", Items: items("special",
			"Baby items",
			"Diapers",
			"Prostheses",
			"Baby clothes",
			"Mirror",
		)},
		{ID: 10, Name: "Disaster Preparedness", Items: items("prep",
			"Emergency kit - Include water, non-perishable food, first-aid supplies, flashlights, batteries, powerbank, HAM radio, clothes, and important documents (digital and physical)",
			"Communication plan - Establish how family members will contact each other and where to meet in case of separation",
			"Evacuation routes - Familiarize yourself with multiple ways to leave your area safely",
			"Prepare home - Secure loose outdoor items, trim trees, and reinforce windows and doors as needed",
			"Stay informed - Have a battery-powered or hand-crank radio to receive emergency broadcasts. Alternatively, use HAM radio to communicate",
			"Insurance coverage - Ensure your insurance policies adequately cover potential disasters in your area",
			"Emergency skills - Take courses in first aid, CPR, and how to use a fire extinguisher",
			"Consider special needs - Plan for family members with disabilities, elderly relatives, or pets",
			"Valuable possessions - Create an inventory for insurance purposes",
			"Practice your plan - Conduct regular drills with your family to ensure everyone knows what to do",
		)},
	}
}
