package services

import "strings"

// Packing categories in match priority order; the first table containing a
// keyword found in the label wins, and an unmatched label falls through to
// miscellaneous.
const (
	CategoryClothing      = "clothing"
	CategoryElectronics   = "electronics"
	CategoryToiletries    = "toiletries"
	CategoryDocuments     = "documents"
	CategoryHealth        = "health"
	CategoryMiscellaneous = "miscellaneous"
)

var packingKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryClothing, []string{
		"cloth", "shirt", "pant", "shoe", "jacket", "dress", "underwear",
		"sock", "hat", "scarf", "glove", "swimsuit", "pajama", "sweater",
	}},
	{CategoryElectronics, []string{
		"phone", "charger", "adapter", "camera", "laptop", "headphone",
		"power", "battery", "cable",
	}},
	{CategoryToiletries, []string{
		"toothbrush", "toothpaste", "shampoo", "soap", "razor", "deodorant",
		"cosmetic", "sunscreen", "lotion", "cream", "makeup", "perfume",
	}},
	{CategoryDocuments, []string{
		"passport", "visa", "ticket", "id", "license", "insurance",
		"itinerary", "booking", "document", "card", "wallet",
	}},
	{CategoryHealth, []string{
		"medicine", "medication", "first aid", "prescription", "bandage",
		"vitamin", "pain relief", "antibiotic", "health",
	}},
}

// CategorizeItem assigns a packing category by case-insensitive substring
// match. Pure and deterministic: the same label always maps to the same
// category.
func CategorizeItem(item string) string {
	lower := strings.ToLower(item)
	for _, table := range packingKeywords {
		for _, keyword := range table.keywords {
			if strings.Contains(lower, keyword) {
				return table.category
			}
		}
	}
	return CategoryMiscellaneous
}
