package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeItem(t *testing.T) {
	cases := []struct {
		item     string
		expected string
	}{
		{"T-Shirts", CategoryClothing},
		{"Hiking shoes", CategoryClothing},
		{"Phone charger", CategoryElectronics},
		{"Power bank", CategoryElectronics},
		{"Toothbrush", CategoryToiletries},
		{"Sunscreen SPF 50", CategoryToiletries},
		{"Passport", CategoryDocuments},
		{"Travel insurance papers", CategoryDocuments},
		{"Pain relief tablets", CategoryHealth},
		{"Prescription medication", CategoryHealth},
		{"Snacks", CategoryMiscellaneous},
		{"", CategoryMiscellaneous},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, CategorizeItem(tc.item), "item %q", tc.item)
	}
}

func TestCategorizeItemCaseInsensitive(t *testing.T) {
	assert.Equal(t, CategorizeItem("PASSPORT"), CategorizeItem("passport"))
	assert.Equal(t, CategorizeItem("Camera"), CategorizeItem("camera"))
}

func TestCategorizeItemDeterministic(t *testing.T) {
	items := []string{"Warm jacket", "Universal adapter", "Shampoo", "Boarding ticket", "Vitamins", "Umbrella"}
	for _, item := range items {
		first := CategorizeItem(item)
		for i := 0; i < 50; i++ {
			assert.Equal(t, first, CategorizeItem(item))
		}
	}
}

func TestCategorizeItemPriorityOrder(t *testing.T) {
	// "phone card" matches electronics before documents.
	assert.Equal(t, CategoryElectronics, CategorizeItem("phone card"))
}
