package catalog

import (
	"brokerage-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []models.Offering {
	return BuildCatalog([]models.ServiceEntry{
		{Key: "auto", Title: "Auto Insurance", Blurb: "Liability, comp & collision, SR-22 support, and multi-car discounts."},
		{Key: "home", Title: "Home & Renters", Blurb: "Protect dwelling, belongings, and liability with right-sized coverage."},
		{Key: "life", Title: "Life Insurance", Blurb: "Term & whole life options that protect your family's future."},
		{Key: "commercial", Title: "Commercial", Blurb: "General liability, BOP, commercial auto, and workers' comp."},
		{Key: "moto", Title: "Motorcycle", Blurb: "Coverage for riders with gear and accessory protection."},
	}, nil)
}

func TestFilterOfferings(t *testing.T) {
	offerings := filterFixture()

	t.Run("empty term returns the whole category partition", func(t *testing.T) {
		result := FilterOfferings(offerings, models.CategoryPersonal, "")
		assert.Len(t, result, 3)
		assert.Equal(t, "auto", result[0].ID)
		assert.Equal(t, "home", result[1].ID)
		assert.Equal(t, "life", result[2].ID)
	})

	t.Run("whitespace only term behaves like an empty term", func(t *testing.T) {
		result := FilterOfferings(offerings, models.CategoryPersonal, "   ")
		assert.Len(t, result, 3)
	})

	t.Run("matching is case-insensitive on the display name", func(t *testing.T) {
		result := FilterOfferings(offerings, models.CategoryPersonal, "AUTO")
		assert.Len(t, result, 1)
		assert.Equal(t, "auto", result[0].ID)
	})

	t.Run("descriptions are searched too", func(t *testing.T) {
		result := FilterOfferings(offerings, models.CategoryPersonal, "sr-22")
		assert.Len(t, result, 1)
		assert.Equal(t, "auto", result[0].ID)
	})

	t.Run("term is trimmed before matching", func(t *testing.T) {
		result := FilterOfferings(offerings, models.CategoryPersonal, "  life  ")
		assert.Len(t, result, 1)
		assert.Equal(t, "life", result[0].ID)
	})

	t.Run("only the requested category is searched", func(t *testing.T) {
		// "liability" appears in Personal and Business blurbs.
		result := FilterOfferings(offerings, models.CategoryBusiness, "liability")
		assert.Len(t, result, 1)
		assert.Equal(t, "commercial", result[0].ID)
	})

	t.Run("no match yields an empty slice", func(t *testing.T) {
		result := FilterOfferings(offerings, models.CategorySpecialty, "umbrella")
		assert.Empty(t, result)
	})

	t.Run("authored order is preserved", func(t *testing.T) {
		result := FilterOfferings(offerings, models.CategoryPersonal, "insurance")
		assert.Equal(t, []string{result[0].ID, result[1].ID}, []string{"auto", "life"})
	})
}
