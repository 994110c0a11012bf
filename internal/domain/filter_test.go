package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []Product {
	return []Product{
		{ID: "1", Name: "Milano 3-Seater Sofa", Description: "Plush fabric sofa", Price: 45999, Category: "Living Room Furniture", Subcategory: "Seating", ItemType: "Sofas (3-seater)", Rating: 4.6},
		{ID: "2", Name: "Oslo L-Shaped Sofa", Description: "Modular sofa", Price: 78499, Category: "Living Room Furniture", Subcategory: "Seating", ItemType: "L-Shaped Sofas", Rating: 4.8},
		{ID: "3", Name: "Walnut Coffee Table", Description: "Mid-century table", Price: 12499, Category: "Living Room Furniture", Subcategory: "Tables", ItemType: "Coffee Tables", Rating: 4.5},
		{ID: "4", Name: "Aurora King Bed", Description: "Upholstered bed", Price: 64999, Category: "Bedroom Furniture", Subcategory: "Beds", ItemType: "Hydraulic Storage Beds", Rating: 4.7},
		{ID: "5", Name: "Arched Floor Mirror", Description: "Full-length mirror", Price: 11999, Category: "Interior & Decor Products", Rating: 4.4},
	}
}

func TestFilterProducts_NoFiltersMatchesAll(t *testing.T) {
	products := testProducts()

	got := FilterProducts(products, NewFilterState())

	require.Len(t, got, len(products))
	for i := range products {
		assert.Equal(t, products[i].ID, got[i].ID)
	}
}

func TestFilterProducts_Search(t *testing.T) {
	products := testProducts()

	f := NewFilterState()
	f.SearchQuery = "Sofa"

	got := FilterProducts(products, f)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestFilterProducts_SearchMatchesDescription(t *testing.T) {
	products := testProducts()

	f := NewFilterState()
	f.SearchQuery = "mid-century"

	got := FilterProducts(products, f)

	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestFilterProducts_DimensionsCombineWithAnd(t *testing.T) {
	products := testProducts()

	f := NewFilterState()
	f.Categories = []string{"Living Room Furniture"}
	f.Subcategories = []string{"Seating"}

	got := FilterProducts(products, f)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestFilterProducts_ValuesWithinDimensionCombineWithOr(t *testing.T) {
	products := testProducts()

	f := NewFilterState()
	f.Categories = []string{"Bedroom Furniture", "Interior & Decor Products"}

	got := FilterProducts(products, f)

	require.Len(t, got, 2)
	assert.Equal(t, "4", got[0].ID)
	assert.Equal(t, "5", got[1].ID)
}

func TestFilterProducts_OptionalFieldFailsActiveFilter(t *testing.T) {
	products := testProducts()

	// У зеркала не заданы subcategory и itemType: активный фильтр
	// по этим измерениям его отсеивает.
	f := NewFilterState()
	f.Subcategories = []string{"Decor"}

	got := FilterProducts(products, f)
	assert.Empty(t, got)
}

func TestFilterProducts_PriceRange(t *testing.T) {
	products := testProducts()

	f := NewFilterState()
	f.PriceMin = 12000
	f.PriceMax = 50000

	got := FilterProducts(products, f)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilterProducts_PriceBoundsInclusive(t *testing.T) {
	products := testProducts()

	f := NewFilterState()
	f.PriceMin = 45999
	f.PriceMax = 45999

	got := FilterProducts(products, f)

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestSortProducts(t *testing.T) {
	products := testProducts()

	tests := []struct {
		key      SortKey
		expected []string
	}{
		{SortFeatured, []string{"1", "2", "3", "4", "5"}},
		{SortPriceLow, []string{"5", "3", "1", "4", "2"}},
		{SortPriceHigh, []string{"2", "4", "1", "3", "5"}},
		{SortRating, []string{"2", "4", "1", "3", "5"}},
		{SortName, []string{"5", "4", "1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := SortProducts(products, tt.key)

			require.Len(t, got, len(tt.expected))
			for i, id := range tt.expected {
				assert.Equal(t, id, got[i].ID)
			}
		})
	}
}

func TestSortProducts_StableOnEqualKeys(t *testing.T) {
	products := []Product{
		{ID: "a", Name: "A", Price: 100},
		{ID: "b", Name: "B", Price: 100},
		{ID: "c", Name: "C", Price: 100},
	}

	got := SortProducts(products, SortPriceLow)

	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestSortProducts_DoesNotMutateInput(t *testing.T) {
	products := testProducts()

	_ = SortProducts(products, SortPriceLow)

	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "5", products[4].ID)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceLow, ParseSortKey("price-low"))
	assert.Equal(t, SortName, ParseSortKey("name"))
	assert.Equal(t, SortFeatured, ParseSortKey(""))
	assert.Equal(t, SortFeatured, ParseSortKey("cheapest"))
}
