package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedProducts(t *testing.T) {
	products := SeedProducts()

	require.Len(t, products, 15)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.Greater(t, p.Price, int64(0))
	}
}

func TestFilterProducts(t *testing.T) {
	products := SeedProducts()

	tests := []struct {
		name     string
		search   string
		category string
		check    func(t *testing.T, got []Product)
	}{
		{
			name: "no filters returns everything",
			check: func(t *testing.T, got []Product) {
				assert.Len(t, got, len(products))
			},
		},
		{
			name:     "category all returns everything",
			category: "all",
			check: func(t *testing.T, got []Product) {
				assert.Len(t, got, len(products))
			},
		},
		{
			name:     "category filter",
			category: "Camping",
			check: func(t *testing.T, got []Product) {
				require.NotEmpty(t, got)
				for _, p := range got {
					assert.Equal(t, "Camping", p.Category)
				}
			},
		},
		{
			name:   "search is case insensitive",
			search: "BACKPACK",
			check: func(t *testing.T, got []Product) {
				require.NotEmpty(t, got)
			},
		},
		{
			name:   "search matches descriptions too",
			search: "waterproof",
			check: func(t *testing.T, got []Product) {
				require.NotEmpty(t, got)
			},
		},
		{
			name:   "search with no matches",
			search: "snowmobile",
			check: func(t *testing.T, got []Product) {
				assert.Empty(t, got)
			},
		},
		{
			name:     "search and category combine",
			search:   "tent",
			category: "Camping",
			check: func(t *testing.T, got []Product) {
				for _, p := range got {
					assert.Equal(t, "Camping", p.Category)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, filterProducts(products, tt.search, tt.category))
		})
	}
}

func TestPaginate(t *testing.T) {
	products := SeedProducts()
	require.Len(t, products, 15)

	t.Run("first page is full", func(t *testing.T) {
		page, p := paginate(products, 1, 8)
		assert.Len(t, page, 8)
		assert.Equal(t, 15, p.Total)
		assert.Equal(t, 2, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		page, p := paginate(products, 2, 8)
		assert.Len(t, page, 7)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("out of range page is empty", func(t *testing.T) {
		page, p := paginate(products, 5, 8)
		assert.Empty(t, page)
		assert.Equal(t, 5, p.Page)
		assert.False(t, p.HasNext)
	})

	t.Run("page below one is clamped", func(t *testing.T) {
		page, p := paginate(products, 0, 8)
		assert.Len(t, page, 8)
		assert.Equal(t, 1, p.Page)
	})

	t.Run("empty set", func(t *testing.T) {
		page, p := paginate(nil, 1, 8)
		assert.Empty(t, page)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})
}

func TestCategoriesOf(t *testing.T) {
	products := []Product{
		{ID: "1", Category: "Hiking"},
		{ID: "2", Category: "Camping"},
		{ID: "3", Category: "Hiking"},
		{ID: "4", Category: "Climbing"},
	}

	assert.Equal(t, []string{"Hiking", "Camping", "Climbing"}, categoriesOf(products))
}

func TestGetFormattedPrice(t *testing.T) {
	p := Product{Price: 12999}
	assert.InDelta(t, 129.99, p.GetFormattedPrice(), 0.001)
}

func TestIsInStock(t *testing.T) {
	inStock := Product{Stock: 3}
	outOfStock := Product{Stock: 0}
	assert.True(t, inStock.IsInStock())
	assert.False(t, outOfStock.IsInStock())
}
