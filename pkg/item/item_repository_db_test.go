package item

import (
	"context"
	"testing"

	"HomeStash-Backend/domain"
	"HomeStash-Backend/entities"
	"HomeStash-Backend/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDBRepository(t *testing.T) (ItemRepository, *gorm.DB) {
	t.Helper()
	db := testdb.SetupTestDB(t)
	testdb.Reset(t, db)
	return NewItemRepository(db), db
}

func seedLocation(t *testing.T, db *gorm.DB, name, room string) *entities.StorageLocation {
	t.Helper()
	loc := &entities.StorageLocation{Name: name, Room: room}
	require.NoError(t, db.Create(loc).Error)
	return loc
}

func seedItem(t *testing.T, db *gorm.DB, it *entities.Item) *entities.Item {
	t.Helper()
	require.NoError(t, db.Create(it).Error)
	return it
}

func strPtr(s string) *string {
	return &s
}

func TestItemRepositoryFindItemsSearchIsCaseInsensitive(t *testing.T) {
	repo, db := newDBRepository(t)
	ctx := context.Background()

	pantry := seedLocation(t, db, "Kitchen Pantry", "Kitchen")
	seedItem(t, db, &entities.Item{Name: "Canned Tomatoes", Category: "Canned Goods", Quantity: 4, StorageLocationID: pantry.ID})
	seedItem(t, db, &entities.Item{Name: "Pasta", Category: "Dry Goods", Quantity: 2, StorageLocationID: pantry.ID})
	seedItem(t, db, &entities.Item{
		Name: "Olive Oil", Category: "Condiments", Quantity: 1,
		StorageLocationID: pantry.ID, Notes: strPtr("for tomato sauce"),
	})

	testCases := []struct {
		name     string
		search   string
		expected []string
	}{
		{name: "lowercase matches name and notes", search: "tomato", expected: []string{"Canned Tomatoes", "Olive Oil"}},
		{name: "uppercase matches the same rows", search: "TOMATO", expected: []string{"Canned Tomatoes", "Olive Oil"}},
		{name: "mixed case matches category", search: "dRy GoOdS", expected: []string{"Pasta"}},
		{name: "no match", search: "batteries", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found, err := repo.FindItems(ctx, domain.ItemFilter{Search: tc.search, SortBy: "name", SortOrder: "asc"})
			require.NoError(t, err)

			names := make([]string, 0, len(found))
			for _, it := range found {
				names = append(names, it.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestItemRepositoryFindItemsFiltersByCategoryAndLocation(t *testing.T) {
	repo, db := newDBRepository(t)
	ctx := context.Background()

	pantry := seedLocation(t, db, "Kitchen Pantry", "Kitchen")
	shelf := seedLocation(t, db, "Garage Shelf 1", "Garage")
	seedItem(t, db, &entities.Item{Name: "Canned Tomatoes", Category: "Canned Goods", Quantity: 4, StorageLocationID: pantry.ID})
	seedItem(t, db, &entities.Item{Name: "Canned Beans", Category: "Canned Goods", Quantity: 2, StorageLocationID: shelf.ID})
	seedItem(t, db, &entities.Item{Name: "Pasta", Category: "Dry Goods", Quantity: 2, StorageLocationID: pantry.ID})

	byCategory, err := repo.FindItems(ctx, domain.ItemFilter{Category: "Canned Goods", SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	assert.Equal(t, "Canned Beans", byCategory[0].Name)
	assert.Equal(t, "Canned Tomatoes", byCategory[1].Name)

	byLocation, err := repo.FindItems(ctx, domain.ItemFilter{LocationID: shelf.ID.String(), SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, byLocation, 1)
	assert.Equal(t, "Canned Beans", byLocation[0].Name)

	// The category filter is exact, not a substring match.
	exact, err := repo.FindItems(ctx, domain.ItemFilter{Category: "Canned", SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Empty(t, exact)
}

func TestItemRepositoryFindItemsAppliesSortOrder(t *testing.T) {
	repo, db := newDBRepository(t)
	ctx := context.Background()

	pantry := seedLocation(t, db, "Kitchen Pantry", "Kitchen")
	seedItem(t, db, &entities.Item{Name: "Pasta", Category: "Dry Goods", Quantity: 2, StorageLocationID: pantry.ID})
	seedItem(t, db, &entities.Item{Name: "Canned Tomatoes", Category: "Canned Goods", Quantity: 4, StorageLocationID: pantry.ID})
	seedItem(t, db, &entities.Item{Name: "Olive Oil", Category: "Condiments", Quantity: 1, StorageLocationID: pantry.ID})

	asc, err := repo.FindItems(ctx, domain.ItemFilter{SortBy: "quantity", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, []int{1, 2, 4}, []int{asc[0].Quantity, asc[1].Quantity, asc[2].Quantity})

	desc, err := repo.FindItems(ctx, domain.ItemFilter{SortBy: "name", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, desc, 3)
	assert.Equal(t, "Pasta", desc[0].Name)
	assert.Equal(t, "Canned Tomatoes", desc[2].Name)
}

func TestItemRepositoryFindItemsPreloadsLocation(t *testing.T) {
	repo, db := newDBRepository(t)
	ctx := context.Background()

	shelf := seedLocation(t, db, "Garage Shelf 2", "Garage")
	seedItem(t, db, &entities.Item{Name: "Motor Oil", Category: "Automotive", Quantity: 1, StorageLocationID: shelf.ID})

	found, err := repo.FindItems(ctx, domain.ItemFilter{SortBy: "created_at", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.NotNil(t, found[0].StorageLocation)
	assert.Equal(t, "Garage Shelf 2", found[0].StorageLocation.Name)
	assert.Equal(t, "Garage", found[0].StorageLocation.Room)
}

func TestItemRepositoryDeleteItemsByIDsCountsOnlyDeletedRows(t *testing.T) {
	repo, db := newDBRepository(t)
	ctx := context.Background()

	pantry := seedLocation(t, db, "Kitchen Pantry", "Kitchen")
	first := seedItem(t, db, &entities.Item{Name: "Pasta", Category: "Dry Goods", Quantity: 2, StorageLocationID: pantry.ID})
	second := seedItem(t, db, &entities.Item{Name: "Olive Oil", Category: "Condiments", Quantity: 1, StorageLocationID: pantry.ID})

	deleted, err := repo.DeleteItemsByIDs(ctx, []string{
		first.ID.String(),
		"72b7ceab-6075-4cc1-9f4a-8dd57cbf624d", // not in the table
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := repo.FindItems(ctx, domain.ItemFilter{SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)
}

func TestItemRepositoryRelocateItemsUpdatesOnlyMatchingRows(t *testing.T) {
	repo, db := newDBRepository(t)
	ctx := context.Background()

	pantry := seedLocation(t, db, "Kitchen Pantry", "Kitchen")
	shelf := seedLocation(t, db, "Garage Shelf 1", "Garage")
	moved := seedItem(t, db, &entities.Item{Name: "Canned Tomatoes", Category: "Canned Goods", Quantity: 4, StorageLocationID: pantry.ID})
	kept := seedItem(t, db, &entities.Item{Name: "Pasta", Category: "Dry Goods", Quantity: 2, StorageLocationID: pantry.ID})

	updated, err := repo.RelocateItems(ctx, []string{moved.ID.String()}, shelf.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	got, err := repo.GetItemByID(ctx, moved.ID.String())
	require.NoError(t, err)
	assert.Equal(t, shelf.ID, got.StorageLocationID)

	untouched, err := repo.GetItemByID(ctx, kept.ID.String())
	require.NoError(t, err)
	assert.Equal(t, pantry.ID, untouched.StorageLocationID)
}

func TestItemRepositoryGetCategoriesIsDistinctAndSorted(t *testing.T) {
	repo, db := newDBRepository(t)
	ctx := context.Background()

	pantry := seedLocation(t, db, "Kitchen Pantry", "Kitchen")
	seedItem(t, db, &entities.Item{Name: "Canned Tomatoes", Category: "Canned Goods", Quantity: 4, StorageLocationID: pantry.ID})
	seedItem(t, db, &entities.Item{Name: "Canned Beans", Category: "Canned Goods", Quantity: 2, StorageLocationID: pantry.ID})
	seedItem(t, db, &entities.Item{Name: "Pasta", Category: "Dry Goods", Quantity: 2, StorageLocationID: pantry.ID})

	categories, err := repo.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Canned Goods", "Dry Goods"}, categories)
}
