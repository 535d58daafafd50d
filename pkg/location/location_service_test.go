package location

import (
	"HomeStash-Backend/domain"
	"HomeStash-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLocationRepository struct {
	locations  map[string]*entities.StorageLocation
	itemCounts map[string]int64
	records    []LocationRecord
	lastRoom   string
}

func newFakeLocationRepository() *fakeLocationRepository {
	return &fakeLocationRepository{
		locations:  make(map[string]*entities.StorageLocation),
		itemCounts: make(map[string]int64),
	}
}

func (f *fakeLocationRepository) AddLocation(_ context.Context, location *entities.StorageLocation) error {
	f.locations[location.ID.String()] = location
	return nil
}

func (f *fakeLocationRepository) GetLocationByID(_ context.Context, id string) (*entities.StorageLocation, error) {
	location, ok := f.locations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return location, nil
}

func (f *fakeLocationRepository) UpdateLocation(_ context.Context, location *entities.StorageLocation) error {
	f.locations[location.ID.String()] = location
	return nil
}

func (f *fakeLocationRepository) DeleteLocation(_ context.Context, id string) error {
	delete(f.locations, id)
	return nil
}

func (f *fakeLocationRepository) FindLocations(_ context.Context, room string) ([]LocationRecord, error) {
	f.lastRoom = room
	return f.records, nil
}

func (f *fakeLocationRepository) CountItems(_ context.Context, id string) (int64, error) {
	return f.itemCounts[id], nil
}

func (f *fakeLocationRepository) GetRooms(_ context.Context) ([]string, error) {
	return []string{"Bathroom", "Garage", "Kitchen"}, nil
}

func TestAddLocation(t *testing.T) {
	repo := newFakeLocationRepository()
	service := NewLocationService(repo)

	res, err := service.AddLocation(context.Background(), domain.AddLocationRequest{
		Name:        "Kitchen Pantry",
		Room:        "Kitchen",
		Description: "Main pantry for food items",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kitchen Pantry", res.Name)
	assert.Equal(t, "Kitchen", res.Room)
	require.NotNil(t, res.Description)
	assert.Equal(t, "Main pantry for food items", *res.Description)
	assert.Len(t, repo.locations, 1)
}

func TestAddLocationWithoutDescription(t *testing.T) {
	repo := newFakeLocationRepository()
	service := NewLocationService(repo)

	res, err := service.AddLocation(context.Background(), domain.AddLocationRequest{
		Name: "Garage Shelf 1",
		Room: "Garage",
	})
	require.NoError(t, err)
	assert.Nil(t, res.Description)
}

func TestUpdateLocationNotFound(t *testing.T) {
	service := NewLocationService(newFakeLocationRepository())

	_, err := service.UpdateLocation(context.Background(), uuid.NewString(), domain.UpdateLocationRequest{
		Name: "Ghost",
		Room: "Nowhere",
	})
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestUpdateLocationReplacesDescription(t *testing.T) {
	repo := newFakeLocationRepository()
	service := NewLocationService(repo)

	created, err := service.AddLocation(context.Background(), domain.AddLocationRequest{
		Name:        "Bedroom Closet",
		Room:        "Bedroom",
		Description: "Main bedroom closet",
	})
	require.NoError(t, err)

	updated, err := service.UpdateLocation(context.Background(), created.ID, domain.UpdateLocationRequest{
		Name: "Bedroom Closet",
		Room: "Bedroom",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
}

func TestDeleteLocationWithItemsIsRejected(t *testing.T) {
	repo := newFakeLocationRepository()
	service := NewLocationService(repo)

	created, err := service.AddLocation(context.Background(), domain.AddLocationRequest{
		Name: "Bathroom Cabinet",
		Room: "Bathroom",
	})
	require.NoError(t, err)
	repo.itemCounts[created.ID] = 3

	err = service.DeleteLocation(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrLocationNotEmpty)
	assert.Len(t, repo.locations, 1)
}

func TestDeleteEmptyLocation(t *testing.T) {
	repo := newFakeLocationRepository()
	service := NewLocationService(repo)

	created, err := service.AddLocation(context.Background(), domain.AddLocationRequest{
		Name: "Empty Shelf",
		Room: "Garage",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteLocation(context.Background(), created.ID))
	assert.Empty(t, repo.locations)
}

func TestDeleteLocationNotFound(t *testing.T) {
	service := NewLocationService(newFakeLocationRepository())

	err := service.DeleteLocation(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestGetLocationsMapsRecordsAndPassesRoomFilter(t *testing.T) {
	repo := newFakeLocationRepository()
	repo.records = []LocationRecord{
		{ID: uuid.New(), Name: "Garage Shelf 1", Room: "Garage", ItemCount: 2},
		{ID: uuid.New(), Name: "Garage Shelf 2", Room: "Garage", ItemCount: 0},
	}
	service := NewLocationService(repo)

	res, err := service.GetLocations(context.Background(), "Garage")
	require.NoError(t, err)
	assert.Equal(t, "Garage", repo.lastRoom)
	require.Len(t, res, 2)
	assert.Equal(t, int64(2), res[0].ItemCount)
	assert.Equal(t, int64(0), res[1].ItemCount)
}

func TestGetLocationByIDIncludesItemCount(t *testing.T) {
	repo := newFakeLocationRepository()
	service := NewLocationService(repo)

	created, err := service.AddLocation(context.Background(), domain.AddLocationRequest{
		Name: "Kitchen Pantry",
		Room: "Kitchen",
	})
	require.NoError(t, err)
	repo.itemCounts[created.ID] = 7

	res, err := service.GetLocationByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ItemCount)
}
