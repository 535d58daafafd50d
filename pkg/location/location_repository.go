package location

import (
	"HomeStash-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// LocationRecord is a storage location annotated with its item count,
	// produced by the list query's LEFT JOIN.
	LocationRecord struct {
		ID          uuid.UUID
		Name        string
		Room        string
		Description *string
		ItemCount   int64
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}

	LocationRepository interface {
		AddLocation(ctx context.Context, location *entities.StorageLocation) error
		GetLocationByID(ctx context.Context, id string) (*entities.StorageLocation, error)
		UpdateLocation(ctx context.Context, location *entities.StorageLocation) error
		DeleteLocation(ctx context.Context, id string) error
		FindLocations(ctx context.Context, room string) ([]LocationRecord, error)
		CountItems(ctx context.Context, locationID string) (int64, error)
		GetRooms(ctx context.Context) ([]string, error)
	}

	locationRepository struct {
		db *gorm.DB
	}
)

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) AddLocation(ctx context.Context, location *entities.StorageLocation) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) GetLocationByID(ctx context.Context, id string) (*entities.StorageLocation, error) {
	var location entities.StorageLocation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) UpdateLocation(ctx context.Context, location *entities.StorageLocation) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *locationRepository) DeleteLocation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.StorageLocation{}).Error
}

func (r *locationRepository) FindLocations(ctx context.Context, room string) ([]LocationRecord, error) {
	var records []LocationRecord

	query := r.db.WithContext(ctx).Model(&entities.StorageLocation{}).
		Select("storage_locations.id, storage_locations.name, storage_locations.room, storage_locations.description, storage_locations.created_at, storage_locations.updated_at, count(items.id) AS item_count").
		Joins("LEFT JOIN items ON items.storage_location_id = storage_locations.id").
		Group("storage_locations.id").
		Order("storage_locations.room asc")

	if room != "" {
		query = query.Where("storage_locations.room = ?", room)
	}

	if err := query.Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *locationRepository) CountItems(ctx context.Context, locationID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("storage_location_id = ?", locationID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *locationRepository) GetRooms(ctx context.Context) ([]string, error) {
	var rooms []string
	if err := r.db.WithContext(ctx).Model(&entities.StorageLocation{}).
		Distinct("room").
		Order("room asc").
		Pluck("room", &rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
