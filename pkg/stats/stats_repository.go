package stats

import (
	"HomeStash-Backend/domain"
	"HomeStash-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	// InventorySnapshot holds the results of the dashboard queries. The
	// queries are independent reads, so the buckets reflect the database at
	// approximately, not exactly, the same instant.
	InventorySnapshot struct {
		TotalItems      int64
		ItemsByCategory []domain.CategoryCount
		LowStockItems   []*entities.Item
		ExpiringSoon    []*entities.Item
		RecentlyAdded   []*entities.Item
		ItemsByLocation []domain.LocationCount
	}

	StatsRepository interface {
		GetInventorySnapshot(ctx context.Context) (InventorySnapshot, error)
		GetExpiringItems(ctx context.Context, start, end time.Time, limit int) ([]*entities.Item, error)
	}

	statsRepository struct {
		db *gorm.DB
	}
)

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetInventorySnapshot(ctx context.Context) (InventorySnapshot, error) {
	var snapshot InventorySnapshot
	now := time.Now()

	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Count(&snapshot.TotalItems).Error; err != nil {
		return InventorySnapshot{}, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Select("category, count(*) AS count").
		Group("category").
		Order("category asc").
		Scan(&snapshot.ItemsByCategory).Error; err != nil {
		return InventorySnapshot{}, err
	}

	if err := r.db.WithContext(ctx).
		Preload("StorageLocation").
		Where("quantity <= ?", domain.LowStockThreshold).
		Order("quantity asc").
		Limit(domain.LowStockLimit).
		Find(&snapshot.LowStockItems).Error; err != nil {
		return InventorySnapshot{}, err
	}

	expiring, err := r.GetExpiringItems(ctx, now, now.AddDate(0, 0, domain.ExpiringSoonDays), domain.ExpiringSoonLimit)
	if err != nil {
		return InventorySnapshot{}, err
	}
	snapshot.ExpiringSoon = expiring

	if err := r.db.WithContext(ctx).
		Preload("StorageLocation").
		Order("created_at desc").
		Limit(domain.RecentlyAddedLimit).
		Find(&snapshot.RecentlyAdded).Error; err != nil {
		return InventorySnapshot{}, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.StorageLocation{}).
		Select("storage_locations.id, storage_locations.name, storage_locations.room, count(items.id) AS count").
		Joins("LEFT JOIN items ON items.storage_location_id = storage_locations.id").
		Group("storage_locations.id").
		Order("storage_locations.room asc").
		Scan(&snapshot.ItemsByLocation).Error; err != nil {
		return InventorySnapshot{}, err
	}

	return snapshot, nil
}

func (r *statsRepository) GetExpiringItems(ctx context.Context, start, end time.Time, limit int) ([]*entities.Item, error) {
	var items []*entities.Item

	query := r.db.WithContext(ctx).
		Preload("StorageLocation").
		Where("expiration_date IS NOT NULL AND expiration_date BETWEEN ? AND ?", start, end).
		Order("expiration_date asc")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}
