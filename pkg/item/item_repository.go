package item

import (
	"HomeStash-Backend/domain"
	"HomeStash-Backend/entities"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		AddItem(ctx context.Context, item *entities.Item) error
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		UpdateItem(ctx context.Context, item *entities.Item) error
		DeleteItem(ctx context.Context, id string) error
		FindItems(ctx context.Context, filter domain.ItemFilter) ([]*entities.Item, error)
		DeleteItemsByIDs(ctx context.Context, ids []string) (int64, error)
		RelocateItems(ctx context.Context, ids []string, locationID string) (int64, error)
		GetCategories(ctx context.Context) ([]string, error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) AddItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).
		Preload("StorageLocation").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Item{}).Error
}

func (r *itemRepository) FindItems(ctx context.Context, filter domain.ItemFilter) ([]*entities.Item, error) {
	var items []*entities.Item

	query := r.db.WithContext(ctx).Preload("StorageLocation")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR category ILIKE ? OR notes ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.LocationID != "" {
		query = query.Where("storage_location_id = ?", filter.LocationID)
	}

	order := fmt.Sprintf("%s %s", filter.SortBy, filter.SortOrder)
	if err := query.Order(order).Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) DeleteItemsByIDs(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&entities.Item{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *itemRepository) RelocateItems(ctx context.Context, ids []string, locationID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("id IN ?", ids).
		Update("storage_location_id", locationID)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *itemRepository) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
