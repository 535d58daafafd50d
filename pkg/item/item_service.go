package item

import (
	"HomeStash-Backend/domain"
	"HomeStash-Backend/entities"
	"HomeStash-Backend/internal/utils/storage"
	"HomeStash-Backend/pkg/location"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ItemService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) (domain.ItemResponse, error)
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context, filter domain.ItemFilter) ([]domain.ItemResponse, error)
		GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error)
		BulkDeleteItems(ctx context.Context, req domain.BulkDeleteItemsRequest) (domain.BulkDeleteItemsResponse, error)
		BulkRelocateItems(ctx context.Context, req domain.BulkRelocateItemsRequest) (domain.BulkRelocateItemsResponse, error)
		UploadItemImage(ctx context.Context, id string, req domain.UploadItemImageRequest) (domain.ItemResponse, error)
		GetCategories(ctx context.Context) ([]string, error)
	}

	itemService struct {
		itemRepository     ItemRepository
		locationRepository location.LocationRepository
		s3                 storage.AwsS3
	}
)

// sortFields whitelists the columns the list endpoint may order by.
var sortFields = map[string]string{
	"name":            "name",
	"category":        "category",
	"quantity":        "quantity",
	"purchaseDate":    "purchase_date",
	"expirationDate":  "expiration_date",
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
	"purchase_date":   "purchase_date",
	"expiration_date": "expiration_date",
	"created_at":      "created_at",
	"updated_at":      "updated_at",
}

func NewItemService(itemRepository ItemRepository, locationRepository location.LocationRepository, s3 storage.AwsS3) ItemService {
	return &itemService{
		itemRepository:     itemRepository,
		locationRepository: locationRepository,
		s3:                 s3,
	}
}

func (s *itemService) AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error) {
	locationUUID, err := s.resolveLocation(ctx, req.StorageLocationID)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	expirationDate, err := parseDate(req.ExpirationDate)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return domain.ItemResponse{}, domain.ErrInvalidQuantity
	}

	item := &entities.Item{
		ID:                uuid.New(),
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          quantity,
		StorageLocationID: locationUUID,
		PurchaseDate:      purchaseDate,
		ExpirationDate:    expirationDate,
		Notes:             optionalString(req.Notes),
		ImageURL:          req.ImageURL,
	}

	if err := s.itemRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	created, err := s.itemRepository.GetItemByID(ctx, item.ID.String())
	if err != nil {
		return domain.ItemResponse{}, err
	}

	return ToItemResponse(created), nil
}

func (s *itemService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	locationUUID, err := s.resolveLocation(ctx, req.StorageLocationID)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	expirationDate, err := parseDate(req.ExpirationDate)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return domain.ItemResponse{}, domain.ErrInvalidQuantity
	}

	// Full replace: optional fields missing from the request are cleared.
	item.Name = req.Name
	item.Category = req.Category
	item.Quantity = quantity
	item.StorageLocationID = locationUUID
	item.PurchaseDate = purchaseDate
	item.ExpirationDate = expirationDate
	item.Notes = optionalString(req.Notes)
	item.ImageURL = req.ImageURL
	item.StorageLocation = nil

	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	updated, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	return ToItemResponse(updated), nil
}

func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.itemRepository.DeleteItem(ctx, id)
}

func (s *itemService) GetItems(ctx context.Context, filter domain.ItemFilter) ([]domain.ItemResponse, error) {
	sortBy, ok := sortFields[filter.SortBy]
	if !ok {
		sortBy = "created_at"
	}
	filter.SortBy = sortBy

	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	items, err := s.itemRepository.FindItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, ToItemResponse(item))
	}

	return response, nil
}

func (s *itemService) GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	return ToItemResponse(item), nil
}

func (s *itemService) BulkDeleteItems(ctx context.Context, req domain.BulkDeleteItemsRequest) (domain.BulkDeleteItemsResponse, error) {
	if len(req.IDs) == 0 {
		return domain.BulkDeleteItemsResponse{}, domain.ErrEmptyIDList
	}

	deleted, err := s.itemRepository.DeleteItemsByIDs(ctx, req.IDs)
	if err != nil {
		return domain.BulkDeleteItemsResponse{}, err
	}

	return domain.BulkDeleteItemsResponse{DeletedCount: deleted}, nil
}

func (s *itemService) BulkRelocateItems(ctx context.Context, req domain.BulkRelocateItemsRequest) (domain.BulkRelocateItemsResponse, error) {
	if len(req.IDs) == 0 {
		return domain.BulkRelocateItemsResponse{}, domain.ErrEmptyIDList
	}

	if _, err := s.resolveLocation(ctx, req.StorageLocationID); err != nil {
		return domain.BulkRelocateItemsResponse{}, err
	}

	updated, err := s.itemRepository.RelocateItems(ctx, req.IDs, req.StorageLocationID)
	if err != nil {
		return domain.BulkRelocateItemsResponse{}, err
	}

	return domain.BulkRelocateItemsResponse{UpdatedCount: updated}, nil
}

func (s *itemService) UploadItemImage(ctx context.Context, id string, req domain.UploadItemImageRequest) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	fileName := fmt.Sprintf("item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
	}

	if uploadErr != nil {
		if errors.Is(uploadErr, storage.ErrExtensionNotAllowed) {
			return domain.ItemResponse{}, domain.ErrInvalidImageFormat
		}
		return domain.ItemResponse{}, uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	item.StorageLocation = nil

	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	updated, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		return domain.ItemResponse{}, err
	}

	return ToItemResponse(updated), nil
}

func (s *itemService) GetCategories(ctx context.Context) ([]string, error) {
	return s.itemRepository.GetCategories(ctx)
}

// resolveLocation parses the location id and verifies it references an
// existing storage location.
func (s *itemService) resolveLocation(ctx context.Context, id string) (uuid.UUID, error) {
	locationUUID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}

	if _, err := s.locationRepository.GetLocationByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, domain.ErrInvalidStorageLocation
		}
		return uuid.Nil, err
	}

	return locationUUID, nil
}

// ToItemResponse maps an item entity onto the API response shape.
func ToItemResponse(item *entities.Item) domain.ItemResponse {
	response := domain.ItemResponse{
		ID:                item.ID.String(),
		Name:              item.Name,
		Category:          item.Category,
		Quantity:          item.Quantity,
		StorageLocationID: item.StorageLocationID.String(),
		PurchaseDate:      item.PurchaseDate,
		ExpirationDate:    item.ExpirationDate,
		Notes:             item.Notes,
		ImageURL:          item.ImageURL,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}

	if item.StorageLocation != nil {
		response.StorageLocation = &domain.StorageLocationSummary{
			ID:   item.StorageLocation.ID.String(),
			Name: item.StorageLocation.Name,
			Room: item.StorageLocation.Room,
		}
	}

	return response
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	return &date, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
