package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddItem         = "item added successfully"
	MessageSuccessUpdateItem      = "item updated successfully"
	MessageSuccessDeleteItem      = "item deleted successfully"
	MessageSuccessGetItems        = "items retrieved successfully"
	MessageSuccessBulkDeleteItems = "items deleted successfully"
	MessageSuccessBulkRelocate    = "items relocated successfully"
	MessageSuccessUploadItemImage = "item image uploaded successfully"
	MessageSuccessGetCategories   = "categories retrieved successfully"

	MessageFailedAddItem         = "failed to add item"
	MessageFailedUpdateItem      = "failed to update item"
	MessageFailedDeleteItem      = "failed to delete item"
	MessageFailedGetItems        = "failed to retrieve items"
	MessageFailedBulkDeleteItems = "failed to delete items"
	MessageFailedBulkRelocate    = "failed to relocate items"
	MessageFailedUploadItemImage = "failed to upload item image"
	MessageFailedGetCategories   = "failed to retrieve categories"

	ErrItemNotFound           = errors.New("item not found")
	ErrInvalidStorageLocation = errors.New("storage location does not exist")
	ErrInvalidDate            = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrEmptyIDList            = errors.New("at least one item id is required")
	ErrInvalidImageFormat     = errors.New("invalid image format")
)

type (
	AddItemRequest struct {
		Name              string `json:"name" validate:"required"`
		Category          string `json:"category" validate:"required"`
		Quantity          int    `json:"quantity" validate:"omitempty,min=1"`
		StorageLocationID string `json:"storage_location_id" validate:"required,uuid"`
		PurchaseDate      string `json:"purchase_date" validate:"omitempty"`
		ExpirationDate    string `json:"expiration_date" validate:"omitempty"`
		Notes             string `json:"notes" validate:"omitempty"`
		ImageURL          string `json:"image_url" validate:"omitempty,url"`
	}

	// UpdateItemRequest replaces every editable field. Optional fields left
	// out by the client are cleared on the stored item, not preserved.
	UpdateItemRequest struct {
		Name              string `json:"name" validate:"required"`
		Category          string `json:"category" validate:"required"`
		Quantity          int    `json:"quantity" validate:"omitempty,min=1"`
		StorageLocationID string `json:"storage_location_id" validate:"required,uuid"`
		PurchaseDate      string `json:"purchase_date" validate:"omitempty"`
		ExpirationDate    string `json:"expiration_date" validate:"omitempty"`
		Notes             string `json:"notes" validate:"omitempty"`
		ImageURL          string `json:"image_url" validate:"omitempty,url"`
	}

	BulkDeleteItemsRequest struct {
		IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
	}

	BulkDeleteItemsResponse struct {
		DeletedCount int64 `json:"deleted_count"`
	}

	BulkRelocateItemsRequest struct {
		IDs               []string `json:"ids" validate:"required,min=1,dive,uuid"`
		StorageLocationID string   `json:"storage_location_id" validate:"required,uuid"`
	}

	BulkRelocateItemsResponse struct {
		UpdatedCount int64 `json:"updated_count"`
	}

	UploadItemImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	// ItemFilter carries the list query parameters. SortBy and SortOrder are
	// normalized against a whitelist before reaching the repository.
	ItemFilter struct {
		Search     string
		Category   string
		LocationID string
		SortBy     string
		SortOrder  string
	}

	StorageLocationSummary struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Room string `json:"room"`
	}

	ItemResponse struct {
		ID                string                  `json:"id"`
		Name              string                  `json:"name"`
		Category          string                  `json:"category"`
		Quantity          int                     `json:"quantity"`
		StorageLocationID string                  `json:"storage_location_id"`
		PurchaseDate      *time.Time              `json:"purchase_date"`
		ExpirationDate    *time.Time              `json:"expiration_date"`
		Notes             *string                 `json:"notes"`
		ImageURL          string                  `json:"image_url,omitempty"`
		StorageLocation   *StorageLocationSummary `json:"storage_location,omitempty"`
		CreatedAt         time.Time               `json:"created_at"`
		UpdatedAt         time.Time               `json:"updated_at"`
	}
)
