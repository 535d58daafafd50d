package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddLocation    = "storage location added successfully"
	MessageSuccessUpdateLocation = "storage location updated successfully"
	MessageSuccessDeleteLocation = "storage location deleted successfully"
	MessageSuccessGetLocations   = "storage locations retrieved successfully"
	MessageSuccessGetRooms       = "rooms retrieved successfully"

	MessageFailedAddLocation    = "failed to add storage location"
	MessageFailedUpdateLocation = "failed to update storage location"
	MessageFailedDeleteLocation = "failed to delete storage location"
	MessageFailedGetLocations   = "failed to retrieve storage locations"
	MessageFailedGetRooms       = "failed to retrieve rooms"

	ErrLocationNotFound = errors.New("storage location not found")
	ErrLocationNotEmpty = errors.New("storage location still has items")
)

type (
	AddLocationRequest struct {
		Name        string `json:"name" validate:"required"`
		Room        string `json:"room" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	UpdateLocationRequest struct {
		Name        string `json:"name" validate:"required"`
		Room        string `json:"room" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	LocationResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Room        string    `json:"room"`
		Description *string   `json:"description"`
		ItemCount   int64     `json:"item_count"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}
)
