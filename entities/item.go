package entities

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Quantity          int        `gorm:"default:1" json:"quantity"`
	StorageLocationID uuid.UUID  `json:"storage_location_id"`
	PurchaseDate      *time.Time `json:"purchase_date,omitempty"`
	ExpirationDate    *time.Time `json:"expiration_date,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	ImageURL          string     `json:"image_url,omitempty"`

	StorageLocation *StorageLocation `gorm:"foreignKey:StorageLocationID" json:"storage_location,omitempty"`
	Timestamp
}
