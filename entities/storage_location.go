package entities

import (
	"github.com/google/uuid"
)

type StorageLocation struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Room        string    `json:"room"`
	Description *string   `json:"description,omitempty"`

	Items []*Item `gorm:"foreignKey:StorageLocationID" json:"items,omitempty"`
	Timestamp
}
