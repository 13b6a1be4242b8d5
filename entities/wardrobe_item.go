package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WardrobeItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	ItemURL         string         `json:"item_url"`
	ItemCategory    string         `gorm:"default:'uncategorized'" json:"item_category"`
	ItemName        *string        `json:"item_name,omitempty"`
	ItemDescription *string        `json:"item_description,omitempty"`
	Metadata        datatypes.JSON `gorm:"type:jsonb" json:"metadata"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
