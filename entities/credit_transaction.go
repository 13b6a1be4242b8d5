package entities

import (
	"github.com/google/uuid"
)

type CreditTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Amount      int       `json:"amount"`
	Type        string    `json:"type"` // Generation
	Mode        string    `json:"mode"` // real, mock
	Description string    `json:"description"`
	Balance     int       `json:"balance"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
