package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StyleProfile struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	FaceShape        string         `json:"face_shape"`
	SkinUndertone    string         `json:"skin_undertone"`
	CurrentHairstyle string         `json:"current_hairstyle"`
	Preferences      datatypes.JSON `gorm:"type:jsonb" json:"preferences"`
	ProCredits       int            `gorm:"not null;default:0;check:pro_credits >= 0" json:"pro_credits"`

	Timestamp
}
