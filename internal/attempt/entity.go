package attempt

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuizAttempt struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizSetID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_set_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ProfileID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"profile_id"`
	CharacterID *uuid.UUID     `gorm:"type:uuid" json:"character_id,omitempty"`
	Answers     datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
	Score       int            `gorm:"not null" json:"score"`
	CompletedAt time.Time      `gorm:"not null" json:"completed_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (QuizAttempt) TableName() string { return "quiz_attempts" }
