package quizset

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type QuizSet struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ProfileID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"profile_id"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Sharing     Sharing        `gorm:"type:text;not null;default:'PRIVATE'" json:"sharing"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	SourceSetID *uuid.UUID     `gorm:"type:uuid" json:"source_set_id,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:QuizSetID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (QuizSet) TableName() string { return "quiz_sets" }

type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizSetID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_set_id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	QuestionText  string         `gorm:"type:text;not null" json:"question_text"`
	Answers       datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
	CorrectAnswer string         `gorm:"type:text;not null" json:"correct_answer"`
	Difficulty    int            `gorm:"not null" json:"difficulty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Question) TableName() string { return "questions" }
