package character

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Character struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ProfileID uuid.UUID      `gorm:"type:uuid;not null;index" json:"profile_id"`
	Name      string         `gorm:"type:text;not null" json:"name"`
	Class     Class          `gorm:"type:text;not null" json:"class"`
	Health    int            `gorm:"not null;default:100" json:"health"`
	Stats     datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"stats"`
	Inventory datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"inventory"`
	IsPublic  bool           `gorm:"not null;default:false" json:"is_public"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Character) TableName() string { return "characters" }

// Stats é o blob de progressão do personagem. XP vem da pontuação das
// tentativas de quiz; o nível deriva do XP acumulado.
type Stats struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
}
