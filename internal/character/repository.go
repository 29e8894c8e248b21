package character

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CharacterRepository interface {
	Create(c *Character) error
	FindByID(id uuid.UUID) (*Character, error)
	FindAllByUserID(userID string) ([]*Character, error)
	ListPublic(limit int) ([]*Character, error)
	CountPublic() (int64, error)
	Update(c *Character) error
	Delete(id uuid.UUID, userID string) error
}

type characterRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CharacterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) Create(c *Character) error {
	return r.db.Create(c).Error
}

func (r *characterRepository) FindByID(id uuid.UUID) (*Character, error) {
	var c Character
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *characterRepository) FindAllByUserID(userID string) ([]*Character, error) {
	var characters []*Character
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *characterRepository) ListPublic(limit int) ([]*Character, error) {
	var characters []*Character
	if err := r.db.
		Where("is_public = ?", true).
		Order("updated_at DESC").
		Limit(limit).
		Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *characterRepository) CountPublic() (int64, error) {
	var count int64
	if err := r.db.Model(&Character{}).
		Where("is_public = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *characterRepository) Update(c *Character) error {
	return r.db.Save(c).Error
}

func (r *characterRepository) Delete(id uuid.UUID, userID string) error {
	return r.db.Delete(&Character{}, "id = ? AND user_id = ?", id, userID).Error
}
