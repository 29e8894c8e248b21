package quizset

import (
	"errors"

	"gorm.io/gorm"
)

type QuizSetRepository interface {
	Create(set *QuizSet, questions []*Question) error
	GetByID(id string) (*QuizSet, error)
	ListByUser(userID string) ([]*QuizSet, error)
	ListPublic(limit int) ([]*QuizSet, error)
	CountPublic() (int64, error)
	Update(set *QuizSet) error
	Delete(id, userID string) error

	AddQuestions(questions []*Question) error
	GetQuestionByID(id string) (*Question, error)
	ListQuestionsBySet(quizSetID string) ([]*Question, error)
	UpdateQuestion(question *Question) error
	DeleteQuestion(id, userID string) error
}

type quizSetRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizSetRepository {
	return &quizSetRepository{db: db}
}

func (r *quizSetRepository) Create(set *QuizSet, questions []*Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(set).Error; err != nil {
			return err
		}

		for i := range questions {
			questions[i].QuizSetID = set.ID
			questions[i].UserID = set.UserID
		}

		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *quizSetRepository) GetByID(id string) (*QuizSet, error) {
	var set QuizSet
	if err := r.db.First(&set, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &set, nil
}

func (r *quizSetRepository) ListByUser(userID string) ([]*QuizSet, error) {
	var sets []*QuizSet
	if err := r.db.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *quizSetRepository) ListPublic(limit int) ([]*QuizSet, error) {
	var sets []*QuizSet
	if err := r.db.
		Where("sharing = ?", SharingPublic).
		Order("updated_at DESC").
		Limit(limit).
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *quizSetRepository) CountPublic() (int64, error) {
	var count int64
	if err := r.db.Model(&QuizSet{}).
		Where("sharing = ?", SharingPublic).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *quizSetRepository) Update(set *QuizSet) error {
	return r.db.Save(set).Error
}

func (r *quizSetRepository) Delete(id, userID string) error {
	return r.db.Delete(&QuizSet{}, "id = ? AND user_id = ?", id, userID).Error
}

func (r *quizSetRepository) AddQuestions(questions []*Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

func (r *quizSetRepository) GetQuestionByID(id string) (*Question, error) {
	var question Question
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// A ordem por created_at é parte da identidade do quiz: o índice das
// sessões em andamento referencia posições nessa ordem.
func (r *quizSetRepository) ListQuestionsBySet(quizSetID string) ([]*Question, error) {
	var questions []*Question
	if err := r.db.
		Where("quiz_set_id = ?", quizSetID).
		Order("created_at ASC, id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizSetRepository) UpdateQuestion(question *Question) error {
	return r.db.Save(question).Error
}

func (r *quizSetRepository) DeleteQuestion(id, userID string) error {
	return r.db.Delete(&Question{}, "id = ? AND user_id = ?", id, userID).Error
}
