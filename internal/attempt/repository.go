package attempt

import (
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(a *QuizAttempt) error
	ListByUser(userID string, limit int) ([]*QuizAttempt, error)
	ListByQuizSet(quizSetID, userID string) ([]*QuizAttempt, error)
	StatsByUser(userID string) (*AttemptStats, error)
	RecentCompletions(limit int) ([]*RecentCompletion, error)
	CountAll() (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(a *QuizAttempt) error {
	return r.db.Create(a).Error
}

func (r *attemptRepository) ListByUser(userID string, limit int) ([]*QuizAttempt, error) {
	var attempts []*QuizAttempt
	if err := r.db.
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) ListByQuizSet(quizSetID, userID string) ([]*QuizAttempt, error) {
	var attempts []*QuizAttempt
	if err := r.db.
		Where("quiz_set_id = ? AND user_id = ?", quizSetID, userID).
		Order("completed_at DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) StatsByUser(userID string) (*AttemptStats, error) {
	var stats AttemptStats

	row := r.db.Model(&QuizAttempt{}).
		Select("COUNT(*) AS total, COALESCE(AVG(score), 0) AS average_score, COALESCE(MAX(score), 0) AS best_score, COUNT(*) FILTER (WHERE score = 100) AS perfect").
		Where("user_id = ?", userID).
		Row()

	if err := row.Scan(&stats.Total, &stats.AverageScore, &stats.BestScore, &stats.Perfect); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *attemptRepository) RecentCompletions(limit int) ([]*RecentCompletion, error) {
	var completions []*RecentCompletion

	err := r.db.Model(&QuizAttempt{}).
		Select(`quiz_attempts.id,
			profiles.username,
			profiles.display_name,
			profiles.avatar_url,
			quiz_sets.title AS quiz_title,
			quiz_attempts.score,
			quiz_attempts.completed_at`).
		Joins("JOIN profiles ON profiles.id = quiz_attempts.profile_id").
		Joins("JOIN quiz_sets ON quiz_sets.id = quiz_attempts.quiz_set_id").
		Where("quiz_sets.sharing = ?", "PUBLIC").
		Order("quiz_attempts.completed_at DESC").
		Limit(limit).
		Scan(&completions).Error
	if err != nil {
		return nil, err
	}
	return completions, nil
}

func (r *attemptRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&QuizAttempt{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
