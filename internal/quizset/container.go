package quizset

import "gorm.io/gorm"

type QuizSetContainer struct {
	Repo    QuizSetRepository
	Service QuizSetService
	Handler *Handler
}

func NewQuizSetContainer(db *gorm.DB) *QuizSetContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &QuizSetContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
