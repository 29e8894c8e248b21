package quizset

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/questlog-lambda/internal/session"
)

// questionSource adapta o repositório de conjuntos ao contrato do motor
// de sessão. É aqui que os blobs jsonb viram estruturas tipadas: um
// registro malformado é rejeitado nesta fronteira e nunca entra no motor.
type questionSource struct {
	service QuizSetService
}

func NewQuestionSource(service QuizSetService) session.QuestionSource {
	return &questionSource{service: service}
}

func (s *questionSource) LoadQuestions(ctx context.Context, quizSetID, userID string) ([]session.Question, error) {
	dto, err := s.service.GetQuizSetWithQuestions(ctx, quizSetID, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, session.ErrQuizSetNotFound
		case errors.Is(err, ErrUnauthorized):
			return nil, session.ErrForbidden
		default:
			return nil, err
		}
	}

	questions := make([]session.Question, 0, len(dto.Questions))
	for _, q := range dto.Questions {
		options, err := DecodeAnswers(q.Answers)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, err)
		}

		sq := session.Question{
			ID:            q.ID.String(),
			Prompt:        q.QuestionText,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
			Difficulty:    q.Difficulty,
		}
		if err := sq.Validate(); err != nil {
			return nil, fmt.Errorf("quiz set %s has a malformed question: %w", quizSetID, err)
		}
		questions = append(questions, sq)
	}
	return questions, nil
}
