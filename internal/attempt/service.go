package attempt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/questlog-lambda/internal/character"
	"github.com/saulo-duarte/questlog-lambda/internal/config"
	"github.com/saulo-duarte/questlog-lambda/internal/session"
	"github.com/saulo-duarte/questlog-lambda/internal/user"
	"gorm.io/datatypes"
)

type AttemptService interface {
	session.AttemptSink

	ListByUser(ctx context.Context, userID string, limit int) ([]*QuizAttempt, error)
	ListByQuizSet(ctx context.Context, quizSetID, userID string) ([]*QuizAttempt, error)
	StatsByUser(ctx context.Context, userID string) (*AttemptStats, error)
}

type attemptService struct {
	repo             AttemptRepository
	profiles         user.ProfileRepository
	characterService character.CharacterService
}

func NewService(repo AttemptRepository, profiles user.ProfileRepository, characterService character.CharacterService) AttemptService {
	return &attemptService{
		repo:             repo,
		profiles:         profiles,
		characterService: characterService,
	}
}

// SubmitAttempt persiste uma tentativa finalizada. O score já vem
// calculado pelo motor de sessão e não é recalculado aqui.
func (s *attemptService) SubmitAttempt(ctx context.Context, a session.Attempt) (string, error) {
	log := config.WithContext(ctx)
	log.Info("Persistindo tentativa de quiz...", "quiz_set_id", a.QuizSetID)

	quizSetID, err := uuid.Parse(a.QuizSetID)
	if err != nil {
		return "", fmt.Errorf("invalid quiz set id: %w", err)
	}
	userID, err := uuid.Parse(a.UserID)
	if err != nil {
		return "", fmt.Errorf("invalid user id: %w", err)
	}

	profile, err := s.profiles.FindByUserID(a.UserID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", fmt.Errorf("profile not found for user %s", a.UserID)
	}

	rawAnswers, err := json.Marshal(a.Answers)
	if err != nil {
		return "", err
	}

	record := &QuizAttempt{
		ID:          uuid.New(),
		QuizSetID:   quizSetID,
		UserID:      userID,
		ProfileID:   profile.ID,
		Answers:     datatypes.JSON(rawAnswers),
		Score:       a.Result.Score,
		CompletedAt: a.CompletedAt,
	}

	var characterID *uuid.UUID
	if a.CharacterID != "" {
		parsed, err := uuid.Parse(a.CharacterID)
		if err != nil {
			return "", fmt.Errorf("invalid character id: %w", err)
		}
		characterID = &parsed
		record.CharacterID = characterID
	}

	if err := s.repo.Create(record); err != nil {
		log.WithError(err).Error("Erro ao persistir tentativa de quiz")
		return "", err
	}

	// Falha na gamificação não desfaz a tentativa já registrada.
	if characterID != nil {
		if _, err := s.characterService.AwardExperience(ctx, *characterID, a.UserID, a.Result.Score); err != nil {
			log.WithError(err).Warn("Tentativa registrada, mas o XP do personagem não foi creditado")
		}
	}

	log.Info("Tentativa registrada com sucesso", "attempt_id", record.ID.String(), "score", record.Score)
	return record.ID.String(), nil
}

func (s *attemptService) ListByUser(ctx context.Context, userID string, limit int) ([]*QuizAttempt, error) {
	log := config.WithContext(ctx)

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	attempts, err := s.repo.ListByUser(userID, limit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar tentativas do usuário")
		return nil, err
	}
	return attempts, nil
}

func (s *attemptService) ListByQuizSet(ctx context.Context, quizSetID, userID string) ([]*QuizAttempt, error) {
	log := config.WithContext(ctx)

	attempts, err := s.repo.ListByQuizSet(quizSetID, userID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar tentativas do conjunto")
		return nil, err
	}
	return attempts, nil
}

func (s *attemptService) StatsByUser(ctx context.Context, userID string) (*AttemptStats, error) {
	log := config.WithContext(ctx)

	stats, err := s.repo.StatsByUser(userID)
	if err != nil {
		log.WithError(err).Error("Erro ao calcular estatísticas de tentativas")
		return nil, err
	}
	return stats, nil
}
