package community

import (
	"context"

	"github.com/saulo-duarte/questlog-lambda/internal/attempt"
	"github.com/saulo-duarte/questlog-lambda/internal/character"
	"github.com/saulo-duarte/questlog-lambda/internal/config"
	"github.com/saulo-duarte/questlog-lambda/internal/quizset"
	"github.com/saulo-duarte/questlog-lambda/internal/user"
)

type CommunityService interface {
	Stats(ctx context.Context) (*CommunityStats, error)
	RecentCompletions(ctx context.Context, limit int) ([]*attempt.RecentCompletion, error)
	PublicQuizSets(ctx context.Context, limit int) ([]*quizset.QuizSet, error)
	PublicCharacters(ctx context.Context, limit int) ([]*character.Character, error)
}

type communityService struct {
	users         user.UserRepository
	attempts      attempt.AttemptRepository
	quizSets      quizset.QuizSetRepository
	characterRepo character.CharacterRepository
}

func NewService(
	users user.UserRepository,
	attempts attempt.AttemptRepository,
	quizSets quizset.QuizSetRepository,
	characterRepo character.CharacterRepository,
) CommunityService {
	return &communityService{
		users:         users,
		attempts:      attempts,
		quizSets:      quizSets,
		characterRepo: characterRepo,
	}
}

func (s *communityService) Stats(ctx context.Context) (*CommunityStats, error) {
	log := config.WithContext(ctx)

	var stats CommunityStats
	var err error

	if stats.TotalUsers, err = s.users.CountAll(); err != nil {
		log.WithError(err).Error("Erro ao contar usuários")
		return nil, err
	}
	if stats.TotalQuizSets, err = s.quizSets.CountPublic(); err != nil {
		log.WithError(err).Error("Erro ao contar conjuntos públicos")
		return nil, err
	}
	if stats.TotalCharacters, err = s.characterRepo.CountPublic(); err != nil {
		log.WithError(err).Error("Erro ao contar personagens públicos")
		return nil, err
	}
	if stats.TotalCompletions, err = s.attempts.CountAll(); err != nil {
		log.WithError(err).Error("Erro ao contar tentativas")
		return nil, err
	}

	return &stats, nil
}

func (s *communityService) RecentCompletions(ctx context.Context, limit int) ([]*attempt.RecentCompletion, error) {
	log := config.WithContext(ctx)

	if limit <= 0 || limit > 50 {
		limit = 20
	}

	completions, err := s.attempts.RecentCompletions(limit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar conclusões recentes")
		return nil, err
	}
	return completions, nil
}

func (s *communityService) PublicQuizSets(ctx context.Context, limit int) ([]*quizset.QuizSet, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.quizSets.ListPublic(limit)
}

func (s *communityService) PublicCharacters(ctx context.Context, limit int) ([]*character.Character, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.characterRepo.ListPublic(limit)
}
