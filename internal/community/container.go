package community

import (
	"github.com/saulo-duarte/questlog-lambda/internal/attempt"
	"github.com/saulo-duarte/questlog-lambda/internal/character"
	"github.com/saulo-duarte/questlog-lambda/internal/quizset"
	"github.com/saulo-duarte/questlog-lambda/internal/user"
)

type CommunityContainer struct {
	Handler *Handler
}

func NewCommunityContainer(
	users user.UserRepository,
	attempts attempt.AttemptRepository,
	quizSets quizset.QuizSetRepository,
	characterRepo character.CharacterRepository,
) *CommunityContainer {
	service := NewService(users, attempts, quizSets, characterRepo)
	handler := NewHandler(service)

	return &CommunityContainer{
		Handler: handler,
	}
}
