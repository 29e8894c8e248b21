package container

import (
	"context"
	"log"
	"os"

	"github.com/saulo-duarte/questlog-lambda/internal/attempt"
	"github.com/saulo-duarte/questlog-lambda/internal/auth"
	"github.com/saulo-duarte/questlog-lambda/internal/character"
	"github.com/saulo-duarte/questlog-lambda/internal/community"
	"github.com/saulo-duarte/questlog-lambda/internal/config"
	"github.com/saulo-duarte/questlog-lambda/internal/quizset"
	"github.com/saulo-duarte/questlog-lambda/internal/session"
	"github.com/saulo-duarte/questlog-lambda/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	QuizSetContainer   *quizset.QuizSetContainer
	CharacterContainer *character.CharacterContainer
	AttemptContainer   *attempt.AttemptContainer
	SessionContainer   *session.SessionContainer
	CommunityContainer *community.CommunityContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	quizSetContainer := quizset.NewQuizSetContainer(config.DB)
	characterContainer := character.NewCharacterContainer(config.DB)

	attemptContainer := attempt.NewAttemptContainer(
		config.DB,
		userContainer.ProfileRepo,
		characterContainer.Service,
	)

	sessionContainer := session.NewSessionContainer(
		quizset.NewQuestionSource(quizSetContainer.Service),
		attemptContainer.Service,
	)

	communityContainer := community.NewCommunityContainer(
		userContainer.Repo,
		attemptContainer.Repo,
		quizSetContainer.Repo,
		characterContainer.Repo,
	)

	return &Container{
		UserContainer:      userContainer,
		QuizSetContainer:   quizSetContainer,
		CharacterContainer: characterContainer,
		AttemptContainer:   attemptContainer,
		SessionContainer:   sessionContainer,
		CommunityContainer: communityContainer,
	}
}
