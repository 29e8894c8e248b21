package attempt

import (
	"github.com/saulo-duarte/questlog-lambda/internal/character"
	"github.com/saulo-duarte/questlog-lambda/internal/user"
	"gorm.io/gorm"
)

type AttemptContainer struct {
	Repo    AttemptRepository
	Service AttemptService
	Handler *Handler
}

func NewAttemptContainer(
	db *gorm.DB,
	profiles user.ProfileRepository,
	characterService character.CharacterService,
) *AttemptContainer {
	repo := NewRepository(db)
	service := NewService(repo, profiles, characterService)
	handler := NewHandler(service)

	return &AttemptContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
