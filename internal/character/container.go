package character

import "gorm.io/gorm"

type CharacterContainer struct {
	Repo    CharacterRepository
	Service CharacterService
	Handler *Handler
}

func NewCharacterContainer(db *gorm.DB) *CharacterContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &CharacterContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
