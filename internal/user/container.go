package user

import "gorm.io/gorm"

type UserContainer struct {
	Repo        UserRepository
	ProfileRepo ProfileRepository
	Service     UserService
	Handler     *Handler
}

func NewUserContainer(db *gorm.DB) *UserContainer {
	repo := NewUserRepository(db)
	profileRepo := NewProfileRepository(db)
	service := NewService(repo, profileRepo)
	handler := NewHandler(service)

	return &UserContainer{
		Repo:        repo,
		ProfileRepo: profileRepo,
		Service:     service,
		Handler:     handler,
	}
}
