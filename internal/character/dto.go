package character

type CreateCharacterDTO struct {
	Name     string `json:"name" validate:"required,min=1,max=40"`
	Class    Class  `json:"class" validate:"required,oneof=WIZARD BRUTE ASSASSIN"`
	IsPublic bool   `json:"is_public"`
}

type UpdateCharacterDTO struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=40"`
	Class    *Class  `json:"class" validate:"omitempty,oneof=WIZARD BRUTE ASSASSIN"`
	IsPublic *bool   `json:"is_public"`
}
