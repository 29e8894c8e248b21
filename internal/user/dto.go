package user

type GoogleLoginDTO struct {
	Code        string `json:"code" validate:"required"`
	RedirectURI string `json:"redirect_uri" validate:"required,url"`
}

type UpdateProfileDTO struct {
	Username    *string `json:"username" validate:"omitempty,min=3,max=30,alphanum"`
	DisplayName *string `json:"display_name" validate:"omitempty,min=1,max=60"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,url"`
}

type MeResponse struct {
	User    *User    `json:"user"`
	Profile *Profile `json:"profile"`
}
