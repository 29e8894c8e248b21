package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/questlog-lambda/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUserNotFound        = errors.New("user not found")
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type UserService interface {
	LoginWithGoogle(ctx context.Context, code, redirectURI string) (*User, string, error)
	Refresh(ctx context.Context, userID, refreshToken string) (*User, string, error)
	GetMe(ctx context.Context, userID string) (*MeResponse, error)
	UpdateProfile(ctx context.Context, userID string, dto UpdateProfileDTO) (*Profile, error)
	Logout(ctx context.Context, userID string) error
}

type userService struct {
	users    UserRepository
	profiles ProfileRepository
	oauth    *oauth2.Config
}

func NewService(users UserRepository, profiles ProfileRepository) UserService {
	return &userService{
		users:    users,
		profiles: profiles,
		oauth: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// LoginWithGoogle troca o authorization code por um perfil Google e
// garante que usuário e profile existam. Retorna o refresh token em
// claro para o cookie; no banco ele fica cifrado.
func (s *userService) LoginWithGoogle(ctx context.Context, code, redirectURI string) (*User, string, error) {
	log := config.WithContext(ctx)
	log.Info("Autenticando usuário via Google...")

	cfg := *s.oauth
	cfg.RedirectURL = redirectURI

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Falha ao trocar o authorization code")
		return nil, "", err
	}

	info, err := fetchGoogleUserInfo(ctx, cfg.Client(ctx, token))
	if err != nil {
		log.WithError(err).Error("Falha ao buscar perfil Google")
		return nil, "", err
	}

	u, err := s.users.FindByGoogleID(info.ID)
	if err != nil {
		return nil, "", err
	}

	if u == nil {
		u = &User{
			ID:        uuid.New(),
			GoogleID:  info.ID,
			Email:     info.Email,
			Name:      info.Name,
			AvatarURL: info.Picture,
			Role:      RoleUser,
		}
		if err := s.users.Create(u); err != nil {
			log.WithError(err).Error("Erro ao criar usuário")
			return nil, "", err
		}
		log.Info("Usuário criado", "user_id", u.ID.String())
	}

	if err := s.ensureProfile(ctx, u); err != nil {
		return nil, "", err
	}

	refreshToken, err := s.rotateRefreshToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, refreshToken, nil
}

// Refresh valida o refresh token apresentado contra o valor cifrado no
// banco e emite um novo, invalidando o anterior.
func (s *userService) Refresh(ctx context.Context, userID, refreshToken string) (*User, string, error) {
	log := config.WithContext(ctx)

	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, "", err
	}
	if u == nil || u.RefreshToken == "" {
		return nil, "", ErrInvalidRefreshToken
	}

	stored, err := config.Decrypt(u.RefreshToken)
	if err != nil || stored != refreshToken {
		log.Warn("Refresh token rejeitado", "user_id", userID)
		return nil, "", ErrInvalidRefreshToken
	}

	newToken, err := s.rotateRefreshToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, newToken, nil
}

func (s *userService) GetMe(ctx context.Context, userID string) (*MeResponse, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	p, err := s.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	return &MeResponse{User: u, Profile: p}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, dto UpdateProfileDTO) (*Profile, error) {
	log := config.WithContext(ctx)

	p, err := s.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrUserNotFound
	}

	if dto.Username != nil {
		p.Username = strings.ToLower(*dto.Username)
	}
	if dto.DisplayName != nil {
		p.DisplayName = *dto.DisplayName
	}
	if dto.AvatarURL != nil {
		p.AvatarURL = *dto.AvatarURL
	}

	if err := s.profiles.Update(p); err != nil {
		log.WithError(err).Error("Erro ao atualizar profile")
		return nil, err
	}
	return p, nil
}

// Logout invalida o refresh token armazenado. O par de cookies do
// cliente é limpo pelo handler; sem o token no banco, um refresh
// posterior com os cookies antigos é rejeitado.
func (s *userService) Logout(ctx context.Context, userID string) error {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if u == nil || u.RefreshToken == "" {
		return nil
	}

	u.RefreshToken = ""
	return s.users.Update(u)
}

func (s *userService) ensureProfile(ctx context.Context, u *User) error {
	log := config.WithContext(ctx)

	p, err := s.profiles.FindByUserID(u.ID.String())
	if err != nil {
		return err
	}
	if p != nil {
		return nil
	}

	username := strings.Split(u.Email, "@")[0]
	username = strings.ToLower(strings.ReplaceAll(username, ".", ""))

	p = &Profile{
		ID:          uuid.New(),
		UserID:      u.ID,
		Username:    fmt.Sprintf("%s-%s", username, u.ID.String()[:8]),
		DisplayName: u.Name,
		AvatarURL:   u.AvatarURL,
	}
	if err := s.profiles.Create(p); err != nil {
		log.WithError(err).Error("Erro ao criar profile")
		return err
	}
	return nil
}

func (s *userService) rotateRefreshToken(u *User) (string, error) {
	plain := uuid.NewString()

	encrypted, err := config.Encrypt(plain)
	if err != nil {
		return "", err
	}
	u.RefreshToken = encrypted

	if err := s.users.Update(u); err != nil {
		return "", err
	}
	return plain, nil
}

func fetchGoogleUserInfo(ctx context.Context, client *http.Client) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
