package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/questlog-lambda/internal/auth"
	"github.com/saulo-duarte/questlog-lambda/internal/config"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	service  UserService
	validate *validator.Validate
}

func NewHandler(s UserService) *Handler {
	return &Handler{
		service:  s,
		validate: validator.New(),
	}
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GoogleLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para login")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, refreshToken, err := h.service.LoginWithGoogle(r.Context(), dto.Code, dto.RedirectURI)
	if err != nil {
		log.WithError(err).Error("Erro no login com Google")
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	if err := h.setAuthCookies(w, u, refreshToken); err != nil {
		log.WithError(err).Error("Erro ao emitir tokens de acesso")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Info("Login realizado com sucesso", "user_id", u.ID.String())
	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userCookie, err := r.Cookie("refresh_user")
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	tokenCookie, err := r.Cookie("refresh_token")
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, newToken, err := h.service.Refresh(r.Context(), userCookie.Value, tokenCookie.Value)
	if err != nil {
		if errors.Is(err, ErrInvalidRefreshToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Erro ao renovar sessão")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.setAuthCookies(w, u, newToken); err != nil {
		log.WithError(err).Error("Erro ao emitir tokens renovados")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "token refreshed",
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	me, err := h.service.GetMe(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao buscar usuário autenticado")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, me)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para atualizar profile")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.service.UpdateProfile(r.Context(), claims.UserID, dto)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao atualizar profile")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	// Logout funciona mesmo com o access token já expirado: os cookies
	// são limpos de qualquer forma. Com um token válido, o refresh
	// token armazenado também é invalidado.
	if cookie, err := r.Cookie("jwt"); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateJWT(cookie.Value); err == nil {
			if err := h.service.Logout(r.Context(), claims.UserID); err != nil {
				log.WithError(err).Warn("Erro ao invalidar refresh token no logout")
			}
		}
	}

	h.clearAuthCookies(w)

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}

// clearAuthCookies expira os mesmos três cookies que setAuthCookies
// emite, no mesmo domínio e nos mesmos paths.
func (h *Handler) clearAuthCookies(w http.ResponseWriter) {
	domain := os.Getenv("COOKIE_DOMAIN")

	expire := func(name, path string) {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     path,
			Domain:   domain,
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
	}

	expire("jwt", "/")
	expire("refresh_token", "/auth/refresh")
	expire("refresh_user", "/auth/refresh")
}

func (h *Handler) setAuthCookies(w http.ResponseWriter, u *User, refreshToken string) error {
	accessToken, err := auth.GenerateJWT(u.ID.String(), string(u.Role), accessTokenTTL)
	if err != nil {
		return err
	}

	domain := os.Getenv("COOKIE_DOMAIN")

	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    accessToken,
		Path:     "/",
		Domain:   domain,
		MaxAge:   int(accessTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/auth/refresh",
		Domain:   domain,
		MaxAge:   int(refreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_user",
		Value:    u.ID.String(),
		Path:     "/auth/refresh",
		Domain:   domain,
		MaxAge:   int(refreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	return nil
}
