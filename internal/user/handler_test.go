package user

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/questlog-lambda/internal/auth"
)

type fakeUserRepo struct {
	byID map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*User)}
}

func (f *fakeUserRepo) Create(u *User) error {
	f.byID[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByGoogleID(googleID string) (*User, error) {
	for _, u := range f.byID {
		if u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *User) error {
	f.byID[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(f.byID)), nil
}

type fakeProfileRepo struct {
	byUserID map[string]*Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUserID: make(map[string]*Profile)}
}

func (f *fakeProfileRepo) Create(p *Profile) error {
	f.byUserID[p.UserID.String()] = p
	return nil
}

func (f *fakeProfileRepo) FindByUserID(userID string) (*Profile, error) {
	return f.byUserID[userID], nil
}

func (f *fakeProfileRepo) Update(p *Profile) error {
	f.byUserID[p.UserID.String()] = p
	return nil
}

func TestLogout(t *testing.T) {
	os.Setenv("JWT_SECRET", "segredo-de-teste-para-logout-bem-longo")
	os.Setenv("COOKIE_DOMAIN", "example.test")
	auth.Init()

	setup := func(t *testing.T) (*Handler, *fakeUserRepo, *User) {
		t.Helper()
		users := newFakeUserRepo()
		u := &User{
			ID:           uuid.New(),
			GoogleID:     "google-1",
			Email:        "alguem@example.test",
			Name:         "Alguém",
			Role:         RoleUser,
			RefreshToken: "token-cifrado-qualquer",
		}
		if err := users.Create(u); err != nil {
			t.Fatalf("Create falhou: %v", err)
		}
		return NewHandler(NewService(users, newFakeProfileRepo())), users, u
	}

	clearedCookies := func(t *testing.T, rec *httptest.ResponseRecorder) map[string]*http.Cookie {
		t.Helper()
		cleared := make(map[string]*http.Cookie)
		for _, c := range rec.Result().Cookies() {
			if c.MaxAge < 0 {
				cleared[c.Name] = c
			}
		}
		return cleared
	}

	t.Run("ClearsAllAuthCookiesOnConfiguredDomain", func(t *testing.T) {
		h, _, u := setup(t)

		token, err := auth.GenerateJWT(u.ID.String(), string(u.Role), time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT falhou: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
		rec := httptest.NewRecorder()

		h.Logout(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Logout deveria responder 200, respondeu %d", rec.Code)
		}

		cleared := clearedCookies(t, rec)
		for _, name := range []string{"jwt", "refresh_token", "refresh_user"} {
			c, ok := cleared[name]
			if !ok {
				t.Errorf("Logout não limpa o cookie %s; cookies limpos: %v", name, cleared)
				continue
			}
			if c.Domain != "example.test" {
				t.Errorf("Cookie %s limpo no domínio errado: %q", name, c.Domain)
			}
		}
		if c := cleared["refresh_token"]; c != nil && c.Path != "/auth/refresh" {
			t.Errorf("refresh_token deveria ser limpo no path /auth/refresh, foi em %q", c.Path)
		}
	})

	t.Run("InvalidatesStoredRefreshToken", func(t *testing.T) {
		h, users, u := setup(t)

		token, err := auth.GenerateJWT(u.ID.String(), string(u.Role), time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT falhou: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
		h.Logout(httptest.NewRecorder(), req)

		stored := users.byID[u.ID.String()]
		if stored.RefreshToken != "" {
			t.Error("Logout deveria invalidar o refresh token armazenado")
		}
	})

	t.Run("ExpiredTokenStillClearsCookies", func(t *testing.T) {
		h, _, _ := setup(t)

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: "token-invalido"})
		rec := httptest.NewRecorder()

		h.Logout(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Logout com token inválido deveria responder 200, respondeu %d", rec.Code)
		}
		if cleared := clearedCookies(t, rec); len(cleared) != 3 {
			t.Errorf("Logout deveria limpar os 3 cookies mesmo sem token válido; limpou %d", len(cleared))
		}
	})
}
