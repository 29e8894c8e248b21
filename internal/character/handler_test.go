package character

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/saulo-duarte/questlog-lambda/internal/auth"
)

func TestCreateCharacterMalformedClaim(t *testing.T) {
	os.Setenv("JWT_SECRET", "segredo-de-teste-para-handlers-bem-longo")
	auth.Init()

	token, err := auth.GenerateJWT("nao-e-um-uuid", "user", time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT falhou: %v", err)
	}

	h := NewHandler(NewService(newFakeCharacterRepo()))
	srv := auth.AuthMiddleware(http.HandlerFunc(h.CreateCharacter))

	body := `{"name":"Aldric","class":"WIZARD"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Claim de usuário malformada deveria responder 401, respondeu %d", rec.Code)
	}
}
