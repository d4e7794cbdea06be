package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/maabu025/book-hubs/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/register", "",
		strings.NewReader(`{"username":"mariam","email":"mariam@bookhub.com","password":"admin123"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}

	var reg struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, rec, &reg)
	if !reg.Success || reg.Token == "" {
		t.Fatalf("register response incomplete: %+v", reg)
	}
	if reg.User.Role != models.RoleUser {
		t.Errorf("self-registration role = %q, want user", reg.User.Role)
	}

	rec = env.do(t, http.MethodPost, "/auth/login", "",
		strings.NewReader(`{"email":"mariam@bookhub.com","password":"admin123"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterNeverSerializesPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/register", "",
		strings.NewReader(`{"username":"mariam","email":"mariam@bookhub.com","password":"admin123"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "admin123") || strings.Contains(rec.Body.String(), "password") {
		t.Errorf("password material in response: %s", rec.Body.String())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	payload := `{"username":"mariam","email":"mariam@bookhub.com","password":"admin123"}`
	rec := env.do(t, http.MethodPost, "/auth/register", "", strings.NewReader(payload))
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register: status = %d, want 201", rec.Code)
	}

	rec = env.do(t, http.MethodPost, "/auth/register", "",
		strings.NewReader(`{"username":"other","email":"mariam@bookhub.com","password":"admin123"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: status = %d, want 400", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"token"`) {
		t.Error("duplicate registration must not issue a token")
	}
	if len(env.users.users) != 1 {
		t.Errorf("duplicate registration created a user, have %d", len(env.users.users))
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/register", "",
		strings.NewReader(`{"username":"ab","email":"nope","password":"123"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &body)
	for _, field := range []string{"username", "email", "password"} {
		if _, ok := body.Errors[field]; !ok {
			t.Errorf("errors must name %s, got %v", field, body.Errors)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/register", "",
		strings.NewReader(`{"username":"mariam","email":"mariam@bookhub.com","password":"admin123"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, want 201", rec.Code)
	}

	rec = env.do(t, http.MethodPost, "/auth/login", "",
		strings.NewReader(`{"email":"mariam@bookhub.com","password":"wrong12"}`))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/auth/me", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	token := env.tokenFor(t, "reader", models.RoleUser)
	rec = env.do(t, http.MethodGet, "/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Success bool `json:"success"`
		User    struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeBody(t, rec, &body)
	if body.User.Username != "reader" {
		t.Errorf("username = %q, want reader", body.User.Username)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	env := newTestEnv(t)

	u := &models.User{Username: "reader", Role: models.RoleUser}
	if err := env.users.Insert(context.Background(), u); err != nil {
		t.Fatal(err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.ID.Hex(),
		"role": u.Role,
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}

	rec := env.do(t, http.MethodGet, "/auth/me", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestTokenSignedWithWrongSecretRejected(t *testing.T) {
	env := newTestEnv(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "000000000000000000000000",
		"role": models.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := forged.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatal(err)
	}

	rec := env.do(t, http.MethodGet, "/admin/insights", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
