package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type recordingMailer struct {
	mu    sync.Mutex
	sent  []string
	fired chan struct{}
}

func (m *recordingMailer) SendWelcome(name, email string) error {
	m.mu.Lock()
	m.sent = append(m.sent, email)
	m.mu.Unlock()
	close(m.fired)
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	mailer := &recordingMailer{fired: make(chan struct{})}
	handler := NewHandler(NewService(NewInMemoryRepository(nil)), "test-secret", mailer)
	app := fiber.New()
	handler.RegisterPublicRoutes(app)

	// short name is rejected
	req := httptest.NewRequest("POST", "/api/v1/register", strings.NewReader(`{"name":"Al","email":"al@example.com","password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for short name, got %d", res.StatusCode)
	}

	body := `{"name":"Asha","email":"asha@example.com","password":"s3cret"}`
	req2 := httptest.NewRequest("POST", "/api/v1/register", strings.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for register, got %d", res2.StatusCode)
	}

	// the greeting is sent off the request path
	select {
	case <-mailer.fired:
	case <-time.After(2 * time.Second):
		t.Fatalf("welcome mail was never sent")
	}
	mailer.mu.Lock()
	if len(mailer.sent) != 1 || mailer.sent[0] != "asha@example.com" {
		t.Fatalf("unexpected mail log: %v", mailer.sent)
	}
	mailer.mu.Unlock()

	// re-registering the same email is rejected
	req3 := httptest.NewRequest("POST", "/api/v1/register", strings.NewReader(body))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate register, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), "already registered") {
		t.Fatalf("unexpected duplicate message: %s", string(b3))
	}

	// wrong password is a 403
	req4 := httptest.NewRequest("POST", "/api/v1/login", strings.NewReader(`{"email":"asha@example.com","password":"wrong"}`))
	req4.Header.Set("Content-Type", "application/json")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for bad password, got %d", res4.StatusCode)
	}

	req5 := httptest.NewRequest("POST", "/api/v1/login", strings.NewReader(`{"email":"asha@example.com","password":"s3cret"}`))
	req5.Header.Set("Content-Type", "application/json")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for login, got %d", res5.StatusCode)
	}
	b5, _ := io.ReadAll(res5.Body)
	var loginRes struct {
		Token  string `json:"token"`
		UserID int    `json:"userId"`
	}
	if err := json.Unmarshal(b5, &loginRes); err != nil || loginRes.Token == "" {
		t.Fatalf("login response missing token: %s", string(b5))
	}

	// the issued token carries the user's claims and verifies with the secret
	parsed, err := jwt.Parse(loginRes.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token failed to parse: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["email"] != "asha@example.com" {
		t.Fatalf("unexpected token claims: %v", claims)
	}
}
