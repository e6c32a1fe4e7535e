package booking

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestCreateBooking(t *testing.T) {
	handler := NewHandler(NewService(NewInMemoryRepository()))
	app := fiber.New()
	handler.RegisterPublicRoutes(app)

	// missing fields are rejected
	req := httptest.NewRequest("POST", "/api/v1/booking", strings.NewReader(`{"event":"Summer Tour"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", res.StatusCode)
	}

	body := `{"event":"Summer Tour","name":"Asha","age":24,"email":"asha@example.com"}`
	req2 := httptest.NewRequest("POST", "/api/v1/booking", strings.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for booking, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), `"Summer Tour"`) || !strings.Contains(string(b2), `"bookingId":1`) {
		t.Fatalf("unexpected booking response: %s", string(b2))
	}
}
