package merch

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestMerchRoutes(t *testing.T) {
	repo := NewInMemoryRepository([]Merch{
		{ID: 1, Title: "Tour Tee", Price: 500, Image: "/img/tee.png"},
		{ID: 2, Title: "Vinyl", Price: 1500, Image: "/img/vinyl.png"},
	})
	handler := NewHandler(NewService(repo))
	app := fiber.New()
	handler.RegisterPublicRoutes(app)

	req := httptest.NewRequest("GET", "/api/v1/merch", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for list, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"Tour Tee"`) || !strings.Contains(string(b), `"Vinyl"`) {
		t.Fatalf("list missing seeded merch: %s", string(b))
	}

	req2 := httptest.NewRequest("GET", "/api/v1/merch/2", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for get, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), `"Vinyl"`) {
		t.Fatalf("unexpected get response: %s", string(b2))
	}

	req3 := httptest.NewRequest("GET", "/api/v1/merch/99", nil)
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown merch, got %d", res3.StatusCode)
	}
}
