package concert

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/concerts", h.listConcerts)
}

func (h *Handler) listConcerts(c *fiber.Ctx) error {
	concerts, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "error fetching concerts"})
	}
	return c.JSON(concerts)
}
