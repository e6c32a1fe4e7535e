package song

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/songs", h.listSongs)
}

func (h *Handler) listSongs(c *fiber.Ctx) error {
	songs, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "error fetching songs"})
	}
	return c.JSON(songs)
}
