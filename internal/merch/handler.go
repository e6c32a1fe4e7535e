package merch

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the read-only merch catalog.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/merch", h.listMerch)
	app.Get("/api/v1/merch/:id<[0-9]+>", h.getMerch)
}

func (h *Handler) listMerch(c *fiber.Ctx) error {
	items, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "error fetching merch", "error": err.Error()})
	}
	return c.JSON(items)
}

func (h *Handler) getMerch(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid merch id"})
	}

	m, err := h.service.GetByID(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "merch not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "error fetching merch item", "error": err.Error()})
		}
	}
	return c.JSON(m)
}
