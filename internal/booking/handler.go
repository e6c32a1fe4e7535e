package booking

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/booking", h.createBooking)
}

type bookingRequest struct {
	Event string `json:"event"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
}

func (h *Handler) createBooking(c *fiber.Ctx) error {
	payload := new(bookingRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(Booking{
		Event: payload.Event,
		Name:  payload.Name,
		Age:   payload.Age,
		Email: payload.Email,
	})
	if err != nil {
		switch err {
		case ErrMissingFields:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "all fields are required"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "booking failed"})
		}
	}
	return c.JSON(created)
}
