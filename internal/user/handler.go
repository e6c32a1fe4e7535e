package user

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// WelcomeMailer sends the post-registration greeting. Delivery problems
// never fail the sign-up request.
type WelcomeMailer interface {
	SendWelcome(name, email string) error
}

type Handler struct {
	service   *Service
	jwtSecret string
	mailer    WelcomeMailer
}

func NewHandler(service *Service, jwtSecret string, mailer WelcomeMailer) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret, mailer: mailer}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/register", h.register)
	app.Post("/api/v1/login", h.login)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	// mirrors the sign-up form contract: short names and passwords are
	// rejected before touching the store
	if len(payload.Name) < 3 || payload.Email == "" || len(payload.Password) < 4 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "bad request"})
	}

	created, err := h.service.Register(User{
		Name:      payload.Name,
		Email:     payload.Email,
		Password:  payload.Password,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		if err == ErrEmailExists {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "you are already registered you can login", "success": false})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error", "success": false})
	}

	if h.mailer != nil {
		go func(name, email string) {
			if err := h.mailer.SendWelcome(name, email); err != nil {
				fmt.Printf("warning: welcome mail to %s failed: %v\n", email, err)
			}
		}(created.Name, created.Email)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "user registered successfully", "success": true})
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Email == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "bad request"})
	}

	u, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "authentication failed", "success": false})
	}

	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token", "success": false})
	}

	return c.JSON(fiber.Map{
		"message": "login successfully",
		"success": true,
		"token":   signed,
		"userId":  u.ID,
		"name":    u.Name,
		"email":   u.Email,
	})
}
