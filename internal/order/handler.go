package order

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/stageline/bands-backend/internal/user"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/order", h.createOrder)
	app.Post("/api/v1/payment/verify", h.verifyPayment)
	app.Get("/api/v1/orders", h.getOrders)
}

type createOrderRequest struct {
	TotalAmount float64 `json:"totalAmount"`
	Items       []Item  `json:"items"`
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.TotalAmount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "totalAmount must be positive"})
	}
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord, gatewayOrder, err := h.service.Create(userID, payload.TotalAmount, payload.Items)
	if err != nil {
		switch err {
		case ErrEmptyOrder, ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"order":         ord,
		"razorpayOrder": gatewayOrder,
	})
}

func (h *Handler) verifyPayment(c *fiber.Ctx) error {
	payload := new(verifyPaymentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.RazorpayOrderID == "" || payload.RazorpayPaymentID == "" || payload.RazorpaySignature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "missing payment fields"})
	}

	if err := h.service.VerifyPayment(payload.RazorpayOrderID, payload.RazorpayPaymentID, payload.RazorpaySignature); err != nil {
		switch err {
		case ErrInvalidSignature:
			fmt.Printf("payment verification rejected for order %s: invalid signature\n", payload.RazorpayOrderID)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "invalid signature"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "payment verification failed"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "payment verified"})
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
	return c.JSON(orders)
}
