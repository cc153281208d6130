package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"employee-task-manager/internal/service"
	"employee-task-manager/internal/websocket"
)

// Handler memegang dependency request layer. Store tidak diakses langsung:
// semua operasi lewat service. Hub boleh nil (misalnya saat test) dan
// notifikasi change feed akan dilewati.
type Handler struct {
	svc *service.Service
	hub *websocket.Hub
}

func New(svc *service.Service, hub *websocket.Hub) *Handler {
	return &Handler{svc: svc, hub: hub}
}

func (h *Handler) notify(event string, data any) {
	if h.hub != nil {
		h.hub.Notify(event, data)
	}
}

// errorResponse memetakan error bertipe dari service ke status HTTP.
func (h *Handler) errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest

	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError
	var authErr *service.AuthError
	switch {
	case errors.As(err, &validationErr):
		if validationErr.Kind == service.KindEmailTaken {
			status = fiber.StatusConflict
		}
	case errors.As(err, &notFoundErr):
		status = fiber.StatusNotFound
	case errors.As(err, &authErr):
		switch authErr.Kind {
		case service.KindInvalidCredentials:
			status = fiber.StatusUnauthorized
		case service.KindRoleMismatch:
			status = fiber.StatusForbidden
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
		"success": false,
		"status":  status,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"success": false,
		"status":  fiber.StatusBadRequest,
	})
}
