package handlers

import (
	"github.com/gofiber/fiber/v2"

	"campus_backend/dto"
	"campus_backend/services"
)

type NotificationHandler struct {
	svc *services.NotificationService
}

func NewNotificationHandler(svc *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// Send validates that the recipient is an existing student or faculty
// member and persists the notification.
func (h *NotificationHandler) Send(c *fiber.Ctx) error {
	var req dto.NotificationRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	notification, err := h.svc.Send(c.Context(), req.Recipient, req.Message)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Notification sent successfully", "notification", notification)
}
