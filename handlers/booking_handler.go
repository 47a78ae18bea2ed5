package handlers

import (
	"github.com/gofiber/fiber/v2"

	"campus_backend/dto"
	"campus_backend/middleware"
	"campus_backend/services"
)

type BookingHandler struct {
	svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func bookingInput(req dto.BookingRequest, adminID string) services.BookingInput {
	return services.BookingInput{
		RoomID:    req.RoomID,
		CourseID:  req.CourseID,
		AdminID:   adminID,
		DayOfWeek: req.DayOfWeek,
		StartTime: *req.StartTime,
		EndTime:   *req.EndTime,
	}
}

// Create godoc
// @Summary Create a room booking
// @Tags bookings
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req dto.BookingRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	user := middleware.CurrentUser(c)
	booking, err := h.svc.Create(c.Context(), bookingInput(req, user.AdminID))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Booking created successfully", "booking", booking)
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	bookings, err := h.svc.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "All Bookings List", "bookings", bookings)
}

func (h *BookingHandler) Update(c *fiber.Ctx) error {
	var req dto.BookingRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	user := middleware.CurrentUser(c)
	booking, err := h.svc.Update(c.Context(), c.Params("id"), bookingInput(req, user.AdminID))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Booking updated successfully", "booking", booking)
}

func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	booking, err := h.svc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Booking deleted successfully", "booking", booking)
}
