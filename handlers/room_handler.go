package handlers

import (
	"github.com/gofiber/fiber/v2"

	"campus_backend/dto"
	"campus_backend/services"
)

type RoomHandler struct {
	svc *services.RoomService
}

func NewRoomHandler(svc *services.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

func (h *RoomHandler) Create(c *fiber.Ctx) error {
	var req dto.RoomRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	room, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Room created successfully", "room", room)
}

func (h *RoomHandler) List(c *fiber.Ctx) error {
	rooms, err := h.svc.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "All Rooms List", "rooms", rooms)
}

func (h *RoomHandler) Update(c *fiber.Ctx) error {
	var req dto.RoomUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	room, err := h.svc.Update(c.Context(), c.Params("roomId"), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Room updated successfully", "room", room)
}

func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("roomId")); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Room deleted successfully", "room", c.Params("roomId"))
}
