package handlers

import (
	"github.com/gofiber/fiber/v2"

	"campus_backend/dto"
	"campus_backend/middleware"
	"campus_backend/services"
)

type TimetableHandler struct {
	svc *services.TimetableService
}

func NewTimetableHandler(svc *services.TimetableService) *TimetableHandler {
	return &TimetableHandler{svc: svc}
}

func entryInput(req dto.TimetableRequest) services.EntryInput {
	return services.EntryInput{
		CourseID:  req.CourseID,
		DayOfWeek: req.DayOfWeek,
		StartTime: *req.StartTime,
		EndTime:   *req.EndTime,
		Faculty:   req.Faculty,
		Location:  req.Location,
	}
}

// Create godoc
// @Summary Create a timetable entry
// @Tags timetables
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/timetables [post]
func (h *TimetableHandler) Create(c *fiber.Ctx) error {
	var req dto.TimetableRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	entry, err := h.svc.Create(c.Context(), entryInput(req))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Timetable created successfully", "timeTable", entry)
}

func (h *TimetableHandler) List(c *fiber.Ctx) error {
	entries, err := h.svc.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "All Timetable Entries List", "data", entries)
}

// Update persists the entry and responds immediately; the notification
// fan-out to enrolled students and the assigned faculty member runs in the
// background.
func (h *TimetableHandler) Update(c *fiber.Ctx) error {
	var req dto.TimetableRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	entry, err := h.svc.Update(c.Context(), c.Params("id"), entryInput(req))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Timetable entry updated successfully", "data", entry)
}

func (h *TimetableHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Timetable entry deleted successfully", "data", c.Params("id"))
}

// ForStudent returns the timetable for the calling student's enrolled
// courses.
func (h *TimetableHandler) ForStudent(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	entries, err := h.svc.ForStudent(c.Context(), user.StudentID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Timetables fetched successfully", "data", entries)
}

// ForFaculty returns the timetable for the courses the caller teaches.
func (h *TimetableHandler) ForFaculty(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	entries, err := h.svc.ForFaculty(c.Context(), user.FacultyID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Timetables fetched successfully", "data", entries)
}
