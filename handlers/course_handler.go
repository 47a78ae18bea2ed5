package handlers

import (
	"github.com/gofiber/fiber/v2"

	"campus_backend/dto"
	"campus_backend/middleware"
	"campus_backend/services"
)

type CourseHandler struct {
	svc *services.CourseService
}

func NewCourseHandler(svc *services.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var req dto.CourseRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	course, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Course created successfully", "course", course)
}

// List is public: prospective students browse the catalog without a token.
func (h *CourseHandler) List(c *fiber.Ctx) error {
	courses, err := h.svc.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "All Courses List", "courses", courses)
}

// ListForFaculty returns the courses taught by the calling faculty member.
func (h *CourseHandler) ListForFaculty(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	courses, err := h.svc.ListByFaculty(c.Context(), user.FacultyID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "All Courses List", "courses", courses)
}

func (h *CourseHandler) Update(c *fiber.Ctx) error {
	var req dto.CourseUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	course, err := h.svc.Update(c.Context(), c.Params("courseCode"), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Course updated successfully", "course", course)
}

func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("courseCode")); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Course deleted successfully", "course", c.Params("courseCode"))
}
