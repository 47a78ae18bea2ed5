package handlers

import (
	"github.com/gofiber/fiber/v2"

	"campus_backend/dto"
	"campus_backend/middleware"
	"campus_backend/services"
)

type EnrollmentHandler struct {
	svc *services.EnrollmentService
}

func NewEnrollmentHandler(svc *services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

// Create enrolls the calling student in a course; the student ID comes from
// the token, never from the body.
func (h *EnrollmentHandler) Create(c *fiber.Ctx) error {
	var req dto.EnrollmentRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	user := middleware.CurrentUser(c)
	enrollment, err := h.svc.Enroll(c.Context(), user.StudentID, req.CourseID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Enrollment done successfully", "data", enrollment)
}

func (h *EnrollmentHandler) List(c *fiber.Ctx) error {
	enrollments, err := h.svc.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "All enrollments List", "data", enrollments)
}

// EnrolledCourses returns the course documents behind the calling student's
// enrollments.
func (h *EnrollmentHandler) EnrolledCourses(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	courses, err := h.svc.CoursesFor(c.Context(), user.StudentID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Enrolled courses fetched successfully", "courses", courses)
}
