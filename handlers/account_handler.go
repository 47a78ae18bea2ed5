package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"campus_backend/apperr"
	"campus_backend/dto"
	"campus_backend/middleware"
	"campus_backend/models"
	"campus_backend/services"
)

// AccountHandler serves one role's registration, login and CRUD routes.
type AccountHandler struct {
	svc *services.AccountService
}

func NewAccountHandler(svc *services.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

func (h *AccountHandler) role() models.Role { return h.svc.Role() }

func titled(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "Admin"
	case models.RoleFaculty:
		return "Faculty"
	default:
		return "Student"
	}
}

// Register godoc
// @Summary Register a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	person, err := h.svc.Register(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, fmt.Sprintf("New %s created", titled(h.role())), "data", person)
}

func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	token, err := h.svc.Login(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.LoginResponse{AccessToken: token})
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	people, err := h.svc.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, fmt.Sprintf("All %s List", pluralTitled(h.role())), "data", people)
}

func pluralTitled(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "Admins"
	case models.RoleFaculty:
		return "Faculties"
	default:
		return "Students"
	}
}

// selfOnly enforces that faculty and student tokens can only read or write
// their own record. Admin tokens are scoped by route middleware instead.
func (h *AccountHandler) selfOnly(c *fiber.Ctx, personID string) error {
	if h.role() == models.RoleAdmin {
		return nil
	}
	user := middleware.CurrentUser(c)
	if user == nil || user.IDFor(h.role()) != personID {
		log.Printf("Unauthorized access: caller does not match %s ID %s", h.role(), personID)
		return fiber.NewError(fiber.StatusUnauthorized)
	}
	return nil
}

func (h *AccountHandler) Get(c *fiber.Ctx) error {
	personID := c.Params("personId")
	if err := h.selfOnly(c, personID); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("User ID does not match %s ID", h.role()),
		})
	}
	person, err := h.svc.Get(c.Context(), personID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, fmt.Sprintf("%s fetched successfully", titled(h.role())), "data", person)
}

func (h *AccountHandler) Update(c *fiber.Ctx) error {
	personID := c.Params("personId")
	if err := h.selfOnly(c, personID); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("User ID does not match %s ID", h.role()),
		})
	}
	var req dto.UpdatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperr.ErrMissingFields)
	}
	person, err := h.svc.Update(c.Context(), personID, req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, fmt.Sprintf("%s updated successfully", titled(h.role())), "data", person)
}

func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	personID := c.Params("personId")
	if err := h.svc.Delete(c.Context(), personID); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, fmt.Sprintf("%s deleted successfully", titled(h.role())), "data", personID)
}
