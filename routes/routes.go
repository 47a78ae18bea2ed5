package routes

import (
	"github.com/gofiber/fiber/v2"

	"campus_backend/handlers"
	"campus_backend/middleware"
	"campus_backend/models"
)

// Deps carries everything route registration needs.
type Deps struct {
	Admins        *handlers.AccountHandler
	Faculties     *handlers.AccountHandler
	Students      *handlers.AccountHandler
	Courses       *handlers.CourseHandler
	Rooms         *handlers.RoomHandler
	Bookings      *handlers.BookingHandler
	Timetables    *handlers.TimetableHandler
	Enrollments   *handlers.EnrollmentHandler
	Notifications *handlers.NotificationHandler
	Secret        []byte
}

// Register wires every route group under /api. Register/login are public;
// everything else sits behind token validation plus a role requirement.
func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	validate := middleware.ValidateToken(d.Secret)
	admin := middleware.RequireRole(models.RoleAdmin)
	faculty := middleware.RequireRole(models.RoleFaculty)
	student := middleware.RequireRole(models.RoleStudent)

	registerAccounts(api.Group("/admins"), d.Admins, validate, admin, admin)
	registerAccounts(api.Group("/faculties"), d.Faculties, validate, admin, faculty)
	registerAccounts(api.Group("/students"), d.Students, validate, admin, student)

	courses := api.Group("/courses")
	courses.Post("/", validate, admin, d.Courses.Create)
	courses.Get("/", d.Courses.List)
	courses.Get("/faculty-courses", validate, faculty, d.Courses.ListForFaculty)
	courses.Put("/:courseCode", validate, admin, d.Courses.Update)
	courses.Delete("/:courseCode", validate, admin, d.Courses.Delete)

	rooms := api.Group("/rooms", validate, admin)
	rooms.Post("/", d.Rooms.Create)
	rooms.Get("/", d.Rooms.List)
	rooms.Put("/:roomId", d.Rooms.Update)
	rooms.Delete("/:roomId", d.Rooms.Delete)

	bookings := api.Group("/bookings", validate, admin)
	bookings.Post("/", d.Bookings.Create)
	bookings.Get("/", d.Bookings.List)
	bookings.Put("/:id", d.Bookings.Update)
	bookings.Delete("/:id", d.Bookings.Delete)

	enrolments := api.Group("/enrolments", validate)
	enrolments.Post("/", student, d.Enrollments.Create)
	enrolments.Get("/", admin, d.Enrollments.List)
	enrolments.Get("/students", student, d.Enrollments.EnrolledCourses)

	timetables := api.Group("/timetables", validate)
	timetables.Post("/", admin, d.Timetables.Create)
	timetables.Get("/", admin, d.Timetables.List)
	timetables.Get("/students", student, d.Timetables.ForStudent)
	timetables.Get("/faculties", faculty, d.Timetables.ForFaculty)
	timetables.Put("/:id", admin, d.Timetables.Update)
	timetables.Delete("/:id", admin, d.Timetables.Delete)

	notifications := api.Group("/notifications")
	notifications.Post("/notification", d.Notifications.Send)
}

// registerAccounts wires one role's account routes. Listing and deletion are
// admin operations; reading and updating a record belong to the record's own
// role (self-scoped for faculty and students).
func registerAccounts(g fiber.Router, h *handlers.AccountHandler, validate, listRole, selfRole fiber.Handler) {
	g.Post("/register", h.Register)
	g.Post("/login", h.Login)
	g.Get("/", validate, listRole, h.List)
	g.Get("/:personId", validate, selfRole, h.Get)
	g.Put("/:personId", validate, selfRole, h.Update)
	g.Delete("/:personId", validate, listRole, h.Delete)
}
