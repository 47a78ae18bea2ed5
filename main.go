package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"campus_backend/config"
	_ "campus_backend/docs"
	"campus_backend/handlers"
	"campus_backend/models"
	"campus_backend/repositories"
	"campus_backend/routes"
	"campus_backend/services"
)

func main() {
	cfg := config.Load()

	client := config.ConnectMongo(cfg)
	defer config.DisconnectMongo(client)
	db := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatal("Failed to create indexes:", err)
	}
	cancel()

	secret := []byte(cfg.AccessTokenSecret)

	admins := repositories.NewPersonRepository(db, models.RoleAdmin)
	faculties := repositories.NewPersonRepository(db, models.RoleFaculty)
	students := repositories.NewPersonRepository(db, models.RoleStudent)
	courses := repositories.NewCourseRepository(db)
	rooms := repositories.NewRoomRepository(db)
	bookings := repositories.NewBookingRepository(db)
	timetables := repositories.NewTimetableRepository(db)
	enrollments := repositories.NewEnrollmentRepository(db)
	notifications := repositories.NewNotificationRepository(db)
	sequences := repositories.NewSequenceRepository(db)

	notificationSvc := services.NewNotificationService(notifications, students, faculties)

	deps := routes.Deps{
		Admins:        handlers.NewAccountHandler(services.NewAccountService(models.RoleAdmin, admins, sequences, secret)),
		Faculties:     handlers.NewAccountHandler(services.NewAccountService(models.RoleFaculty, faculties, sequences, secret)),
		Students:      handlers.NewAccountHandler(services.NewAccountService(models.RoleStudent, students, sequences, secret)),
		Courses:       handlers.NewCourseHandler(services.NewCourseService(courses, faculties)),
		Rooms:         handlers.NewRoomHandler(services.NewRoomService(rooms, sequences)),
		Bookings:      handlers.NewBookingHandler(services.NewBookingService(bookings, rooms, courses, admins)),
		Timetables:    handlers.NewTimetableHandler(services.NewTimetableService(timetables, courses, faculties, bookings, enrollments, notificationSvc)),
		Enrollments:   handlers.NewEnrollmentHandler(services.NewEnrollmentService(enrollments, students, courses)),
		Notifications: handlers.NewNotificationHandler(notificationSvc),
		Secret:        secret,
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	}))
	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, deps)

	log.Fatal(app.Listen(":" + cfg.Port))
}
