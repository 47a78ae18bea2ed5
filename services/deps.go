package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"campus_backend/models"
)

// Storage interfaces consumed by the services. The repositories package
// provides the MongoDB implementations; tests substitute in-memory fakes.

type PersonStore interface {
	Insert(ctx context.Context, p models.Person) (models.Person, error)
	FindByEmail(ctx context.Context, email string) (*models.Person, error)
	FindByPersonID(ctx context.Context, personID string) (*models.Person, error)
	Exists(ctx context.Context, personID string) (bool, error)
	CountByPersonIDs(ctx context.Context, ids []string) (int64, error)
	All(ctx context.Context) ([]models.Person, error)
	UpdateByPersonID(ctx context.Context, personID string, fields bson.M) (*models.Person, error)
	DeleteByPersonID(ctx context.Context, personID string) (bool, error)
}

type SequenceAllocator interface {
	NextPublicID(ctx context.Context, prefix string) (string, error)
}

type CourseStore interface {
	Insert(ctx context.Context, c models.Course) (models.Course, error)
	ExistsByCode(ctx context.Context, courseCode string) (bool, error)
	FindByCode(ctx context.Context, courseCode string) (*models.Course, error)
	All(ctx context.Context) ([]models.Course, error)
	FindByFaculty(ctx context.Context, facultyID string) ([]models.Course, error)
	FindByCodes(ctx context.Context, codes []string) ([]models.Course, error)
	UpdateByCode(ctx context.Context, courseCode string, fields bson.M) (*models.Course, error)
	DeleteByCode(ctx context.Context, courseCode string) (bool, error)
}

type RoomStore interface {
	Insert(ctx context.Context, room models.Room) (models.Room, error)
	Exists(ctx context.Context, roomID string) (bool, error)
	ExistsByPlacement(ctx context.Context, floorNo, building, name string) (bool, error)
	All(ctx context.Context) ([]models.Room, error)
	UpdateByRoomID(ctx context.Context, roomID string, fields bson.M) (*models.Room, error)
	DeleteByRoomID(ctx context.Context, roomID string) (bool, error)
}

type BookingStore interface {
	Insert(ctx context.Context, b models.Booking) (models.Booking, error)
	ExistsTuple(ctx context.Context, roomID string, dayOfWeek int, start, end models.TimeOfDay) (bool, error)
	ExistsForTimetable(ctx context.Context, roomID, courseID string, start, end models.TimeOfDay) (bool, error)
	All(ctx context.Context) ([]models.Booking, error)
	UpdateByID(ctx context.Context, id string, b models.Booking) (*models.Booking, error)
	DeleteByID(ctx context.Context, id string) (*models.Booking, error)
}

type TimetableStore interface {
	Insert(ctx context.Context, e models.TimeTableEntry) (models.TimeTableEntry, error)
	ExistsExact(ctx context.Context, e models.TimeTableEntry) (bool, error)
	All(ctx context.Context) ([]models.TimeTableEntry, error)
	FindByCourseIDs(ctx context.Context, courseIDs []string) ([]models.TimeTableEntry, error)
	UpdateByID(ctx context.Context, id string, e models.TimeTableEntry) (*models.TimeTableEntry, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type EnrollmentStore interface {
	Insert(ctx context.Context, e models.Enrollment) (models.Enrollment, error)
	Exists(ctx context.Context, studentID, courseID string) (bool, error)
	All(ctx context.Context) ([]models.Enrollment, error)
	FindByStudent(ctx context.Context, studentID string) ([]models.Enrollment, error)
	FindByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error)
}

type NotificationStore interface {
	Insert(ctx context.Context, n models.Notification) (models.Notification, error)
}

// Notifier is the internal fan-out path used after timetable updates. It
// trusts its caller and skips recipient validation.
type Notifier interface {
	Notify(ctx context.Context, recipient, message string) error
}
