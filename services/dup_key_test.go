package services

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"campus_backend/apperr"
	"campus_backend/dto"
	"campus_backend/models"
)

// dupKey simulates the unique index rejecting a write that slipped past the
// application-level pre-check: the other side of the race won.
func dupKey() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

// Insert-failing fakes. The embedded fake answers the pre-checks; the
// override makes the final write lose to the index.

type dupBookings struct{ *fakeBookings }

func (dupBookings) Insert(ctx context.Context, b models.Booking) (models.Booking, error) {
	return models.Booking{}, dupKey()
}

type dupEnrollments struct{ *fakeEnrollments }

func (dupEnrollments) Insert(ctx context.Context, e models.Enrollment) (models.Enrollment, error) {
	return models.Enrollment{}, dupKey()
}

type dupTimetables struct{ *fakeTimetables }

func (dupTimetables) Insert(ctx context.Context, e models.TimeTableEntry) (models.TimeTableEntry, error) {
	return models.TimeTableEntry{}, dupKey()
}

type dupPersons struct{ *fakePersons }

func (dupPersons) Insert(ctx context.Context, p models.Person) (models.Person, error) {
	return models.Person{}, dupKey()
}

type dupCourses struct{ *fakeCourses }

func (dupCourses) Insert(ctx context.Context, c models.Course) (models.Course, error) {
	return models.Course{}, dupKey()
}

type dupRooms struct{ *fakeRooms }

func (dupRooms) Insert(ctx context.Context, r models.Room) (models.Room, error) {
	return models.Room{}, dupKey()
}

func TestBookingCreateLosesIndexRace(t *testing.T) {
	rooms := newFakeRooms(models.Room{RoomID: "R1000", Building: "Main", Name: "Lab 1", FloorNo: "1"})
	courses := newFakeCourses(models.Course{CourseCode: "HIST201", Name: "History II"})
	admins := newFakePersons(models.Person{PersonID: "A1000", Email: "admin@uni.lk"})
	svc := NewBookingService(dupBookings{newFakeBookings()}, rooms, courses, admins)

	if _, err := svc.Create(context.Background(), histBooking()); err != apperr.ErrBookingConflict {
		t.Fatalf("expected ErrBookingConflict, got %v", err)
	}
}

func TestEnrollLosesIndexRace(t *testing.T) {
	students := newFakePersons(models.Person{PersonID: "S1000", Email: "student@uni.lk"})
	courses := newFakeCourses(models.Course{CourseCode: "ENG101", Name: "English I"})
	svc := NewEnrollmentService(dupEnrollments{&fakeEnrollments{}}, students, courses)

	if _, err := svc.Enroll(context.Background(), "S1000", "ENG101"); err != apperr.ErrEnrollmentExists {
		t.Fatalf("expected ErrEnrollmentExists, got %v", err)
	}
}

func TestTimetableCreateLosesIndexRace(t *testing.T) {
	courses := newFakeCourses(models.Course{CourseCode: "COMP101", Name: "Programming I", Faculties: []string{"F1002"}})
	faculty := newFakePersons(models.Person{PersonID: "F1002", Email: "lecturer@uni.lk"})
	bookings := newFakeBookings(models.Booking{
		RoomID:    "R1000",
		CourseID:  "COMP101",
		BookedBy:  "A1000",
		DayOfWeek: 1,
		StartTime: models.TimeOfDay{Hours: 9, Minutes: 0},
		EndTime:   models.TimeOfDay{Hours: 11, Minutes: 0},
	})
	svc := NewTimetableService(dupTimetables{newFakeTimetables()}, courses, faculty, bookings, &fakeEnrollments{}, &fakeNotifier{})

	if _, err := svc.Create(context.Background(), compEntry()); err != apperr.ErrTimetableExists {
		t.Fatalf("expected ErrTimetableExists, got %v", err)
	}
}

func TestRegisterLosesIndexRace(t *testing.T) {
	svc := NewAccountService(models.RoleAdmin, dupPersons{newFakePersons()}, &fakeSequences{}, testSecret)

	_, err := svc.Register(context.Background(), registration())
	appErr, okay := err.(*apperr.Error)
	if !okay || appErr.Message != "Admin already exists" {
		t.Fatalf("expected duplicate-email rejection, got %v", err)
	}
}

func TestCourseCreateLosesIndexRace(t *testing.T) {
	faculty := newFakePersons(models.Person{PersonID: "F1002", Email: "lecturer@uni.lk"})
	svc := NewCourseService(dupCourses{newFakeCourses()}, faculty)

	req := dto.CourseRequest{
		CourseCode:  "COMP101",
		Name:        "Programming I",
		Description: "Introductory programming",
		Credits:     3,
		Faculties:   []string{"F1002"},
	}
	if _, err := svc.Create(context.Background(), req); err != apperr.ErrCourseExists {
		t.Fatalf("expected ErrCourseExists, got %v", err)
	}
}

func TestRoomCreateLosesIndexRace(t *testing.T) {
	svc := NewRoomService(dupRooms{newFakeRooms()}, &fakeSequences{})

	req := dto.RoomRequest{FloorNo: "1", Building: "Main", Name: "Lab 1", Capacity: 40}
	if _, err := svc.Create(context.Background(), req); err != apperr.ErrRoomExists {
		t.Fatalf("expected ErrRoomExists, got %v", err)
	}
}
