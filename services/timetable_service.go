package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"campus_backend/apperr"
	"campus_backend/models"
	"campus_backend/repositories"
)

// EntryInput is a fully-populated timetable request.
type EntryInput struct {
	CourseID  string
	DayOfWeek int
	StartTime models.TimeOfDay
	EndTime   models.TimeOfDay
	Faculty   string
	Location  string
}

// TimetableService validates scheduled class sessions. An entry is accepted
// only when the course and faculty exist, a booking already reserves the
// room for the course at the same time window, and no identical entry
// exists. Updates additionally fan out notifications to everyone affected.
type TimetableService struct {
	timetables  TimetableStore
	courses     CourseStore
	faculty     PersonStore
	bookings    BookingStore
	enrollments EnrollmentStore
	notifier    Notifier

	// fanOutTimeout bounds the background notification dispatch.
	fanOutTimeout time.Duration
	// fanOutDone is signalled after each dispatch; tests use it to wait for
	// the detached goroutine. Nil outside tests.
	fanOutDone chan struct{}
}

func NewTimetableService(timetables TimetableStore, courses CourseStore, faculty PersonStore,
	bookings BookingStore, enrollments EnrollmentStore, notifier Notifier) *TimetableService {
	return &TimetableService{
		timetables:    timetables,
		courses:       courses,
		faculty:       faculty,
		bookings:      bookings,
		enrollments:   enrollments,
		notifier:      notifier,
		fanOutTimeout: 30 * time.Second,
	}
}

func (s *TimetableService) validate(ctx context.Context, in EntryInput) error {
	courseOK, err := s.courses.ExistsByCode(ctx, in.CourseID)
	if err != nil {
		return err
	}
	if !courseOK {
		return apperr.ErrCourseRequired
	}

	facultyOK, err := s.faculty.Exists(ctx, in.Faculty)
	if err != nil {
		return err
	}
	if !facultyOK {
		return apperr.ErrFacultyRequired
	}

	// A room reservation must already be approved before a class can be
	// timetabled in it. The booking is matched on room, course and time
	// window for both create and update.
	bookingOK, err := s.bookings.ExistsForTimetable(ctx, in.Location, in.CourseID, in.StartTime, in.EndTime)
	if err != nil {
		return err
	}
	if !bookingOK {
		return apperr.ErrBookingRequired
	}

	duplicate, err := s.timetables.ExistsExact(ctx, s.entry(in))
	if err != nil {
		return err
	}
	if duplicate {
		return apperr.ErrTimetableExists
	}
	return nil
}

func (s *TimetableService) entry(in EntryInput) models.TimeTableEntry {
	return models.TimeTableEntry{
		CourseID:  in.CourseID,
		DayOfWeek: in.DayOfWeek,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Faculty:   in.Faculty,
		Location:  in.Location,
	}
}

func (s *TimetableService) Create(ctx context.Context, in EntryInput) (models.TimeTableEntry, error) {
	if err := s.validate(ctx, in); err != nil {
		return models.TimeTableEntry{}, err
	}
	created, err := s.timetables.Insert(ctx, s.entry(in))
	if repositories.IsDup(err) {
		return models.TimeTableEntry{}, apperr.ErrTimetableExists
	}
	if err != nil {
		return models.TimeTableEntry{}, err
	}
	return created, nil
}

// Update re-runs the full validation, persists the entry, and kicks off the
// notification fan-out on a detached goroutine. The fan-out is best-effort:
// failures are logged and never surface to the caller.
func (s *TimetableService) Update(ctx context.Context, id string, in EntryInput) (*models.TimeTableEntry, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	updated, err := s.timetables.UpdateByID(ctx, id, s.entry(in))
	if repositories.IsDup(err) {
		return nil, apperr.ErrTimetableExists
	}
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.ErrTimetableNotFound
	}

	go s.fanOut(*updated)
	return updated, nil
}

// fanOut sends one notification per student enrolled in the entry's course
// plus one for the assigned faculty member. At-most-once, no retries.
func (s *TimetableService) fanOut(entry models.TimeTableEntry) {
	defer func() {
		if s.fanOutDone != nil {
			s.fanOutDone <- struct{}{}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.fanOutTimeout)
	defer cancel()

	message := fmt.Sprintf("Timetable updated for your course %s", entry.CourseID)

	enrollments, err := s.enrollments.FindByCourse(ctx, entry.CourseID)
	if err != nil {
		log.Println("Error resolving enrollments for notification fan-out:", err)
		return
	}
	for _, e := range enrollments {
		if err := s.notifier.Notify(ctx, e.StudentID, message); err != nil {
			log.Println("Error sending notification to", e.StudentID, ":", err)
		}
	}
	if err := s.notifier.Notify(ctx, entry.Faculty, message); err != nil {
		log.Println("Error sending notification to", entry.Faculty, ":", err)
	}
}

func (s *TimetableService) Delete(ctx context.Context, id string) error {
	deleted, err := s.timetables.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.ErrTimetableNotFound
	}
	return nil
}

func (s *TimetableService) List(ctx context.Context) ([]models.TimeTableEntry, error) {
	return s.timetables.All(ctx)
}

// ForStudent returns entries for every course the student is enrolled in.
func (s *TimetableService) ForStudent(ctx context.Context, studentID string) ([]models.TimeTableEntry, error) {
	enrollments, err := s.enrollments.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}
	return s.timetables.FindByCourseIDs(ctx, courseIDs)
}

// ForFaculty returns entries for every course the faculty member teaches.
func (s *TimetableService) ForFaculty(ctx context.Context, facultyID string) ([]models.TimeTableEntry, error) {
	courses, err := s.courses.FindByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]string, 0, len(courses))
	for _, c := range courses {
		courseIDs = append(courseIDs, c.CourseCode)
	}
	return s.timetables.FindByCourseIDs(ctx, courseIDs)
}
