package services

import (
	"context"

	"campus_backend/apperr"
	"campus_backend/models"
	"campus_backend/repositories"
)

// EnrollmentService links students to courses. A second enrollment for the
// same {studentId, courseId} pair is always rejected, never duplicated; the
// unique index catches the race the pre-check cannot.
type EnrollmentService struct {
	enrollments EnrollmentStore
	students    PersonStore
	courses     CourseStore
}

func NewEnrollmentService(enrollments EnrollmentStore, students PersonStore, courses CourseStore) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, students: students, courses: courses}
}

func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID string) (models.Enrollment, error) {
	studentOK, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return models.Enrollment{}, err
	}
	if !studentOK {
		return models.Enrollment{}, apperr.ErrInvalidStudent
	}

	courseOK, err := s.courses.ExistsByCode(ctx, courseID)
	if err != nil {
		return models.Enrollment{}, err
	}
	if !courseOK {
		return models.Enrollment{}, apperr.ErrInvalidCourse
	}

	exists, err := s.enrollments.Exists(ctx, studentID, courseID)
	if err != nil {
		return models.Enrollment{}, err
	}
	if exists {
		return models.Enrollment{}, apperr.ErrEnrollmentExists
	}

	created, err := s.enrollments.Insert(ctx, models.Enrollment{StudentID: studentID, CourseID: courseID})
	if repositories.IsDup(err) {
		return models.Enrollment{}, apperr.ErrEnrollmentExists
	}
	if err != nil {
		return models.Enrollment{}, err
	}
	return created, nil
}

func (s *EnrollmentService) List(ctx context.Context) ([]models.Enrollment, error) {
	return s.enrollments.All(ctx)
}

// CoursesFor resolves a student's enrollments to course documents, the
// application-level join across the two collections.
func (s *EnrollmentService) CoursesFor(ctx context.Context, studentID string) ([]models.Course, error) {
	enrollments, err := s.enrollments.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return nil, apperr.ErrNoEnrolledCourses
	}
	codes := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		codes = append(codes, e.CourseID)
	}
	return s.courses.FindByCodes(ctx, codes)
}
