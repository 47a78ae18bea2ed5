package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"campus_backend/apperr"
	"campus_backend/dto"
	"campus_backend/models"
	"campus_backend/repositories"
)

type CourseService struct {
	courses CourseStore
	faculty PersonStore
}

func NewCourseService(courses CourseStore, faculty PersonStore) *CourseService {
	return &CourseService{courses: courses, faculty: faculty}
}

// facultiesExist verifies every listed faculty ID references a document.
func (s *CourseService) facultiesExist(ctx context.Context, ids []string) error {
	n, err := s.faculty.CountByPersonIDs(ctx, ids)
	if err != nil {
		return err
	}
	if n != int64(len(ids)) {
		return apperr.ErrInvalidFaculties
	}
	return nil
}

func (s *CourseService) Create(ctx context.Context, req dto.CourseRequest) (models.Course, error) {
	if err := s.facultiesExist(ctx, req.Faculties); err != nil {
		return models.Course{}, err
	}
	exists, err := s.courses.ExistsByCode(ctx, req.CourseCode)
	if err != nil {
		return models.Course{}, err
	}
	if exists {
		return models.Course{}, apperr.ErrCourseExists
	}

	created, err := s.courses.Insert(ctx, models.Course{
		CourseCode:  req.CourseCode,
		Name:        req.Name,
		Description: req.Description,
		Credits:     req.Credits,
		Faculties:   req.Faculties,
	})
	if repositories.IsDup(err) {
		return models.Course{}, apperr.ErrCourseExists
	}
	if err != nil {
		return models.Course{}, err
	}
	return created, nil
}

func (s *CourseService) Update(ctx context.Context, courseCode string, req dto.CourseUpdateRequest) (*models.Course, error) {
	if err := s.facultiesExist(ctx, req.Faculties); err != nil {
		return nil, err
	}
	course, err := s.courses.UpdateByCode(ctx, courseCode, bson.M{
		"name":        req.Name,
		"description": req.Description,
		"credits":     req.Credits,
		"faculties":   req.Faculties,
	})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.ErrCourseNotFound
	}
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, courseCode string) error {
	deleted, err := s.courses.DeleteByCode(ctx, courseCode)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.ErrCourseNotFound
	}
	return nil
}

func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	return s.courses.All(ctx)
}

// ListByFaculty returns the courses a faculty member teaches.
func (s *CourseService) ListByFaculty(ctx context.Context, facultyID string) ([]models.Course, error) {
	return s.courses.FindByFaculty(ctx, facultyID)
}
