package services

import (
	"context"

	"campus_backend/apperr"
	"campus_backend/models"
	"campus_backend/repositories"
)

// BookingInput is a fully-populated booking request; field presence is
// checked at the transport layer before it reaches the service.
type BookingInput struct {
	RoomID    string
	CourseID  string
	AdminID   string
	DayOfWeek int
	StartTime models.TimeOfDay
	EndTime   models.TimeOfDay
}

// BookingService validates room reservations. A request is accepted only
// when the room, course and requesting admin all exist and no booking holds
// the identical {roomId, dayOfWeek, startTime, endTime} tuple. Each check
// short-circuits with its own rejection.
type BookingService struct {
	bookings BookingStore
	rooms    RoomStore
	courses  CourseStore
	admins   PersonStore
}

func NewBookingService(bookings BookingStore, rooms RoomStore, courses CourseStore, admins PersonStore) *BookingService {
	return &BookingService{bookings: bookings, rooms: rooms, courses: courses, admins: admins}
}

func (s *BookingService) validate(ctx context.Context, in BookingInput) error {
	roomOK, err := s.rooms.Exists(ctx, in.RoomID)
	if err != nil {
		return err
	}
	if !roomOK {
		return apperr.ErrInvalidRoom
	}

	courseOK, err := s.courses.ExistsByCode(ctx, in.CourseID)
	if err != nil {
		return err
	}
	if !courseOK {
		return apperr.ErrInvalidCourse
	}

	adminOK, err := s.admins.Exists(ctx, in.AdminID)
	if err != nil {
		return err
	}
	if !adminOK {
		return apperr.ErrInvalidAdmin
	}

	// Exact-tuple collision check. Two bookings for the same room and day
	// that overlap but differ in start or end are not caught; interval
	// overlap is an open question on the contract.
	conflict, err := s.bookings.ExistsTuple(ctx, in.RoomID, in.DayOfWeek, in.StartTime, in.EndTime)
	if err != nil {
		return err
	}
	if conflict {
		return apperr.ErrBookingConflict
	}
	return nil
}

func (s *BookingService) Create(ctx context.Context, in BookingInput) (models.Booking, error) {
	if err := s.validate(ctx, in); err != nil {
		return models.Booking{}, err
	}
	created, err := s.bookings.Insert(ctx, models.Booking{
		RoomID:    in.RoomID,
		CourseID:  in.CourseID,
		BookedBy:  in.AdminID,
		DayOfWeek: in.DayOfWeek,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	})
	if repositories.IsDup(err) {
		return models.Booking{}, apperr.ErrBookingConflict
	}
	if err != nil {
		return models.Booking{}, err
	}
	return created, nil
}

func (s *BookingService) Update(ctx context.Context, id string, in BookingInput) (*models.Booking, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	updated, err := s.bookings.UpdateByID(ctx, id, models.Booking{
		RoomID:    in.RoomID,
		CourseID:  in.CourseID,
		BookedBy:  in.AdminID,
		DayOfWeek: in.DayOfWeek,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	})
	if repositories.IsDup(err) {
		return nil, apperr.ErrBookingConflict
	}
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.ErrBookingNotFound
	}
	return updated, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) (*models.Booking, error) {
	deleted, err := s.bookings.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperr.ErrBookingNotFound
	}
	return deleted, nil
}

func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.bookings.All(ctx)
}
