package dto

import "campus_backend/models"

// BookingRequest is the payload for booking create/update. Times are
// pointers so that an absent field is distinguishable from midnight.
type BookingRequest struct {
	RoomID    string            `json:"roomId" validate:"required"`
	CourseID  string            `json:"courseId" validate:"required"`
	DayOfWeek int               `json:"dayOfWeek" validate:"required,min=1,max=7"`
	StartTime *models.TimeOfDay `json:"startTime" validate:"required"`
	EndTime   *models.TimeOfDay `json:"endTime" validate:"required"`
}

// TimetableRequest is the payload for timetable entry create/update.
type TimetableRequest struct {
	CourseID  string            `json:"courseId" validate:"required"`
	DayOfWeek int               `json:"dayOfWeek" validate:"required,min=1,max=7"`
	StartTime *models.TimeOfDay `json:"startTime" validate:"required"`
	EndTime   *models.TimeOfDay `json:"endTime" validate:"required"`
	Faculty   string            `json:"faculty" validate:"required"`
	Location  string            `json:"location" validate:"required"`
}

type EnrollmentRequest struct {
	CourseID string `json:"courseId" validate:"required"`
}

type NotificationRequest struct {
	Recipient string `json:"recipient" validate:"required"`
	Message   string `json:"message" validate:"required"`
}
