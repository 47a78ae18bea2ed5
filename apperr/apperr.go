// Package apperr defines the failure vocabulary shared by services and
// handlers. Every rejection a service can produce is a *Error carrying the
// HTTP status it maps to; anything else reaching a handler is treated as an
// internal error and hidden behind a generic 500.
package apperr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

var (
	ErrMissingFields = New(http.StatusBadRequest, "Missing required fields")

	// Invalid references.
	ErrInvalidRoom      = New(http.StatusBadRequest, "Invalid roomId provided")
	ErrInvalidCourse    = New(http.StatusBadRequest, "Invalid courseId provided")
	ErrInvalidAdmin     = New(http.StatusBadRequest, "Invalid adminId provided")
	ErrInvalidStudent   = New(http.StatusBadRequest, "Invalid student Id provided")
	ErrInvalidFaculties = New(http.StatusBadRequest, "Invalid faculty IDs provided")
	ErrInvalidRecipient = New(http.StatusBadRequest, "Recipient ID is invalid")

	// Conflicts.
	ErrBookingConflict  = New(http.StatusConflict, "Booking already exists")
	ErrCourseExists     = New(http.StatusConflict, "Course already exists")
	ErrRoomExists       = New(http.StatusConflict, "Room is already created")
	ErrTimetableExists  = New(http.StatusBadRequest, "Timetable already exists")
	ErrEnrollmentExists = New(http.StatusBadRequest, "Enrollment already exists")

	// Timetable preconditions.
	ErrCourseRequired  = New(http.StatusConflict, "Course should be there to create the timetable")
	ErrFacultyRequired = New(http.StatusConflict, "Faculty should be there to create the timetable")
	ErrBookingRequired = New(http.StatusConflict, "Booking should be there to create the timetable")

	// Missing update/delete targets.
	ErrBookingNotFound   = New(http.StatusNotFound, "Booking not found")
	ErrCourseNotFound    = New(http.StatusNotFound, "Course not found")
	ErrRoomNotFound      = New(http.StatusNotFound, "Room not found")
	ErrTimetableNotFound = New(http.StatusNotFound, "Timetable entry not found")
	ErrNoEnrolledCourses = New(http.StatusNotFound, "No courses found for the student")

	// Account registration / login.
	ErrInvalidEmail       = New(http.StatusBadRequest, "Invalid email format")
	ErrInvalidPhone       = New(http.StatusBadRequest, "Invalid Sri Lankan phone number")
	ErrWeakPassword       = New(http.StatusBadRequest, "Password should be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, and one number")
	ErrInvalidCredentials = New(http.StatusBadRequest, "Email or password is not valid")
)

// AlreadyRegistered reports a duplicate email within a role collection,
// e.g. "Admin already exists".
func AlreadyRegistered(role string) *Error {
	return New(http.StatusConflict, fmt.Sprintf("%s already exists", title(role)))
}

// AccountNotFound reports a missing person record, e.g. "Student not found".
func AccountNotFound(role string) *Error {
	return New(http.StatusNotFound, fmt.Sprintf("%s not found", title(role)))
}

// NotAuthorized reports a caller whose token does not carry the required
// role claim.
func NotAuthorized(role string) *Error {
	return New(http.StatusUnauthorized, fmt.Sprintf("You are not authorized as %s", role))
}

func title(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
