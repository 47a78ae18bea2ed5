package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeOfDay is a wall-clock instant within a day, the unit both bookings and
// timetable entries are keyed on.
type TimeOfDay struct {
	Hours   int `bson:"hours" json:"hours"`
	Minutes int `bson:"minutes" json:"minutes"`
}

// Booking reserves a room for a course on a weekday and time window.
// Two bookings conflict when roomId, dayOfWeek, startTime and endTime all
// match exactly; a unique compound index backs this up against races.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RoomID    string             `bson:"roomId" json:"roomId"`
	CourseID  string             `bson:"courseId" json:"courseId"`
	BookedBy  string             `bson:"bookedBy,omitempty" json:"bookedBy,omitempty"`
	DayOfWeek int                `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime TimeOfDay          `bson:"startTime" json:"startTime"`
	EndTime   TimeOfDay          `bson:"endTime" json:"endTime"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
