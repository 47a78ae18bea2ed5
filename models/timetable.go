package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeTableEntry schedules a class session. Location is a room public ID and
// Faculty a faculty public ID; creating one requires a matching Booking.
type TimeTableEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CourseID  string             `bson:"courseId" json:"courseId"`
	DayOfWeek int                `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime TimeOfDay          `bson:"startTime" json:"startTime"`
	EndTime   TimeOfDay          `bson:"endTime" json:"endTime"`
	Faculty   string             `bson:"faculty" json:"faculty"`
	Location  string             `bson:"location" json:"location"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
