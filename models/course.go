package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course document stored in "courses". CourseCode is the natural key other
// collections reference; Faculties holds the public IDs of teaching staff.
type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CourseCode  string             `bson:"courseCode" json:"courseCode"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Credits     int                `bson:"credits" json:"credits"`
	Faculties   []string           `bson:"faculties" json:"faculties"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
