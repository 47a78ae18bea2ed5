package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Enrollment links a student to a course. The {studentId, courseId} pair is
// unique, enforced by a compound index.
type Enrollment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	StudentID string             `bson:"studentId" json:"studentId"`
	CourseID  string             `bson:"courseId" json:"courseId"`
}
