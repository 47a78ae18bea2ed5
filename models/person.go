package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Person is an admin, faculty or student document. The three roles live in
// separate collections but share one shape; PersonID carries the
// role-prefixed sequential ID (A1000, F1000, S1000, ...).
type Person struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PersonID  string             `bson:"personId" json:"personId"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Address   string             `bson:"address" json:"address"`
	Phone     string             `bson:"phone" json:"phone"`
	Password  string             `bson:"password" json:"-"`
	DOB       time.Time          `bson:"dob" json:"dob"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
