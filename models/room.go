package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Room document stored in "rooms". RoomID is the sequential public ID
// (R1000, R1001, ...) assigned at creation.
type Room struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RoomID    string             `bson:"roomId" json:"roomId"`
	FloorNo   string             `bson:"floorNo" json:"floorNo"`
	Building  string             `bson:"building" json:"building"`
	Name      string             `bson:"name" json:"name"`
	Capacity  int                `bson:"capacity" json:"capacity"`
	Resources []string           `bson:"resources,omitempty" json:"resources,omitempty"`
}
