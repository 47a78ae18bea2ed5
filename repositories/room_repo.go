package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campus_backend/models"
)

type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection("rooms")}
}

func (r *RoomRepository) Insert(ctx context.Context, room models.Room) (models.Room, error) {
	res, err := r.col.InsertOne(ctx, room)
	if err != nil {
		return models.Room{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		room.ID = oid
	}
	return room, nil
}

func (r *RoomRepository) Exists(ctx context.Context, roomID string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"roomId": roomID})
	return n > 0, err
}

// ExistsByPlacement checks for a room already registered at the same floor,
// building and name.
func (r *RoomRepository) ExistsByPlacement(ctx context.Context, floorNo, building, name string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"floorNo": floorNo, "building": building, "name": name})
	return n > 0, err
}

func (r *RoomRepository) All(ctx context.Context) ([]models.Room, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rooms []models.Room
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) UpdateByRoomID(ctx context.Context, roomID string, fields bson.M) (*models.Room, error) {
	var room models.Room
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"roomId": roomID},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) DeleteByRoomID(ctx context.Context, roomID string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"roomId": roomID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
