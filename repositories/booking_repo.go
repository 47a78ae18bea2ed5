package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campus_backend/models"
)

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection("bookings")}
}

func timeFilter(t models.TimeOfDay) bson.M {
	return bson.M{"hours": t.Hours, "minutes": t.Minutes}
}

func (r *BookingRepository) Insert(ctx context.Context, b models.Booking) (models.Booking, error) {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return models.Booking{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}
	return b, nil
}

// ExistsTuple reports whether a booking with the identical
// {roomId, dayOfWeek, startTime, endTime} tuple already exists. This is the
// collision check; matching is exact, not interval overlap.
func (r *BookingRepository) ExistsTuple(ctx context.Context, roomID string, dayOfWeek int, start, end models.TimeOfDay) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{
		"roomId":    roomID,
		"dayOfWeek": dayOfWeek,
		"startTime": timeFilter(start),
		"endTime":   timeFilter(end),
	})
	return n > 0, err
}

// ExistsForTimetable checks the timetable precondition: an approved booking
// of the room for the course at the same time window.
func (r *BookingRepository) ExistsForTimetable(ctx context.Context, roomID, courseID string, start, end models.TimeOfDay) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{
		"roomId":    roomID,
		"courseId":  courseID,
		"startTime": timeFilter(start),
		"endTime":   timeFilter(end),
	})
	return n > 0, err
}

func (r *BookingRepository) All(ctx context.Context) ([]models.Booking, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) UpdateByID(ctx context.Context, id string, b models.Booking) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var updated models.Booking
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"roomId":    b.RoomID,
			"courseId":  b.CourseID,
			"bookedBy":  b.BookedBy,
			"dayOfWeek": b.DayOfWeek,
			"startTime": b.StartTime,
			"endTime":   b.EndTime,
			"updatedAt": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *BookingRepository) DeleteByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var deleted models.Booking
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
