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

type TimetableRepository struct {
	col *mongo.Collection
}

func NewTimetableRepository(db *mongo.Database) *TimetableRepository {
	return &TimetableRepository{col: db.Collection("timetables")}
}

func (r *TimetableRepository) Insert(ctx context.Context, e models.TimeTableEntry) (models.TimeTableEntry, error) {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return models.TimeTableEntry{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return e, nil
}

// ExistsExact reports whether an entry with the identical
// {courseId, dayOfWeek, startTime, endTime, faculty, location} tuple exists.
func (r *TimetableRepository) ExistsExact(ctx context.Context, e models.TimeTableEntry) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{
		"courseId":  e.CourseID,
		"dayOfWeek": e.DayOfWeek,
		"startTime": timeFilter(e.StartTime),
		"endTime":   timeFilter(e.EndTime),
		"faculty":   e.Faculty,
		"location":  e.Location,
	})
	return n > 0, err
}

func (r *TimetableRepository) All(ctx context.Context) ([]models.TimeTableEntry, error) {
	return r.find(ctx, bson.D{})
}

// FindByCourseIDs returns every entry whose course is in the given set; used
// for the student and faculty scoped timetable views.
func (r *TimetableRepository) FindByCourseIDs(ctx context.Context, courseIDs []string) ([]models.TimeTableEntry, error) {
	return r.find(ctx, bson.M{"courseId": bson.M{"$in": courseIDs}})
}

func (r *TimetableRepository) find(ctx context.Context, filter interface{}) ([]models.TimeTableEntry, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.TimeTableEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *TimetableRepository) UpdateByID(ctx context.Context, id string, e models.TimeTableEntry) (*models.TimeTableEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var updated models.TimeTableEntry
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"courseId":  e.CourseID,
			"dayOfWeek": e.DayOfWeek,
			"startTime": e.StartTime,
			"endTime":   e.EndTime,
			"faculty":   e.Faculty,
			"location":  e.Location,
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

func (r *TimetableRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
