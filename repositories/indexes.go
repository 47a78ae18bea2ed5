package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes that backstop the application
// level existence/conflict checks. The pre-checks give callers specific
// error messages; the indexes close the read-then-write race window two
// concurrent requests would otherwise slip through.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	for _, col := range []string{"admins", "faculties", "students"} {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "personId", Value: 1}}, Options: unique},
		}); err != nil {
			return err
		}
	}

	if _, err := db.Collection("courses").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "courseCode", Value: 1}}, Options: unique,
	}); err != nil {
		return err
	}

	if _, err := db.Collection("rooms").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "roomId", Value: 1}}, Options: unique,
	}); err != nil {
		return err
	}

	if _, err := db.Collection("bookings").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "roomId", Value: 1},
			{Key: "dayOfWeek", Value: 1},
			{Key: "startTime.hours", Value: 1},
			{Key: "startTime.minutes", Value: 1},
			{Key: "endTime.hours", Value: 1},
			{Key: "endTime.minutes", Value: 1},
		},
		Options: unique,
	}); err != nil {
		return err
	}

	if _, err := db.Collection("enrollments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "studentId", Value: 1},
			{Key: "courseId", Value: 1},
		},
		Options: unique,
	}); err != nil {
		return err
	}

	_, err := db.Collection("timetables").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "courseId", Value: 1},
			{Key: "dayOfWeek", Value: 1},
			{Key: "startTime.hours", Value: 1},
			{Key: "startTime.minutes", Value: 1},
			{Key: "endTime.hours", Value: 1},
			{Key: "endTime.minutes", Value: 1},
			{Key: "faculty", Value: 1},
			{Key: "location", Value: 1},
		},
		Options: unique,
	})
	return err
}

// IsDup reports whether err is a unique-index violation, i.e. the other side
// of a check-then-act race won.
func IsDup(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
