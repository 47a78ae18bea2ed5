package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"campus_backend/models"
)

type EnrollmentRepository struct {
	col *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{col: db.Collection("enrollments")}
}

func (r *EnrollmentRepository) Insert(ctx context.Context, e models.Enrollment) (models.Enrollment, error) {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return models.Enrollment{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return e, nil
}

func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"studentId": studentID, "courseId": courseID})
	return n > 0, err
}

func (r *EnrollmentRepository) All(ctx context.Context) ([]models.Enrollment, error) {
	return r.find(ctx, bson.D{})
}

func (r *EnrollmentRepository) FindByStudent(ctx context.Context, studentID string) ([]models.Enrollment, error) {
	return r.find(ctx, bson.M{"studentId": studentID})
}

func (r *EnrollmentRepository) FindByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	return r.find(ctx, bson.M{"courseId": courseID})
}

func (r *EnrollmentRepository) find(ctx context.Context, filter interface{}) ([]models.Enrollment, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var enrollments []models.Enrollment
	if err := cur.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}
