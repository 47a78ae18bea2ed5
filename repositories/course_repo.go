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

type CourseRepository struct {
	col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{col: db.Collection("courses")}
}

func (r *CourseRepository) Insert(ctx context.Context, c models.Course) (models.Course, error) {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return models.Course{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return c, nil
}

func (r *CourseRepository) ExistsByCode(ctx context.Context, courseCode string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"courseCode": courseCode})
	return n > 0, err
}

func (r *CourseRepository) FindByCode(ctx context.Context, courseCode string) (*models.Course, error) {
	var c models.Course
	err := r.col.FindOne(ctx, bson.M{"courseCode": courseCode}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) All(ctx context.Context) ([]models.Course, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByFaculty returns every course whose faculties list contains the given
// faculty public ID.
func (r *CourseRepository) FindByFaculty(ctx context.Context, facultyID string) ([]models.Course, error) {
	cur, err := r.col.Find(ctx, bson.M{"faculties": facultyID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByCodes resolves a list of course codes to course documents, the
// application-level join used by the enrollment read side.
func (r *CourseRepository) FindByCodes(ctx context.Context, codes []string) ([]models.Course, error) {
	cur, err := r.col.Find(ctx, bson.M{"courseCode": bson.M{"$in": codes}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) UpdateByCode(ctx context.Context, courseCode string, fields bson.M) (*models.Course, error) {
	fields["updatedAt"] = time.Now().UTC()
	var c models.Course
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"courseCode": courseCode},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) DeleteByCode(ctx context.Context, courseCode string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"courseCode": courseCode})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
