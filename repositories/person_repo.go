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

// PersonRepository is scoped to one role collection (admins, faculties or
// students); the same CRUD surface serves all three.
type PersonRepository struct {
	col *mongo.Collection
}

func NewPersonRepository(db *mongo.Database, role models.Role) *PersonRepository {
	return &PersonRepository{col: db.Collection(role.Collection())}
}

func (r *PersonRepository) Insert(ctx context.Context, p models.Person) (models.Person, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return models.Person{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

func (r *PersonRepository) FindByEmail(ctx context.Context, email string) (*models.Person, error) {
	var p models.Person
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepository) FindByPersonID(ctx context.Context, personID string) (*models.Person, error) {
	var p models.Person
	err := r.col.FindOne(ctx, bson.M{"personId": personID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepository) Exists(ctx context.Context, personID string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"personId": personID})
	return n > 0, err
}

// CountByPersonIDs reports how many of the given public IDs reference an
// existing document; used to validate a course's faculty list in one query.
func (r *PersonRepository) CountByPersonIDs(ctx context.Context, ids []string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"personId": bson.M{"$in": ids}})
}

func (r *PersonRepository) All(ctx context.Context) ([]models.Person, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var people []models.Person
	if err := cur.All(ctx, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (r *PersonRepository) UpdateByPersonID(ctx context.Context, personID string, fields bson.M) (*models.Person, error) {
	fields["updatedAt"] = time.Now().UTC()
	var p models.Person
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"personId": personID},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepository) DeleteByPersonID(ctx context.Context, personID string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"personId": personID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
