package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SequenceRepository allocates monotonic sequence numbers from a "counters"
// collection using an atomic $inc upsert, so two concurrent registrations can
// never be handed the same public ID.
type SequenceRepository struct {
	col *mongo.Collection
}

func NewSequenceRepository(db *mongo.Database) *SequenceRepository {
	return &SequenceRepository{col: db.Collection("counters")}
}

// Next returns the next value of the named sequence, starting at 1.
func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// NextPublicID formats the next sequence value as a role-prefixed public ID.
// The first allocation of a prefix yields e.g. "A1000".
func (r *SequenceRepository) NextPublicID(ctx context.Context, prefix string) (string, error) {
	seq, err := r.Next(ctx, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", prefix, 999+seq), nil
}
