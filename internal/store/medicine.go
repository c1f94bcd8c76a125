package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MedicineRepo struct {
	Collection *mongo.Collection
}

func NewMedicineRepo(db *mongo.Database) *MedicineRepo {
	return &MedicineRepo{Collection: db.Collection(MedicineCollection)}
}

// List returns every medicine, or only the seller's when sellerEmail is set.
func (r *MedicineRepo) List(ctx context.Context, sellerEmail string) ([]Medicine, error) {
	filter := bson.M{}
	if sellerEmail != "" {
		filter["sellerEmail"] = sellerEmail
	}
	return findAll[Medicine](ctx, r.Collection, filter)
}

func (r *MedicineRepo) ListByCategory(ctx context.Context, category string) ([]Medicine, error) {
	return findAll[Medicine](ctx, r.Collection, bson.M{"category": category})
}

func (r *MedicineRepo) Insert(ctx context.Context, m *Medicine) (InsertAck, error) {
	return insertOne(ctx, r.Collection, m)
}

// CountByCategory groups the medicine collection by category name.
func (r *MedicineRepo) CountByCategory(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate medicine: %w", err)
	}
	var rows []struct {
		Category string `bson:"_id"`
		Count    int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode medicine counts: %w", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}
