package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrEmptyPatch = errors.New("no fields to update")

type CategoryRepo struct {
	Collection *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{Collection: db.Collection(CategoryCollection)}
}

func (r *CategoryRepo) List(ctx context.Context) ([]Category, error) {
	return findAll[Category](ctx, r.Collection, bson.M{})
}

func (r *CategoryRepo) Insert(ctx context.Context, c *Category) (InsertAck, error) {
	return insertOne(ctx, r.Collection, c)
}

// Update sets only the fields present in the patch.
func (r *CategoryRepo) Update(ctx context.Context, id string, patch CategoryPatch) (UpdateAck, error) {
	if patch.IsEmpty() {
		return UpdateAck{}, ErrEmptyPatch
	}
	filter, err := byID(id)
	if err != nil {
		return UpdateAck{}, err
	}
	return updateOne(ctx, r.Collection, filter, bson.M{"$set": patch.fields()})
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) (DeleteAck, error) {
	filter, err := byID(id)
	if err != nil {
		return DeleteAck{}, err
	}
	return deleteOne(ctx, r.Collection, filter)
}

// IncrementCount bumps medicineCount of the category with the given name.
// No category with that name means MatchedCount == 0 and nothing changes.
func (r *CategoryRepo) IncrementCount(ctx context.Context, name string, delta int) (UpdateAck, error) {
	return updateOne(ctx, r.Collection,
		bson.M{"categoryName": name},
		bson.M{"$inc": bson.M{"medicineCount": delta}},
	)
}

// SetCount overwrites medicineCount; used when recounting from the medicine
// collection.
func (r *CategoryRepo) SetCount(ctx context.Context, name string, n int64) (UpdateAck, error) {
	return updateOne(ctx, r.Collection,
		bson.M{"categoryName": name},
		bson.M{"$set": bson.M{"medicineCount": n}},
	)
}
