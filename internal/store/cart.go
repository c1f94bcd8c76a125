package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartRepo struct {
	Collection *mongo.Collection
}

func NewCartRepo(db *mongo.Database) *CartRepo {
	return &CartRepo{Collection: db.Collection(CartCollection)}
}

func (r *CartRepo) ListByBuyer(ctx context.Context, buyer string) ([]CartItem, error) {
	return findAll[CartItem](ctx, r.Collection, bson.M{"buyer": buyer})
}

// FindByKey looks up the row identified by (name, buyer, company).
func (r *CartRepo) FindByKey(ctx context.Context, name, buyer, company string) (*CartItem, error) {
	return findOne[CartItem](ctx, r.Collection, bson.M{"name": name, "buyer": buyer, "company": company})
}

func (r *CartRepo) FindByID(ctx context.Context, id string) (*CartItem, error) {
	filter, err := byID(id)
	if err != nil {
		return nil, err
	}
	return findOne[CartItem](ctx, r.Collection, filter)
}

// Insert returns ErrDuplicate when a row with the same key already exists.
func (r *CartRepo) Insert(ctx context.Context, item *CartItem) (InsertAck, error) {
	return insertOne(ctx, r.Collection, item)
}

func (r *CartRepo) IncrementQuantity(ctx context.Context, id string, delta int) (UpdateAck, error) {
	filter, err := byID(id)
	if err != nil {
		return UpdateAck{}, err
	}
	return updateOne(ctx, r.Collection, filter, bson.M{"$inc": bson.M{"quantity": delta}})
}

func (r *CartRepo) Delete(ctx context.Context, id string) (DeleteAck, error) {
	filter, err := byID(id)
	if err != nil {
		return DeleteAck{}, err
	}
	return deleteOne(ctx, r.Collection, filter)
}

func (r *CartRepo) DeleteByBuyer(ctx context.Context, buyer string) (DeleteAck, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.Collection.DeleteMany(ctx, bson.M{"buyer": buyer})
	if err != nil {
		return DeleteAck{}, fmt.Errorf("delete cart of %s: %w", buyer, err)
	}
	return DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
