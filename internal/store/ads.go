package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdRepo struct {
	Collection *mongo.Collection
}

func NewAdRepo(db *mongo.Database) *AdRepo {
	return &AdRepo{Collection: db.Collection(AdsCollection)}
}

func (r *AdRepo) Insert(ctx context.Context, ad *Ad) (InsertAck, error) {
	return insertOne(ctx, r.Collection, ad)
}

func (r *AdRepo) ListByStatus(ctx context.Context, statuses ...string) ([]Ad, error) {
	return findAll[Ad](ctx, r.Collection, bson.M{"status": bson.M{"$in": statuses}})
}

func (r *AdRepo) ListByOwner(ctx context.Context, email string) ([]Ad, error) {
	return findAll[Ad](ctx, r.Collection, bson.M{"email": email})
}

// SetStatus overwrites the status; transitions are not checked.
func (r *AdRepo) SetStatus(ctx context.Context, id, status string) (UpdateAck, error) {
	filter, err := byID(id)
	if err != nil {
		return UpdateAck{}, err
	}
	return updateOne(ctx, r.Collection, filter, bson.M{"$set": bson.M{"status": status}})
}

func (r *AdRepo) Delete(ctx context.Context, id string) (DeleteAck, error) {
	filter, err := byID(id)
	if err != nil {
		return DeleteAck{}, err
	}
	return deleteOne(ctx, r.Collection, filter)
}
