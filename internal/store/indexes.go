package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexSpecs backs the uniqueness rules (user email, cart merge key) and the
// list filters.
var indexSpecs = map[string][]mongo.IndexModel{
	UsersCollection: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	CartCollection: {
		{
			Keys:    bson.D{{Key: "name", Value: 1}, {Key: "buyer", Value: 1}, {Key: "company", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	},
	OrdersCollection: {
		{Keys: bson.D{{Key: "buyerEmail", Value: 1}}},
		{Keys: bson.D{{Key: "items.sellerEmail", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	},
	MedicineCollection: {
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "sellerEmail", Value: 1}}},
	},
	AdsCollection: {
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	},
}

// EnsureIndexes creates every index it can and reports the ones it could
// not; existing duplicates in legacy data make a unique index fail.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	var errs []error
	for coll, models := range indexSpecs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			errs = append(errs, fmt.Errorf("indexes on %s: %w", coll, err))
		}
	}
	return errors.Join(errs...)
}
