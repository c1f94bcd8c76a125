package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderFilter narrows order listings. Empty fields are ignored; the date
// range applies only when both Start and End (YYYY-MM-DD) are set.
type OrderFilter struct {
	SellerEmail string
	BuyerEmail  string
	Start       string
	End         string
}

// Query builds the conjunctive Mongo filter.
func (f OrderFilter) Query() bson.M {
	q := bson.M{}
	if f.SellerEmail != "" {
		q["items.sellerEmail"] = f.SellerEmail
	}
	if f.BuyerEmail != "" {
		q["buyerEmail"] = f.BuyerEmail
	}
	if f.Start != "" && f.End != "" {
		q["createdAt"] = bson.M{
			"$gte": f.Start,
			"$lte": f.End + "T23:59:59.999Z",
		}
	}
	return q
}

type OrderRepo struct {
	Collection *mongo.Collection
}

func NewOrderRepo(db *mongo.Database) *OrderRepo {
	return &OrderRepo{Collection: db.Collection(OrdersCollection)}
}

func (r *OrderRepo) Insert(ctx context.Context, o *Order) (InsertAck, error) {
	return insertOne(ctx, r.Collection, o)
}

func (r *OrderRepo) List(ctx context.Context, f OrderFilter) ([]Order, error) {
	return findAll[Order](ctx, r.Collection, f.Query())
}

func (r *OrderRepo) FindByID(ctx context.Context, id string) (*Order, error) {
	filter, err := byID(id)
	if err != nil {
		return nil, err
	}
	return findOne[Order](ctx, r.Collection, filter)
}

// MarkPaid records the payment; calling it again overwrites the
// transaction id and paidAt but never clears the paid status.
func (r *OrderRepo) MarkPaid(ctx context.Context, id, transactionID string, at time.Time) (UpdateAck, error) {
	filter, err := byID(id)
	if err != nil {
		return UpdateAck{}, err
	}
	return updateOne(ctx, r.Collection, filter, bson.M{"$set": bson.M{
		"paymentStatus": PaymentPaid,
		"transactionId": transactionID,
		"paidAt":        at.UTC(),
	}})
}
