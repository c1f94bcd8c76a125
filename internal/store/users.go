package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	Collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{Collection: db.Collection(UsersCollection)}
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	return findOne[User](ctx, r.Collection, bson.M{"email": email})
}

func (r *UserRepo) ListByEmail(ctx context.Context, email string) ([]User, error) {
	return findAll[User](ctx, r.Collection, bson.M{"email": email})
}

// Insert returns ErrDuplicate when the unique email index rejects the user.
func (r *UserRepo) Insert(ctx context.Context, u *User) (InsertAck, error) {
	return insertOne(ctx, r.Collection, u)
}
