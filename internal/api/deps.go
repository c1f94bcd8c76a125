package api

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"medishop-server/internal/auth"
	"medishop-server/internal/store"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*store.User, error)
	ListByEmail(ctx context.Context, email string) ([]store.User, error)
	Insert(ctx context.Context, u *store.User) (store.InsertAck, error)
}

type AdStore interface {
	Insert(ctx context.Context, ad *store.Ad) (store.InsertAck, error)
	ListByStatus(ctx context.Context, statuses ...string) ([]store.Ad, error)
	ListByOwner(ctx context.Context, email string) ([]store.Ad, error)
	SetStatus(ctx context.Context, id, status string) (store.UpdateAck, error)
	Delete(ctx context.Context, id string) (store.DeleteAck, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]store.Category, error)
	Insert(ctx context.Context, c *store.Category) (store.InsertAck, error)
	Update(ctx context.Context, id string, patch store.CategoryPatch) (store.UpdateAck, error)
	Delete(ctx context.Context, id string) (store.DeleteAck, error)
	IncrementCount(ctx context.Context, name string, delta int) (store.UpdateAck, error)
	SetCount(ctx context.Context, name string, n int64) (store.UpdateAck, error)
}

type MedicineStore interface {
	List(ctx context.Context, sellerEmail string) ([]store.Medicine, error)
	ListByCategory(ctx context.Context, category string) ([]store.Medicine, error)
	Insert(ctx context.Context, m *store.Medicine) (store.InsertAck, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
}

type CartStore interface {
	ListByBuyer(ctx context.Context, buyer string) ([]store.CartItem, error)
	FindByKey(ctx context.Context, name, buyer, company string) (*store.CartItem, error)
	FindByID(ctx context.Context, id string) (*store.CartItem, error)
	Insert(ctx context.Context, item *store.CartItem) (store.InsertAck, error)
	IncrementQuantity(ctx context.Context, id string, delta int) (store.UpdateAck, error)
	Delete(ctx context.Context, id string) (store.DeleteAck, error)
	DeleteByBuyer(ctx context.Context, buyer string) (store.DeleteAck, error)
}

type OrderStore interface {
	Insert(ctx context.Context, o *store.Order) (store.InsertAck, error)
	List(ctx context.Context, f store.OrderFilter) ([]store.Order, error)
	FindByID(ctx context.Context, id string) (*store.Order, error)
	MarkPaid(ctx context.Context, id, transactionID string, at time.Time) (store.UpdateAck, error)
}

type PaymentIntents interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal) (string, error)
}

// Deps is everything the router needs; main builds it once at startup.
type Deps struct {
	Users      UserStore
	Ads        AdStore
	Categories CategoryStore
	Medicines  MedicineStore
	Cart       CartStore
	Orders     OrderStore
	Payments   PaymentIntents
	Tokens     *auth.Issuer
	Guard      *auth.Guard

	// Now stamps createdAt and paidAt; defaults to time.Now.
	Now func() time.Time
}
