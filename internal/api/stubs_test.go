package api

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"medishop-server/internal/store"
)

//
// ===== in-memory stores (implement the *Store interfaces) =====
//

type stubUsers struct {
	mu    sync.Mutex
	items []store.User
	// raceDup makes Insert fail as if a concurrent insert won the index.
	raceDup bool
}

func (s *stubUsers) FindByEmail(_ context.Context, email string) (*store.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.items {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubUsers) ListByEmail(_ context.Context, email string) ([]store.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []store.User{}
	for _, u := range s.items {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *stubUsers) Insert(_ context.Context, u *store.User) (store.InsertAck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.raceDup {
		return store.InsertAck{}, store.ErrDuplicate
	}
	u.ID = primitive.NewObjectID()
	s.items = append(s.items, *u)
	return store.InsertAck{Acknowledged: true, InsertedID: u.ID.Hex()}, nil
}

type stubAds struct {
	items []store.Ad
}

func (s *stubAds) Insert(_ context.Context, ad *store.Ad) (store.InsertAck, error) {
	ad.ID = primitive.NewObjectID()
	s.items = append(s.items, *ad)
	return store.InsertAck{Acknowledged: true, InsertedID: ad.ID.Hex()}, nil
}

func (s *stubAds) ListByStatus(_ context.Context, statuses ...string) ([]store.Ad, error) {
	out := []store.Ad{}
	for _, a := range s.items {
		if slices.Contains(statuses, a.Status) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAds) ListByOwner(_ context.Context, email string) ([]store.Ad, error) {
	out := []store.Ad{}
	for _, a := range s.items {
		if a.Email == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAds) SetStatus(_ context.Context, id, status string) (store.UpdateAck, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return store.UpdateAck{}, err
	}
	for i := range s.items {
		if s.items[i].ID == oid {
			ack := store.UpdateAck{Acknowledged: true, MatchedCount: 1}
			if s.items[i].Status != status {
				s.items[i].Status = status
				ack.ModifiedCount = 1
			}
			return ack, nil
		}
	}
	return store.UpdateAck{Acknowledged: true}, nil
}

func (s *stubAds) Delete(_ context.Context, id string) (store.DeleteAck, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return store.DeleteAck{}, err
	}
	for i := range s.items {
		if s.items[i].ID == oid {
			s.items = slices.Delete(s.items, i, i+1)
			return store.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return store.DeleteAck{Acknowledged: true}, nil
}

type stubCategories struct {
	items []store.Category
	// failIncrement simulates the second write of medicine creation failing.
	failIncrement bool
}

func (s *stubCategories) List(context.Context) ([]store.Category, error) {
	return append([]store.Category{}, s.items...), nil
}

func (s *stubCategories) Insert(_ context.Context, c *store.Category) (store.InsertAck, error) {
	c.ID = primitive.NewObjectID()
	s.items = append(s.items, *c)
	return store.InsertAck{Acknowledged: true, InsertedID: c.ID.Hex()}, nil
}

func (s *stubCategories) Update(_ context.Context, id string, patch store.CategoryPatch) (store.UpdateAck, error) {
	if patch.IsEmpty() {
		return store.UpdateAck{}, store.ErrEmptyPatch
	}
	oid, err := store.ParseID(id)
	if err != nil {
		return store.UpdateAck{}, err
	}
	for i := range s.items {
		if s.items[i].ID != oid {
			continue
		}
		c := &s.items[i]
		if patch.CategoryName != nil {
			c.CategoryName = *patch.CategoryName
		}
		if patch.CategoryImage != nil {
			c.CategoryImage = *patch.CategoryImage
		}
		if patch.MedicineCount != nil {
			c.MedicineCount = *patch.MedicineCount
		}
		return store.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return store.UpdateAck{Acknowledged: true}, nil
}

func (s *stubCategories) Delete(_ context.Context, id string) (store.DeleteAck, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return store.DeleteAck{}, err
	}
	for i := range s.items {
		if s.items[i].ID == oid {
			s.items = slices.Delete(s.items, i, i+1)
			return store.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return store.DeleteAck{Acknowledged: true}, nil
}

func (s *stubCategories) IncrementCount(_ context.Context, name string, delta int) (store.UpdateAck, error) {
	if s.failIncrement {
		return store.UpdateAck{}, errors.New("connection reset")
	}
	for i := range s.items {
		if s.items[i].CategoryName == name {
			s.items[i].MedicineCount += delta
			return store.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return store.UpdateAck{Acknowledged: true}, nil
}

func (s *stubCategories) SetCount(_ context.Context, name string, n int64) (store.UpdateAck, error) {
	for i := range s.items {
		if s.items[i].CategoryName != name {
			continue
		}
		ack := store.UpdateAck{Acknowledged: true, MatchedCount: 1}
		if s.items[i].MedicineCount != int(n) {
			s.items[i].MedicineCount = int(n)
			ack.ModifiedCount = 1
		}
		return ack, nil
	}
	return store.UpdateAck{Acknowledged: true}, nil
}

func (s *stubCategories) count(name string) int {
	for _, c := range s.items {
		if c.CategoryName == name {
			return c.MedicineCount
		}
	}
	return -1
}

type stubMedicines struct {
	items []store.Medicine
}

func (s *stubMedicines) List(_ context.Context, sellerEmail string) ([]store.Medicine, error) {
	out := []store.Medicine{}
	for _, m := range s.items {
		if sellerEmail == "" || m.SellerEmail == sellerEmail {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubMedicines) ListByCategory(_ context.Context, category string) ([]store.Medicine, error) {
	out := []store.Medicine{}
	for _, m := range s.items {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubMedicines) Insert(_ context.Context, m *store.Medicine) (store.InsertAck, error) {
	m.ID = primitive.NewObjectID()
	s.items = append(s.items, *m)
	return store.InsertAck{Acknowledged: true, InsertedID: m.ID.Hex()}, nil
}

func (s *stubMedicines) CountByCategory(context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	for _, m := range s.items {
		out[m.Category]++
	}
	return out, nil
}

type stubCart struct {
	items  []store.CartItem
	writes int
}

func (s *stubCart) ListByBuyer(_ context.Context, buyer string) ([]store.CartItem, error) {
	out := []store.CartItem{}
	for _, it := range s.items {
		if it.Buyer == buyer {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubCart) FindByKey(_ context.Context, name, buyer, company string) (*store.CartItem, error) {
	for _, it := range s.items {
		if it.Name == name && it.Buyer == buyer && it.Company == company {
			cp := it
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubCart) FindByID(_ context.Context, id string) (*store.CartItem, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	for _, it := range s.items {
		if it.ID == oid {
			cp := it
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubCart) Insert(_ context.Context, item *store.CartItem) (store.InsertAck, error) {
	s.writes++
	item.ID = primitive.NewObjectID()
	s.items = append(s.items, *item)
	return store.InsertAck{Acknowledged: true, InsertedID: item.ID.Hex()}, nil
}

func (s *stubCart) IncrementQuantity(_ context.Context, id string, delta int) (store.UpdateAck, error) {
	s.writes++
	oid, err := store.ParseID(id)
	if err != nil {
		return store.UpdateAck{}, err
	}
	for i := range s.items {
		if s.items[i].ID == oid {
			s.items[i].Quantity += delta
			return store.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return store.UpdateAck{Acknowledged: true}, nil
}

func (s *stubCart) Delete(_ context.Context, id string) (store.DeleteAck, error) {
	s.writes++
	oid, err := store.ParseID(id)
	if err != nil {
		return store.DeleteAck{}, err
	}
	for i := range s.items {
		if s.items[i].ID == oid {
			s.items = slices.Delete(s.items, i, i+1)
			return store.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return store.DeleteAck{Acknowledged: true}, nil
}

func (s *stubCart) DeleteByBuyer(_ context.Context, buyer string) (store.DeleteAck, error) {
	s.writes++
	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(it store.CartItem) bool { return it.Buyer == buyer })
	return store.DeleteAck{Acknowledged: true, DeletedCount: int64(before - len(s.items))}, nil
}

type stubOrders struct {
	items []store.Order
}

func (s *stubOrders) Insert(_ context.Context, o *store.Order) (store.InsertAck, error) {
	o.ID = primitive.NewObjectID()
	s.items = append(s.items, *o)
	return store.InsertAck{Acknowledged: true, InsertedID: o.ID.Hex()}, nil
}

// List applies the same predicate OrderFilter.Query encodes for Mongo.
func (s *stubOrders) List(_ context.Context, f store.OrderFilter) ([]store.Order, error) {
	out := []store.Order{}
	for _, o := range s.items {
		if f.BuyerEmail != "" && o.BuyerEmail != f.BuyerEmail {
			continue
		}
		if f.SellerEmail != "" && !slices.ContainsFunc(o.Items, func(it store.OrderItem) bool {
			return it.SellerEmail == f.SellerEmail
		}) {
			continue
		}
		if f.Start != "" && f.End != "" {
			if strings.Compare(o.CreatedAt, f.Start) < 0 || strings.Compare(o.CreatedAt, f.End+"T23:59:59.999Z") > 0 {
				continue
			}
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *stubOrders) FindByID(_ context.Context, id string) (*store.Order, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	for _, o := range s.items {
		if o.ID == oid {
			cp := o
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubOrders) MarkPaid(_ context.Context, id, transactionID string, at time.Time) (store.UpdateAck, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return store.UpdateAck{}, err
	}
	for i := range s.items {
		if s.items[i].ID != oid {
			continue
		}
		o := &s.items[i]
		ack := store.UpdateAck{Acknowledged: true, MatchedCount: 1}
		if o.PaymentStatus != store.PaymentPaid || o.TransactionID != transactionID || o.PaidAt == nil || !o.PaidAt.Equal(at) {
			ack.ModifiedCount = 1
		}
		paid := at
		o.PaymentStatus = store.PaymentPaid
		o.TransactionID = transactionID
		o.PaidAt = &paid
		return ack, nil
	}
	return store.UpdateAck{Acknowledged: true}, nil
}

type stubPayments struct {
	secret string
	err    error
	last   decimal.Decimal
}

func (s *stubPayments) CreateIntent(_ context.Context, amount decimal.Decimal) (string, error) {
	s.last = amount
	if s.err != nil {
		return "", s.err
	}
	return s.secret, nil
}
