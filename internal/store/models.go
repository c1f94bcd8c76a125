// models.go

package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"

	AdPending = "pending"
	AdActive  = "active"

	RoleUser   = "user"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// OrderTimeLayout is the createdAt format; date-range queries rely on its
// lexicographic order.
const OrderTimeLayout = "2006-01-02T15:04:05.000Z"

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id" swaggertype:"string"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      string             `bson:"role" json:"role"`
	Password  string             `bson:"password,omitempty" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Ad struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id" swaggertype:"string"`
	Email        string             `bson:"email" json:"email"`
	MedicineName string             `bson:"medicineName,omitempty" json:"medicineName,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type Category struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id" swaggertype:"string"`
	CategoryName  string             `bson:"categoryName" json:"categoryName"`
	CategoryImage string             `bson:"categoryImage,omitempty" json:"categoryImage,omitempty"`
	MedicineCount int                `bson:"medicineCount" json:"medicineCount"`
}

// CategoryPatch carries the submitted subset of category fields; nil means
// "leave unchanged".
type CategoryPatch struct {
	CategoryName  *string `json:"categoryName" binding:"omitempty,min=1"`
	CategoryImage *string `json:"categoryImage"`
	MedicineCount *int    `json:"medicineCount" binding:"omitempty,min=0"`
}

func (p CategoryPatch) IsEmpty() bool {
	return p.CategoryName == nil && p.CategoryImage == nil && p.MedicineCount == nil
}

func (p CategoryPatch) fields() bson.M {
	set := bson.M{}
	if p.CategoryName != nil {
		set["categoryName"] = *p.CategoryName
	}
	if p.CategoryImage != nil {
		set["categoryImage"] = *p.CategoryImage
	}
	if p.MedicineCount != nil {
		set["medicineCount"] = *p.MedicineCount
	}
	return set
}

type Medicine struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id" swaggertype:"string"`
	Name        string             `bson:"name" json:"name"`
	GenericName string             `bson:"genericName,omitempty" json:"genericName,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	MassUnit    string             `bson:"massUnit,omitempty" json:"massUnit,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Discount    float64            `bson:"discount" json:"discount"`
	SellerEmail string             `bson:"sellerEmail" json:"sellerEmail"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type CartItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id" swaggertype:"string"`
	Name        string             `bson:"name" json:"name"`
	Buyer       string             `bson:"buyer" json:"buyer"`
	Company     string             `bson:"company" json:"company"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	SellerEmail string             `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
	MedicineID  string             `bson:"medicineId,omitempty" json:"medicineId,omitempty"`
}

type OrderItem struct {
	Name        string  `bson:"name" json:"name"`
	Company     string  `bson:"company,omitempty" json:"company,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	SellerEmail string  `bson:"sellerEmail" json:"sellerEmail"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id" swaggertype:"string"`
	BuyerEmail    string             `bson:"buyerEmail" json:"buyerEmail"`
	Items         []OrderItem        `bson:"items" json:"items"`
	TotalPrice    float64            `bson:"totalPrice" json:"totalPrice"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     string             `bson:"createdAt" json:"createdAt"`
	PaidAt        *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}
