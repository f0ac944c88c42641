package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order statuses persisted in response to gateway notifications.
const (
	OrderStatusChallenge  = "challenge"
	OrderStatusAccept     = "accept"
	OrderStatusSettlement = "settlement"
	OrderStatusFailure    = "failure"
	OrderStatusPending    = "pending"
	OrderStatusRefund     = "refund"
)

// Order is written by the storefront at checkout time; this service only
// reads it back by its business identifier and mutates the status field.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OrderID     string             `bson:"order_id"`
	Status      string             `bson:"status"`
	CallbackURL string             `bson:"callback_url"`
	Customer    Customer           `bson:"customer"`
	Items       []OrderItem        `bson:"items"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

type OrderItem struct {
	ProductID string `bson:"product_id"`
	Name      string `bson:"name"`
	Price     int64  `bson:"price"`
	Quantity  int64  `bson:"quantity"`
}

type Customer struct {
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
}
