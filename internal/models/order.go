package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem captures one order line with the product's price and name frozen
// at submission time, decoupled from later catalog changes.
type OrderItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID     primitive.ObjectID `bson:"orderId" json:"orderId"`
	ProductID   primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Price       float64            `bson:"price" json:"price"`
	ProductName string             `bson:"productName" json:"productName"`
}

// Order defines the persisted order document.
type Order struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName        string             `bson:"customerName" json:"customerName"`
	CustomerEmail       string             `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone       string             `bson:"customerPhone" json:"customerPhone"`
	DeliveryAddress     string             `bson:"deliveryAddress" json:"deliveryAddress"`
	DeliveryDate        string             `bson:"deliveryDate" json:"deliveryDate"`
	SpecialInstructions string             `bson:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`
	TotalAmount         float64            `bson:"totalAmount" json:"totalAmount"`
	Status              string             `bson:"status" json:"status"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
}
