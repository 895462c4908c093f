package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one (session, product, quantity) row. Product is populated by
// the gateway's joined listing and is never written back to the collection.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID string             `bson:"sessionId" json:"sessionId"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
	Product   Product            `bson:"product,omitempty" json:"product"`
}

// LineTotal is price × quantity using the currently joined product price.
func (ci CartItem) LineTotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
