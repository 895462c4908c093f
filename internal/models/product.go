package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Stock       int                `bson:"stock" json:"stock"`
	InStock     bool               `bson:"-" json:"inStock"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
