package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("products").Indexes()

	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	}

	log.Println("EnsureProductIndexes: creating createdAt_desc index")
	_, err := indexes.CreateOne(ctx, createdAtIndex)
	if err != nil {
		log.Println("EnsureProductIndexes: createdAt index error:", err)
		return err
	}
	return nil
}

// EnsureCartIndexes speeds up the session-scoped listing and the
// one-row-per-(session, product) lookup. The pair index is intentionally not
// unique: the duplicate-prevention lives in the cart manager.
func EnsureCartIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("cart_items").Indexes()

	sessionProductIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "sessionId", Value: 1},
			{Key: "productId", Value: 1},
		},
		Options: options.Index().SetName("sessionId_productId"),
	}

	log.Println("EnsureCartIndexes: creating sessionId_productId index")
	_, err := indexes.CreateOne(ctx, sessionProductIndex)
	if err != nil {
		log.Println("EnsureCartIndexes: sessionId index error:", err)
		return err
	}
	return nil
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("order_items").Indexes()

	orderIDIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "orderId", Value: 1}},
		Options: options.Index().SetName("orderId_index"),
	}

	log.Println("EnsureOrderIndexes: creating orderId_index index")
	_, err := indexes.CreateOne(ctx, orderIDIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: orderId index error:", err)
		return err
	}
	return nil
}
