// Package store is the typed gateway to the remote data store. Every method
// is a one-shot call: no retries, no pagination, no caching.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"backend/internal/models"
)

const callTimeout = 5 * time.Second

type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Ping checks the underlying connection, used by handlers before rendering.
func (s *Store) Ping(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return s.db.Client().Ping(checkCtx, readpref.Primary())
}

/* =========================
   PRODUCTS (read-only)
========================= */

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.db.Collection("products").Find(callCtx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(callCtx)

	return decodeProducts(callCtx, cursor)
}

func (s *Store) ListFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.db.Collection("products").Find(callCtx, bson.M{"featured": true}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(callCtx)

	return decodeProducts(callCtx, cursor)
}

func (s *Store) GetProduct(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	// Same normalization as the list paths, so legacy documents behave
	// identically in the overlay and the add-to-cart lookup.
	var raw bson.M
	if err := s.db.Collection("products").FindOne(callCtx, bson.M{"_id": id}).Decode(&raw); err != nil {
		return models.Product{}, err
	}

	return normalizeProductDocument(raw)
}

func (s *Store) ListCategories(ctx context.Context) ([]string, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	values, err := s.db.Collection("products").Distinct(callCtx, "category", bson.M{})
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if label, ok := v.(string); ok && label != "" {
			categories = append(categories, label)
		}
	}
	return categories, nil
}

/* =========================
   CART ITEMS
========================= */

// ListCartItems returns the session's cart rows, each joined with its product
// document. Rows whose product vanished are dropped by the unwind.
func (s *Store) ListCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"sessionId": sessionID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "productId",
			"foreignField": "_id",
			"as":           "product",
		}}},
		{{Key: "$unwind", Value: "$product"}},
		{{Key: "$sort", Value: bson.D{{Key: "updatedAt", Value: 1}}}},
	}

	cursor, err := s.db.Collection("cart_items").Aggregate(callCtx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(callCtx)

	items := make([]models.CartItem, 0)
	if err := cursor.All(callCtx, &items); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Product.InStock = items[i].Product.Stock > 0
	}
	return items, nil
}

func (s *Store) InsertCartItem(ctx context.Context, sessionID string, productID primitive.ObjectID, quantity int) error {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	item := models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		UpdatedAt: time.Now(),
	}

	_, err := s.db.Collection("cart_items").InsertOne(callCtx, item)
	return err
}

func (s *Store) UpdateCartItemQuantity(ctx context.Context, itemID primitive.ObjectID, quantity int) error {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"quantity":  quantity,
		"updatedAt": time.Now(),
	}}

	_, err := s.db.Collection("cart_items").UpdateOne(callCtx, bson.M{"_id": itemID}, update)
	return err
}

func (s *Store) DeleteCartItem(ctx context.Context, itemID primitive.ObjectID) error {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, err := s.db.Collection("cart_items").DeleteOne(callCtx, bson.M{"_id": itemID})
	return err
}

func (s *Store) ClearCart(ctx context.Context, sessionID string) error {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, err := s.db.Collection("cart_items").DeleteMany(callCtx, bson.M{"sessionId": sessionID})
	return err
}

/* =========================
   ORDERS (insert-only)
========================= */

func (s *Store) InsertOrder(ctx context.Context, order models.Order) (models.Order, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	res, err := s.db.Collection("orders").InsertOne(callCtx, order)
	if err != nil {
		return models.Order{}, err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}
	return order, nil
}

func (s *Store) InsertOrderItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, item)
	}

	_, err := s.db.Collection("order_items").InsertMany(callCtx, docs)
	return err
}
