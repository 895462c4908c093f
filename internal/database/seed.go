package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
)

// SeedProducts inserts the starter catalog when the products collection is
// empty. The storefront never writes products itself, so a fresh database
// would otherwise have nothing to sell.
func SeedProducts(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := db.Collection("products").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	catalog := []models.Product{
		{Name: "Rose Bouquet", Description: "A dozen fresh red roses wrapped with eucalyptus.", Price: 49.99, ImageURL: "/public/img/rose-bouquet.jpg", Category: "Bouquets", Stock: 10, Featured: true},
		{Name: "Spring Tulips", Description: "Mixed tulips in seasonal colors.", Price: 34.99, ImageURL: "/public/img/spring-tulips.jpg", Category: "Bouquets", Stock: 15, Featured: true},
		{Name: "White Orchid", Description: "Potted phalaenopsis orchid, two stems.", Price: 59.99, ImageURL: "/public/img/white-orchid.jpg", Category: "Plants", Stock: 8, Featured: true},
		{Name: "Sunflower Bunch", Description: "Five tall sunflowers, bright and sturdy.", Price: 27.50, ImageURL: "/public/img/sunflower-bunch.jpg", Category: "Bouquets", Stock: 12, Featured: false},
		{Name: "Peony Arrangement", Description: "Seasonal peonies in a ceramic vase.", Price: 72.00, ImageURL: "/public/img/peony-arrangement.jpg", Category: "Arrangements", Stock: 6, Featured: true},
		{Name: "Lily Centerpiece", Description: "White lilies and greenery for the table.", Price: 64.50, ImageURL: "/public/img/lily-centerpiece.jpg", Category: "Arrangements", Stock: 7, Featured: false},
		{Name: "Succulent Trio", Description: "Three small succulents in terracotta pots.", Price: 24.99, ImageURL: "/public/img/succulent-trio.jpg", Category: "Plants", Stock: 20, Featured: false},
		{Name: "Wildflower Mix", Description: "Hand-tied seasonal wildflowers.", Price: 39.99, ImageURL: "/public/img/wildflower-mix.jpg", Category: "Bouquets", Stock: 9, Featured: false},
	}

	docs := make([]interface{}, 0, len(catalog))
	for i, p := range catalog {
		// Stagger createdAt so the newest-first listing has a stable order.
		p.CreatedAt = now.Add(-time.Duration(i) * time.Minute)
		docs = append(docs, p)
	}

	if _, err := db.Collection("products").InsertMany(ctx, docs); err != nil {
		return err
	}

	log.Printf("SeedProducts: inserted %d products", len(docs))
	return nil
}
