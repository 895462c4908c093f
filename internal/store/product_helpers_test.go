package store

import (
	"encoding/json"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestNormalizeProductDocumentCoercesStock(t *testing.T) {
	cases := []struct {
		name  string
		stock interface{}
		want  int
	}{
		{"int32", int32(5), 5},
		{"int64", int64(7), 7},
		{"float64", float64(3), 3},
		{"missing", nil, 0},
		{"junk", "lots", 0},
	}

	for _, tc := range cases {
		raw := bson.M{"name": "Test", "price": 10.0, "category": "Bouquets"}
		if tc.stock != nil {
			raw["stock"] = tc.stock
		}

		product, err := normalizeProductDocument(raw)
		if err != nil {
			t.Fatalf("%s: normalizeProductDocument returned error: %v", tc.name, err)
		}
		if product.Stock != tc.want {
			t.Fatalf("%s: expected stock %d, got %d", tc.name, tc.want, product.Stock)
		}
	}
}

func TestNormalizeProductDocumentCoercesFeatured(t *testing.T) {
	product, err := normalizeProductDocument(bson.M{
		"name":     "Test",
		"price":    10.0,
		"category": "Bouquets",
		"stock":    3,
		"featured": "true",
	})
	if err != nil {
		t.Fatalf("normalizeProductDocument returned error: %v", err)
	}
	if !product.Featured {
		t.Fatal("expected legacy string featured flag to decode as true")
	}
}

func TestProductJSONIncludesInStock(t *testing.T) {
	product, err := normalizeProductDocument(bson.M{
		"name":     "Rose Bouquet",
		"price":    49.99,
		"category": "Bouquets",
		"stock":    10,
	})
	if err != nil {
		t.Fatalf("normalizeProductDocument returned error: %v", err)
	}

	body, err := json.Marshal(product)
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}

	if !strings.Contains(string(body), "\"inStock\":true") {
		t.Fatalf("expected inStock=true in response json, got %s", body)
	}
}

func TestNormalizeProductDocumentZeroStockNotInStock(t *testing.T) {
	product, err := normalizeProductDocument(bson.M{
		"name":     "Sold Out",
		"price":    10.0,
		"category": "Bouquets",
		"stock":    0,
	})
	if err != nil {
		t.Fatalf("normalizeProductDocument returned error: %v", err)
	}
	if product.InStock {
		t.Fatal("expected stock 0 to report inStock=false")
	}
}
