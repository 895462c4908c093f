package handlers

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
	"backend/internal/store"
)

// fakeCartGateway records mutations so tests can assert which remote calls a
// handler issued.
type fakeCartGateway struct {
	products map[primitive.ObjectID]models.Product
	rows     []models.CartItem
	inserts  int
	updates  int
	deletes  int
}

func newFakeCartGateway(products ...models.Product) *fakeCartGateway {
	gw := &fakeCartGateway{products: make(map[primitive.ObjectID]models.Product)}
	for _, p := range products {
		gw.products[p.ID] = p
	}
	return gw
}

func (g *fakeCartGateway) ListCartItems(_ context.Context, _ string) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0, len(g.rows))
	for _, row := range g.rows {
		row.Product = g.products[row.ProductID]
		items = append(items, row)
	}
	return items, nil
}

func (g *fakeCartGateway) InsertCartItem(_ context.Context, sessionID string, productID primitive.ObjectID, quantity int) error {
	g.inserts++
	g.rows = append(g.rows, models.CartItem{
		ID:        primitive.NewObjectID(),
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

func (g *fakeCartGateway) UpdateCartItemQuantity(_ context.Context, _ primitive.ObjectID, _ int) error {
	g.updates++
	return nil
}

func (g *fakeCartGateway) DeleteCartItem(_ context.Context, _ primitive.ObjectID) error {
	g.deletes++
	return nil
}

func (g *fakeCartGateway) GetProduct(_ context.Context, id primitive.ObjectID) (models.Product, error) {
	product := g.products[id]
	product.InStock = product.Stock > 0
	return product, nil
}

func postForm(t *testing.T, r *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func formContext(t *testing.T, values url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest("POST", "/cart/add", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestRedirectTargetAcceptsSameSitePaths(t *testing.T) {
	c := formContext(t, url.Values{"from": {"/cart"}})
	if got := redirectTarget(c, "/"); got != "/cart" {
		t.Fatalf("expected /cart, got %q", got)
	}
}

func TestRedirectTargetFallsBack(t *testing.T) {
	tests := []url.Values{
		{},
		{"from": {""}},
		{"from": {"https://evil.example/phish"}},
	}
	for _, values := range tests {
		c := formContext(t, values)
		if got := redirectTarget(c, "/"); got != "/" {
			t.Fatalf("expected fallback / for %v, got %q", values, got)
		}
	}
}

func TestAddToCartRefusesOutOfStockAtScreenLayer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	soldOut := models.Product{ID: primitive.NewObjectID(), Name: "Peony Arrangement", Price: 72.00, Stock: 0}
	gw := newFakeCartGateway(soldOut)

	r := gin.New()
	r.POST("/cart/add", AddToCart(gw))

	w := postForm(t, r, "/cart/add", url.Values{"productId": {soldOut.ID.Hex()}})

	if w.Code != 303 {
		t.Fatalf("expected redirect status 303, got %d", w.Code)
	}
	if gw.inserts != 0 || gw.updates != 0 {
		t.Fatalf("expected no cart mutation for a stock-0 product, got %d inserts / %d updates", gw.inserts, gw.updates)
	}
}

func TestAddToCartInsertsInStockProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rose := models.Product{ID: primitive.NewObjectID(), Name: "Rose Bouquet", Price: 49.99, Stock: 10}
	gw := newFakeCartGateway(rose)

	r := gin.New()
	r.POST("/cart/add", AddToCart(gw))

	w := postForm(t, r, "/cart/add", url.Values{"productId": {rose.ID.Hex()}})

	if w.Code != 303 {
		t.Fatalf("expected redirect status 303, got %d", w.Code)
	}
	if gw.inserts != 1 {
		t.Fatalf("expected one cart insert, got %d", gw.inserts)
	}
	if len(gw.rows) != 1 || gw.rows[0].Quantity != 1 {
		t.Fatalf("expected a single row with quantity 1, got %+v", gw.rows)
	}
}

func TestSubmitOrderRejectsInvalidFormBeforeTouchingTheStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// A nil-backed store is safe here: binding fails before any call.
	r.POST("/orders", SubmitOrder(store.New(nil)))

	form := url.Values{
		"customerName": {"Jane Doe"},
		// missing email and everything else
	}
	req := httptest.NewRequest("POST", "/orders", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != 303 {
		t.Fatalf("expected redirect status 303, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/checkout" {
		t.Fatalf("expected redirect back to /checkout, got %q", got)
	}
}
