// Package cart holds the in-memory cart state for one session and the
// mutations over it. Every mutation is a remote write followed by a full
// reload from the gateway; the in-memory slice is a discardable cache, never
// optimistically updated.
package cart

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
)

// Gateway is the slice of the data gateway the manager needs.
type Gateway interface {
	ListCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error)
	InsertCartItem(ctx context.Context, sessionID string, productID primitive.ObjectID, quantity int) error
	UpdateCartItemQuantity(ctx context.Context, itemID primitive.ObjectID, quantity int) error
	DeleteCartItem(ctx context.Context, itemID primitive.ObjectID) error
}

type Manager struct {
	gw        Gateway
	sessionID string
	items     []models.CartItem
}

func NewManager(gw Gateway, sessionID string) *Manager {
	return &Manager{gw: gw, sessionID: sessionID}
}

// Reload replaces the cached items with the gateway's current listing. It is
// the sole synchronization mechanism; on error the previous state stays.
func (m *Manager) Reload(ctx context.Context) error {
	items, err := m.gw.ListCartItems(ctx, m.sessionID)
	if err != nil {
		return err
	}
	m.items = items
	return nil
}

// Add puts one unit of product into the cart. An existing row for the product
// is bumped to quantity+1, clamped to the product's stock (a full cart is a
// silent no-op write, never a rejection); otherwise a new row with quantity 1
// is inserted. Stock-0 refusal is the screen layer's job, not the manager's.
func (m *Manager) Add(ctx context.Context, product models.Product) error {
	if existing := m.findByProduct(product.ID); existing != nil {
		quantity := existing.Quantity
		if existing.Quantity+1 <= product.Stock {
			quantity = existing.Quantity + 1
		}
		if err := m.gw.UpdateCartItemQuantity(ctx, existing.ID, quantity); err != nil {
			return err
		}
		return m.Reload(ctx)
	}

	if err := m.gw.InsertCartItem(ctx, m.sessionID, product.ID, 1); err != nil {
		return err
	}
	return m.Reload(ctx)
}

// UpdateQuantity writes quantity unconditionally; callers clamp to
// [1, product.stock] before calling.
func (m *Manager) UpdateQuantity(ctx context.Context, itemID primitive.ObjectID, quantity int) error {
	if err := m.gw.UpdateCartItemQuantity(ctx, itemID, quantity); err != nil {
		return err
	}
	return m.Reload(ctx)
}

func (m *Manager) Remove(ctx context.Context, itemID primitive.ObjectID) error {
	if err := m.gw.DeleteCartItem(ctx, itemID); err != nil {
		return err
	}
	return m.Reload(ctx)
}

func (m *Manager) Items() []models.CartItem {
	return m.items
}

// Count is the sum of quantities, used for the header badge.
func (m *Manager) Count() int {
	count := 0
	for _, item := range m.items {
		count += item.Quantity
	}
	return count
}

// Total is the sum of line totals over the currently joined product prices,
// recomputed on every call.
func (m *Manager) Total() float64 {
	total := 0.0
	for _, item := range m.items {
		total += item.LineTotal()
	}
	return total
}

func (m *Manager) findByProduct(productID primitive.ObjectID) *models.CartItem {
	for i := range m.items {
		if m.items[i].ProductID == productID {
			return &m.items[i]
		}
	}
	return nil
}
