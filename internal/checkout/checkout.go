// Package checkout runs the order submission sequence: compute the total,
// create the order, create its line items, clear the session's cart. The
// steps are deliberately sequential and non-transactional; a failure aborts
// the remaining steps and leaves whatever already happened in place.
package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	"backend/internal/models"
)

// Gateway is the slice of the data gateway submission needs.
type Gateway interface {
	InsertOrder(ctx context.Context, order models.Order) (models.Order, error)
	InsertOrderItems(ctx context.Context, items []models.OrderItem) error
	ClearCart(ctx context.Context, sessionID string) error
}

// Form carries the delivery and contact fields collected on the checkout
// screen. Field-level requiredness and email shape are enforced by the
// handler's binding tags before this package sees the form.
type Form struct {
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	DeliveryAddress     string
	DeliveryDate        string
	SpecialInstructions string
}

const dateLayout = "2006-01-02"

var (
	ErrEmptyCart          = errors.New("at least one item is required")
	ErrInvalidDate        = errors.New("delivery date must be a valid date")
	ErrDeliveryDateInPast = errors.New("delivery date must be today or later")
)

// Validate checks what binding tags cannot: the delivery date must parse and
// must not be before today.
func (f Form) Validate(now time.Time) error {
	deliveryDate, err := time.Parse(dateLayout, strings.TrimSpace(f.DeliveryDate))
	if err != nil {
		return ErrInvalidDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if deliveryDate.Before(today) {
		return ErrDeliveryDateInPast
	}
	return nil
}

// Total sums line totals over the currently joined product prices.
func Total(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

// Submit creates the order and its items, then clears the session's cart.
// On success the returned order carries its generated id. A failed order
// insert leaves nothing behind; a failed item insert leaves an order with no
// items; a failed cart clear leaves stale cart rows. None of these are
// reconciled here.
func Submit(ctx context.Context, gw Gateway, sessionID string, form Form, items []models.CartItem) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if err := form.Validate(time.Now()); err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		CustomerName:        strings.TrimSpace(form.CustomerName),
		CustomerEmail:       strings.TrimSpace(form.CustomerEmail),
		CustomerPhone:       strings.TrimSpace(form.CustomerPhone),
		DeliveryAddress:     strings.TrimSpace(form.DeliveryAddress),
		DeliveryDate:        strings.TrimSpace(form.DeliveryDate),
		SpecialInstructions: strings.TrimSpace(form.SpecialInstructions),
		TotalAmount:         Total(items),
		Status:              "pending",
		CreatedAt:           time.Now(),
	}

	created, err := gw.InsertOrder(ctx, order)
	if err != nil {
		return models.Order{}, err
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			OrderID:     created.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
			ProductName: item.Product.Name,
		})
	}

	if err := gw.InsertOrderItems(ctx, orderItems); err != nil {
		return models.Order{}, err
	}

	if err := gw.ClearCart(ctx, sessionID); err != nil {
		return models.Order{}, err
	}

	return created, nil
}
