package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/cart"
	"backend/internal/middleware"
	"backend/internal/models"
	"backend/internal/store"
)

// Screen enumerates the storefront's top-level views. The product detail
// overlay is independent of the screen and only shows over home.
type Screen string

const (
	ScreenHome         Screen = "home"
	ScreenCart         Screen = "cart"
	ScreenCheckout     Screen = "checkout"
	ScreenConfirmation Screen = "confirmation"
)

type screenData struct {
	Screen    Screen
	CartCount int
	CartTotal float64
	CartItems []models.CartItem

	// home
	Products []models.Product
	Featured []models.Product
	Overlay  *models.Product

	// confirmation
	OrderID       string
	CustomerEmail string
}

// loadCartState builds the session's cart manager and reloads it. A gateway
// failure is logged and swallowed; the screen renders with whatever state the
// manager holds (an empty cart on first load).
func loadCartState(c *gin.Context, gw cart.Gateway, route string) *cart.Manager {
	mgr := cart.NewManager(gw, middleware.SessionID(c))
	if err := mgr.Reload(c.Request.Context()); err != nil {
		log.Printf("[%s] cart reload failed: %v", route, err)
	}
	return mgr
}

// GET / — catalog, hero, featured subset, footer; optional product overlay
// via ?product=<id>.
func Home(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /"
		defer handlePanic(c, route)

		// The screen renders even when the product fetch fails; the
		// failure is logged and the catalog shows empty.
		products, err := st.ListProducts(c.Request.Context())
		if err != nil {
			log.Printf("[%s] product load failed: %v", route, err)
			products = []models.Product{}
		}

		featured := make([]models.Product, 0)
		for _, p := range products {
			if p.Featured {
				featured = append(featured, p)
			}
		}

		var overlay *models.Product
		if raw := c.Query("product"); raw != "" {
			if id, err := primitive.ObjectIDFromHex(raw); err == nil {
				if product, err := st.GetProduct(c.Request.Context(), id); err == nil {
					overlay = &product
				} else {
					log.Printf("[%s] overlay product load failed: %v", route, err)
				}
			}
		}

		mgr := loadCartState(c, st, route)

		c.HTML(http.StatusOK, "home", screenData{
			Screen:    ScreenHome,
			CartCount: mgr.Count(),
			CartTotal: mgr.Total(),
			Products:  products,
			Featured:  featured,
			Overlay:   overlay,
		})
	}
}

// GET /cart
func ShowCart(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		mgr := loadCartState(c, st, route)

		c.HTML(http.StatusOK, "cart", screenData{
			Screen:    ScreenCart,
			CartCount: mgr.Count(),
			CartTotal: mgr.Total(),
			CartItems: mgr.Items(),
		})
	}
}

// GET /checkout
func ShowCheckout(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /checkout"
		defer handlePanic(c, route)

		mgr := loadCartState(c, st, route)

		c.HTML(http.StatusOK, "checkout", screenData{
			Screen:    ScreenCheckout,
			CartCount: mgr.Count(),
			CartTotal: mgr.Total(),
			CartItems: mgr.Items(),
		})
	}
}

// GET /confirmation?order=<id>&email=<addr>
func ShowConfirmation(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /confirmation"
		defer handlePanic(c, route)

		mgr := loadCartState(c, st, route)

		c.HTML(http.StatusOK, "confirmation", screenData{
			Screen:        ScreenConfirmation,
			CartCount:     mgr.Count(),
			OrderID:       c.Query("order"),
			CustomerEmail: c.Query("email"),
		})
	}
}
