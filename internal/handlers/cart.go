package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/cart"
	"backend/internal/models"
)

// CartGateway is the slice of the data gateway the cart mutations need: the
// manager's operations plus the product lookup behind the stock check.
type CartGateway interface {
	cart.Gateway
	GetProduct(ctx context.Context, id primitive.ObjectID) (models.Product, error)
}

// Gateway failures during cart mutations are logged and swallowed: the
// redirect re-renders the screen from authoritative state, so a failed
// mutation looks like a no-op click.

// POST /cart/add (form: productId)
func AddToCart(gw CartGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/add"
		defer handlePanic(c, route)

		back := redirectTarget(c, "/")

		productID, err := primitive.ObjectIDFromHex(c.PostForm("productId"))
		if err != nil {
			log.Printf("[%s] invalid productId: %v", route, err)
			c.Redirect(http.StatusSeeOther, back)
			return
		}

		product, err := gw.GetProduct(c.Request.Context(), productID)
		if err != nil {
			log.Printf("[%s] product lookup failed: %v", route, err)
			c.Redirect(http.StatusSeeOther, back)
			return
		}

		// Out-of-stock products are refused here, at the screen layer;
		// the manager itself only clamps.
		if product.Stock == 0 {
			log.Printf("[%s] refused add for out-of-stock product %s", route, productID.Hex())
			c.Redirect(http.StatusSeeOther, back)
			return
		}

		mgr := loadCartState(c, gw, route)
		if err := mgr.Add(c.Request.Context(), product); err != nil {
			log.Printf("[%s] add to cart failed: %v", route, err)
		}

		c.Redirect(http.StatusSeeOther, back)
	}
}

// POST /cart/update (form: itemId, quantity)
func UpdateCartItem(gw cart.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/update"
		defer handlePanic(c, route)

		itemID, err := primitive.ObjectIDFromHex(c.PostForm("itemId"))
		if err != nil {
			log.Printf("[%s] invalid itemId: %v", route, err)
			c.Redirect(http.StatusSeeOther, "/cart")
			return
		}

		quantity, err := strconv.Atoi(c.PostForm("quantity"))
		if err != nil {
			log.Printf("[%s] invalid quantity: %v", route, err)
			c.Redirect(http.StatusSeeOther, "/cart")
			return
		}

		mgr := loadCartState(c, gw, route)

		// Clamp to [1, stock] before calling the manager; the manager
		// writes whatever it is given.
		for _, item := range mgr.Items() {
			if item.ID == itemID {
				if quantity < 1 {
					quantity = 1
				}
				if quantity > item.Product.Stock {
					quantity = item.Product.Stock
				}
				if err := mgr.UpdateQuantity(c.Request.Context(), itemID, quantity); err != nil {
					log.Printf("[%s] quantity update failed: %v", route, err)
				}
				break
			}
		}

		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

// POST /cart/remove (form: itemId)
func RemoveCartItem(gw cart.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/remove"
		defer handlePanic(c, route)

		itemID, err := primitive.ObjectIDFromHex(c.PostForm("itemId"))
		if err != nil {
			log.Printf("[%s] invalid itemId: %v", route, err)
			c.Redirect(http.StatusSeeOther, "/cart")
			return
		}

		mgr := loadCartState(c, gw, route)
		if err := mgr.Remove(c.Request.Context(), itemID); err != nil {
			log.Printf("[%s] remove failed: %v", route, err)
		}

		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

// redirectTarget sends mutations back to the screen that issued them. Only
// same-site paths are accepted; anything else falls back.
func redirectTarget(c *gin.Context, fallback string) string {
	if from := c.PostForm("from"); from != "" && from[0] == '/' {
		return from
	}
	return fallback
}
