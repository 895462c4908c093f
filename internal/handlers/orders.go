package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"backend/internal/checkout"
	"backend/internal/middleware"
	"backend/internal/store"
)

type submitOrderRequest struct {
	CustomerName        string `form:"customerName" binding:"required"`
	CustomerEmail       string `form:"customerEmail" binding:"required,email"`
	CustomerPhone       string `form:"customerPhone" binding:"required"`
	DeliveryAddress     string `form:"deliveryAddress" binding:"required"`
	DeliveryDate        string `form:"deliveryDate" binding:"required"`
	SpecialInstructions string `form:"specialInstructions"`
}

// POST /orders — runs the submission sequence against the current cart. Any
// failure logs and sends the user back to the checkout screen with no
// transition; success redirects to the confirmation screen carrying the new
// order id and the customer's email.
func SubmitOrder(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req submitOrderRequest
		if err := c.ShouldBind(&req); err != nil {
			log.Printf("[%s] invalid form: %v", route, err)
			c.Redirect(http.StatusSeeOther, "/checkout")
			return
		}

		sessionID := middleware.SessionID(c)
		mgr := loadCartState(c, st, route)

		form := checkout.Form{
			CustomerName:        req.CustomerName,
			CustomerEmail:       req.CustomerEmail,
			CustomerPhone:       req.CustomerPhone,
			DeliveryAddress:     req.DeliveryAddress,
			DeliveryDate:        req.DeliveryDate,
			SpecialInstructions: req.SpecialInstructions,
		}

		order, err := checkout.Submit(c.Request.Context(), st, sessionID, form, mgr.Items())
		if err != nil {
			log.Printf("[%s] order submission failed: %v", route, err)
			c.Redirect(http.StatusSeeOther, "/checkout")
			return
		}

		log.Printf("[%s] order %s created, total %.2f", route, order.ID.Hex(), order.TotalAmount)

		query := url.Values{}
		query.Set("order", order.ID.Hex())
		query.Set("email", order.CustomerEmail)
		c.Redirect(http.StatusSeeOther, "/confirmation?"+query.Encode())
	}
}
