package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/store"
)

// GET /products — full catalog, newest first.
func GetProducts(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		if err := ensureStore(c.Request.Context(), st); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		products, err := st.ListProducts(c.Request.Context())
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/featured — the promotional subset shown on the home screen.
func GetFeaturedProducts(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/featured"
		defer handlePanic(c, route)

		products, err := st.ListFeaturedProducts(c.Request.Context())
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}
