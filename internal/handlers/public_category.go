package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/store"
)

// GET /categories — distinct category labels across the catalog.
func GetCategories(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /categories"
		defer handlePanic(c, route)

		log.Printf("[%s] hit", route)

		if err := ensureStore(c.Request.Context(), st); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		categories, err := st.ListCategories(c.Request.Context())
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] returning %d categories", route, len(categories))
		c.JSON(http.StatusOK, categories)
	}
}
