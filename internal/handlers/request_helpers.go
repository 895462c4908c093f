package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/store"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func ensureStore(ctx context.Context, st *store.Store) error {
	return st.Ping(ctx)
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
