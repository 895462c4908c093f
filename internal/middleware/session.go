package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/session"
)

const sessionKey = "sessionId"

// cookie lives for a year; the token never rotates.
const cookieMaxAge = 365 * 24 * 60 * 60

// Session resolves the visitor's session token from the named cookie and
// injects it into the gin context. A missing or malformed cookie gets a fresh
// token, written back once; subsequent requests reuse it unchanged.
func Session(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || !session.Valid(token) {
			token = session.New()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, token, cookieMaxAge, "/", "", false, true)
			log.Println("[SESSION] [INFO] new session minted")
		}

		c.Set(sessionKey, token)
		c.Next()
	}
}

// SessionID returns the token injected by Session, or "" when the middleware
// did not run.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
