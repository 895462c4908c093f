// Package session mints and validates the anonymous visitor token that scopes
// cart rows. The token is deliberately opaque: a coarse timestamp plus a
// random base36 suffix, with no expiry, rotation, or collision detection.
package session

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	tokenPrefix = "session_"
	suffixLen   = 9
	suffixChars = "0123456789abcdefghijklmnopqrstuvwxyz"
	maxTokenLen = 64
)

// New returns a fresh session token, e.g. "session_1756700000000_k3f9q2x1m".
func New() string {
	var b strings.Builder
	b.WriteString(tokenPrefix)
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	b.WriteByte('_')
	for i := 0; i < suffixLen; i++ {
		b.WriteByte(suffixChars[rand.Intn(len(suffixChars))])
	}
	return b.String()
}

// Valid reports whether token looks like something New produced. Cookie values
// are used as filter keys, so anything malformed is replaced rather than
// trusted.
func Valid(token string) bool {
	if len(token) > maxTokenLen || !strings.HasPrefix(token, tokenPrefix) {
		return false
	}
	rest := strings.TrimPrefix(token, tokenPrefix)
	parts := strings.SplitN(rest, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	if _, err := strconv.ParseInt(parts[0], 10, 64); err != nil {
		return false
	}
	for _, r := range parts[1] {
		if !strings.ContainsRune(suffixChars, r) {
			return false
		}
	}
	return true
}
