package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// AnonCookieName is the cookie carrying the opaque per-browser id.
	AnonCookieName = "anon_id"

	// ContextUserIDKey is the gin context key handlers read the id from.
	ContextUserIDKey = "anonUserID"

	// ContextIsNewUserKey is set when the id was issued on this request.
	ContextIsNewUserKey = "anonUserIsNew"
)

// AnonymousIdentity guarantees every request carries a stable opaque
// identity. Browsers without an anon_id cookie get a fresh uuid issued
// on the response; either way the id is available in the gin context
// for handlers to use.
func AnonymousIdentity(cookieTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		anonID, err := c.Cookie(AnonCookieName)
		if err != nil || anonID == "" {
			anonID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(AnonCookieName, anonID, int(cookieTTL.Seconds()), "/", "", false, true)
			c.Set(ContextIsNewUserKey, true)
		}

		c.Set(ContextUserIDKey, anonID)
		c.Next()
	}
}

// UserID extracts the anonymous id set by AnonymousIdentity.
func UserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
