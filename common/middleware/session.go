package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionIDKey is the gin context key holding the resolved session id.
const SessionIDKey = "session_id"

// SessionHeader is the header carrying the opaque browser-session identifier.
const SessionHeader = "X-Session-ID"

// Session resolves the caller's session id from the X-Session-ID header,
// minting a fresh one when absent. The resolved id is echoed back on the
// response so first-time callers can persist it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Set(SessionIDKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// SessionID returns the session id resolved by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
