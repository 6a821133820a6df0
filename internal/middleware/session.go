package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the session identifier.
const SessionCookie = "invopo_session"

// ContextKeySessionID is the gin context key for the session ID.
const ContextKeySessionID = "session_id"

// Session assigns a session ID to each request, minting a new one and
// setting the cookie when the request carries none. Workflow state is
// keyed by this ID.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		var id uuid.UUID
		if raw, err := c.Cookie(SessionCookie); err == nil {
			if parsed, perr := uuid.Parse(raw); perr == nil {
				id = parsed
			}
		}
		if id == uuid.Nil {
			id = uuid.New()
			c.SetCookie(SessionCookie, id.String(), 0, "/", "", false, true)
		}
		c.Set(ContextKeySessionID, id)
		c.Next()
	}
}

// GetSessionID extracts the session ID from the request context.
func GetSessionID(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get(ContextKeySessionID)
	if !ok {
		return uuid.Nil, errors.New("session ID not found in context")
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("session ID has unexpected type")
	}
	return id, nil
}
