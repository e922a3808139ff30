package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "session_id"

// sessionMiddleware makes sure every request carries a session id, issuing a
// random one in a cookie when the client has none or sent a malformed one.
func sessionMiddleware(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || !isSessionID(sessionID) {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, sessionID, 0, "/", "", false, true)
		}
		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

func isSessionID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}

// sessionID returns the id stored by sessionMiddleware.
func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
