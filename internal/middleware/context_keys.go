package middleware

import "github.com/gin-gonic/gin"

// callerIDKey is the key used to store the authenticated caller's ID in the
// request context. Callers are upstream services or operators, identified by
// the subject claim of their service token.
const callerIDKey = contextKey("callerID")

// GetCallerIDFromContext retrieves the authenticated caller ID from the Gin
// context. It returns the caller ID and a boolean indicating if it was found.
func GetCallerIDFromContext(c *gin.Context) (string, bool) {
	callerIDVal := c.Request.Context().Value(callerIDKey)
	if callerIDVal == nil {
		return "", false
	}

	callerID, ok := callerIDVal.(string)
	if !ok {
		return "", false
	}

	return callerID, true
}
