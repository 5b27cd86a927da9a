package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/ledger_engine_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ServiceAuthMiddleware creates a Gin middleware handler that validates the
// bearer service token presented by upstream callers (document services, the
// event scheduler, operators). The token subject becomes the caller ID
// recorded on events.
func ServiceAuthMiddleware(tokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateServiceToken(parts[1], tokenSecret)
		if err != nil {
			logger.Warn("Invalid service token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		callerID := claims.Subject
		if callerID == "" {
			logger.Error("Caller ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		// Store the caller ID and an enriched logger in the request context
		ctxWithCaller := context.WithValue(c.Request.Context(), callerIDKey, callerID)
		enrichedLogger := logger.With(slog.String("caller_id", callerID))
		c.Request = c.Request.WithContext(ContextWithLogger(ctxWithCaller, enrichedLogger))

		c.Next()
	}
}
