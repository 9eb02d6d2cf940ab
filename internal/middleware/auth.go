package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/izzypositivetech-001/Attendifybackend/internal/config"
	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
)

// The token travels in a custom header rather than an Authorization
// bearer scheme; existing clients depend on it.
const AuthHeader = "x-auth-token"

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		abort := func(code, message string) {
			httperr.Unauthorized(c, code, message)
			c.Abort()
		}

		tokenString := c.GetHeader(AuthHeader)
		if tokenString == "" {
			abort("missing_auth_token", "Authentication token required.")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abort("token_expired", "Token expired.")
				return
			}
			abort("invalid_token", "Invalid token.")
			return
		}
		if !token.Valid {
			abort("invalid_token", "Invalid token.")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort("invalid_token_claims", "Invalid token.")
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok {
			abort("invalid_token_payload", "Invalid token.")
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// ActorID extracts the authenticated user id for audit trails; nil outside
// an authenticated request.
func ActorID(c *gin.Context) *uint {
	if v, exists := c.Get(ContextUserID); exists {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
