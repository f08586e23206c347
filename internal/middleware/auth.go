package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/apperrors"
)

// AuthMiddleware verifies the Bearer token and puts the caller's identity
// on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Authorization header missing or invalid")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware parses the Bearer token when present but lets
// anonymous requests through. Used on public job reads so jobseekers get
// per-viewer annotations.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			// A bad token on an optional route is treated as anonymous.
			c.Next()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRoles allows only callers holding one of the given roles. Must
// run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			abortForbidden(c)
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				abortForbidden(c)
				return
			}
			role = models.UserRole(roleStr)
		}

		if !roleSet[role] {
			abortForbidden(c)
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	err := apperrors.NewUnauthorizedError(message)
	c.AbortWithStatusJSON(err.HTTPCode, apperrors.ErrorEnvelope{
		Success: false,
		Message: err.Message,
	})
}

func abortForbidden(c *gin.Context) {
	err := apperrors.ErrInsufficientPermissions
	c.AbortWithStatusJSON(err.HTTPCode, apperrors.ErrorEnvelope{
		Success: false,
		Message: err.Message,
	})
}
