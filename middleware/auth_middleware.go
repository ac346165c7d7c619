package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kamuz-01/Sistema-Feira/models"
	"github.com/kamuz-01/Sistema-Feira/services"
)

var authService = services.NewAuthService()

// AuthMiddleware validates the bearer token and loads the account
// behind it. Requests without valid credentials are rejected.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"detail": "As credenciais de autenticação não foram fornecidas.",
			})
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("currentUser", user)
		c.Next()
	}
}

// OptionalAuthMiddleware loads the account when a valid bearer token is
// present but never rejects the request. Public listings use it because
// an authenticated producer sees a restricted catalog.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c); ok {
			c.Set("userId", user.ID)
			c.Set("currentUser", user)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated account set by the middleware
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("currentUser")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// resolveUser extracts and validates the Authorization header, then
// loads the account (with groups) so deleted users are rejected even
// while their token is still unexpired.
func resolveUser(c *gin.Context) (*models.User, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}

	claims, err := services.ValidateToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}

	user, err := authService.CurrentUser(claims.UserID)
	if err != nil {
		return nil, false
	}
	return user, true
}
