package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ModeradorMiddleware ensures the caller is a superuser or belongs to
// the Moderadores group. It must run after AuthMiddleware.
func ModeradorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"detail": "As credenciais de autenticação não foram fornecidas.",
			})
			c.Abort()
			return
		}

		if !user.IsModerador() {
			c.JSON(http.StatusForbidden, gin.H{
				"detail": "Acesso restrito a moderadores.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
