package middleware

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"
	"wanderlust/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass the session identity to the next handler. The guest flag mirrors
		// the id prefix; persistence routing keys off the id alone.
		c.Set("user_id", claims.UserID)
		c.Set("is_guest", claims.IsGuest)
		c.Next()
	}
}
