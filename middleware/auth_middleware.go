package middleware

import (
	"time"

	"github.com/mandilinkybl-pixel/madirate/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin data-entry routes via the JWT session
// cookie set at login.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("auth_token")
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"success": false, "message": "Invalid session"})
			return
		}

		// Sliding expiry: refresh once the token is past half its life
		if time.Until(claims.ExpiresAt.Time) < 15*time.Minute {
			newToken, _ := auth.GenerateToken(claims.UserID)
			c.SetCookie("auth_token", newToken, 1800, "/", "", false, true)
		}

		c.Set("user", claims.UserID)
		c.Next()
	}
}
