package api

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/flightbooking/internal/service/auth"
	"github.com/gin-gonic/gin"
)

const adminIDKey = "admin_id"

// AdminAuth guards admin routes. The bearer token must have been issued
// by a prior /admin/login and still be present in the token store.
func AdminAuth(service auth.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access. Missing or invalid admin authentication token."})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		adminID, err := service.ValidateAdminToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access. Missing or invalid admin authentication token."})
			return
		}

		c.Set(adminIDKey, adminID)
		c.Next()
	}
}

// AdminID returns the admin identity stored by AdminAuth, or 0 when the
// request did not pass through the middleware.
func AdminID(c *gin.Context) int64 {
	v, _ := c.Get(adminIDKey)
	id, _ := v.(int64)
	return id
}
