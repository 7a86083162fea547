package middleware

import (
	"github.com/asset-management-api/internal/database"
	apierrors "github.com/asset-management-api/internal/errors"
	"github.com/asset-management-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireManager gates mutating operations behind the manager role. The
// check is role-based only and evaluated fresh on every request: the user
// row is reloaded so a revoked flag takes effect immediately.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().First(&user, userID).Error; err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !user.CanManageAssets() {
			apierrors.Forbidden(c, "You do not have manager access")
			c.Abort()
			return
		}

		c.Set("current_user", user)
		c.Next()
	}
}
