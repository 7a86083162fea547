package middleware

import (
	"strconv"

	"github.com/asset-management-api/internal/database"
	apierrors "github.com/asset-management-api/internal/errors"
	"github.com/asset-management-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireAsset resolves the :id path parameter to an existing asset and
// stashes it in the context for the handler.
func RequireAsset() gin.HandlerFunc {
	return func(c *gin.Context) {
		assetIDStr := c.Param("id")
		assetID, err := strconv.ParseUint(assetIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid asset ID")
			c.Abort()
			return
		}

		var asset models.Asset
		if err := database.GetDB().First(&asset, assetID).Error; err != nil {
			apierrors.NotFound(c, "Asset not found")
			c.Abort()
			return
		}

		c.Set("asset", asset)
		c.Next()
	}
}

// GetAsset retrieves the asset loaded by RequireAsset from context
func GetAsset(c *gin.Context) (models.Asset, bool) {
	assetInterface, exists := c.Get("asset")
	if !exists {
		return models.Asset{}, false
	}

	asset, ok := assetInterface.(models.Asset)
	return asset, ok
}
