package handlers

import (
	"encoding/csv"
	"fmt"
	"strconv"

	apierrors "github.com/asset-management-api/internal/errors"
	"github.com/asset-management-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ExportHandler serves the CSV asset report.
type ExportHandler struct {
	assetService *services.AssetService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(assetService *services.AssetService) *ExportHandler {
	return &ExportHandler{
		assetService: assetService,
	}
}

// ExportAssetsCSV streams every asset as a downloadable CSV report. Any
// authenticated user may export; the manager gate does not apply here.
func (h *ExportHandler) ExportAssetsCSV(c *gin.Context) {
	assets, err := h.assetService.ListAllAssets()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch assets")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="assets.csv"`)

	writer := csv.NewWriter(c.Writer)

	if err := writer.Write([]string{"Asset Name", "Type", "Cost", "Assigned User"}); err != nil {
		apierrors.InternalError(c, "Failed to write CSV")
		return
	}

	for _, asset := range assets {
		assignedUser := "Unassigned"
		if asset.AssignedTo != nil && asset.AssignedTo.ID != 0 {
			assignedUser = asset.AssignedTo.Username
		}

		record := []string{
			asset.Name,
			asset.AssetType.Label(),
			strconv.FormatFloat(asset.Cost, 'f', 2, 64),
			assignedUser,
		}
		if err := writer.Write(record); err != nil {
			apierrors.InternalError(c, "Failed to write CSV")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		apierrors.InternalError(c, fmt.Sprintf("Failed to flush CSV: %v", err))
	}
}
