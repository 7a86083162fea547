package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/asset-management-api/internal/dto"
	apierrors "github.com/asset-management-api/internal/errors"
	"github.com/asset-management-api/internal/middleware"
	"github.com/asset-management-api/internal/models"
	"github.com/asset-management-api/internal/services"
	"github.com/asset-management-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// AssetHandler coordinates asset and maintenance HTTP handlers.
type AssetHandler struct {
	assetService *services.AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService *services.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// AssetRequest is the request body shared by create and update.
type AssetRequest struct {
	Name         string           `json:"name" binding:"required,max=100"`
	AssetType    models.AssetType `json:"asset_type" binding:"required,oneof=LAPTOP MONITOR PHONE FURNITURE"`
	Cost         float64          `json:"cost" binding:"gte=0"`
	AssignedToID *uint64          `json:"assigned_to_id"`
}

// ListAssets returns all assets with their assigned user and the summed
// maintenance cost per asset, five per page.
func (h *AssetHandler) ListAssets(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	assets, repairTotals, total, err := h.assetService.ListAssets(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch assets")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetListResponse(assets, repairTotals, params.Page, params.Limit, total))
}

// GetAsset returns a single asset with its assigned user and logs.
func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, ok := middleware.GetAsset(c)
	if !ok {
		apierrors.InternalError(c, "Asset not found in context")
		return
	}

	full, err := h.assetService.GetAsset(asset.ID)
	if err != nil {
		respondAssetError(c, err)
		return
	}

	response := dto.ToAssetDTO(*full)
	logs := make([]dto.MaintenanceLogDTO, len(full.MaintenanceLogs))
	for i, log := range full.MaintenanceLogs {
		logs[i] = dto.ToMaintenanceLogDTO(log)
	}

	c.JSON(http.StatusOK, gin.H{
		"asset":            response,
		"maintenance_logs": logs,
	})
}

// CreateAsset creates a new asset. Manager-gated.
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	asset, err := h.assetService.CreateAsset(services.AssetInput{
		Name:         req.Name,
		AssetType:    req.AssetType,
		Cost:         req.Cost,
		AssignedToID: req.AssignedToID,
	})
	if err != nil {
		respondAssetError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetDTO(*asset))
}

// UpdateAsset modifies an existing asset. Manager-gated.
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	asset, ok := middleware.GetAsset(c)
	if !ok {
		apierrors.InternalError(c, "Asset not found in context")
		return
	}

	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.assetService.UpdateAsset(asset.ID, services.AssetInput{
		Name:         req.Name,
		AssetType:    req.AssetType,
		Cost:         req.Cost,
		AssignedToID: req.AssignedToID,
	})
	if err != nil {
		respondAssetError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetDTO(*updated))
}

// DeleteAsset removes an asset and its maintenance logs. Manager-gated.
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	asset, ok := middleware.GetAsset(c)
	if !ok {
		apierrors.InternalError(c, "Asset not found in context")
		return
	}

	if err := h.assetService.DeleteAsset(asset.ID); err != nil {
		respondAssetError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Asset deleted successfully",
	})
}

// AddMaintenance records a repair event for the asset in the URL path. The
// asset reference is never taken from the request body. Manager-gated.
func (h *AssetHandler) AddMaintenance(c *gin.Context) {
	asset, ok := middleware.GetAsset(c)
	if !ok {
		apierrors.InternalError(c, "Asset not found in context")
		return
	}

	type MaintenanceRequest struct {
		Description  string     `json:"description" binding:"required"`
		Cost         float64    `json:"cost" binding:"gte=0"`
		DateRepaired *time.Time `json:"date_repaired"`
	}

	var req MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	log, err := h.assetService.AddMaintenanceLog(asset.ID, services.MaintenanceInput{
		Description:  req.Description,
		Cost:         req.Cost,
		DateRepaired: req.DateRepaired,
	})
	if err != nil {
		respondAssetError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMaintenanceLogDTO(*log))
}

// ListMaintenance returns the asset's repair history, most recent first.
func (h *AssetHandler) ListMaintenance(c *gin.Context) {
	asset, ok := middleware.GetAsset(c)
	if !ok {
		apierrors.InternalError(c, "Asset not found in context")
		return
	}

	logs, err := h.assetService.ListMaintenanceLogs(asset.ID)
	if err != nil {
		respondAssetError(c, err)
		return
	}

	logDTOs := make([]dto.MaintenanceLogDTO, len(logs))
	for i, log := range logs {
		logDTOs[i] = dto.ToMaintenanceLogDTO(log)
	}

	c.JSON(http.StatusOK, gin.H{"maintenance_logs": logDTOs})
}

func respondAssetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAssetNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAssignedUserNotFound),
		errors.Is(err, services.ErrNegativeCost):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
