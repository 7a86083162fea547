package dto

import (
	"time"

	"github.com/asset-management-api/internal/models"
)

// AssetDTO represents an asset in API responses
type AssetDTO struct {
	ID           uint64           `json:"id"`
	Name         string           `json:"name"`
	AssetType    models.AssetType `json:"asset_type"`
	TypeLabel    string           `json:"type_label"`
	Cost         float64          `json:"cost"`
	RepairCost   float64          `json:"repair_cost"`
	AssignedToID *uint64          `json:"assigned_to_id"`
	AssignedTo   *UserDTO         `json:"assigned_to,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// AssetListItemDTO represents an asset in the paginated list, annotated with
// the summed cost of its maintenance logs. RepairTotal is null for assets
// that have no logs.
type AssetListItemDTO struct {
	AssetDTO
	RepairTotal *float64 `json:"repair_total"`
}

// AssetListResponse represents a paginated list of assets
type AssetListResponse struct {
	Assets     []AssetListItemDTO `json:"assets"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalCount int64              `json:"total_count"`
	TotalPages int                `json:"total_pages"`
}

// MaintenanceLogDTO represents a maintenance log in API responses
type MaintenanceLogDTO struct {
	ID           uint64    `json:"id"`
	AssetID      uint64    `json:"asset_id"`
	Description  string    `json:"description"`
	Cost         float64   `json:"cost"`
	DateRepaired time.Time `json:"date_repaired"`
}

// ToAssetDTO converts an Asset model to AssetDTO
func ToAssetDTO(asset models.Asset) AssetDTO {
	dto := AssetDTO{
		ID:           asset.ID,
		Name:         asset.Name,
		AssetType:    asset.AssetType,
		TypeLabel:    asset.AssetType.Label(),
		Cost:         asset.Cost,
		RepairCost:   asset.RepairCost,
		AssignedToID: asset.AssignedToID,
		CreatedAt:    asset.CreatedAt,
		UpdatedAt:    asset.UpdatedAt,
	}

	// Include assigned user if joined
	if asset.AssignedTo != nil && asset.AssignedTo.ID != 0 {
		user := ToUserDTO(*asset.AssignedTo)
		dto.AssignedTo = &user
	}

	return dto
}

// ToMaintenanceLogDTO converts a MaintenanceLog model to MaintenanceLogDTO
func ToMaintenanceLogDTO(log models.MaintenanceLog) MaintenanceLogDTO {
	return MaintenanceLogDTO{
		ID:           log.ID,
		AssetID:      log.AssetID,
		Description:  log.Description,
		Cost:         log.Cost,
		DateRepaired: log.DateRepaired,
	}
}

// ToAssetListResponse converts assets and their repair totals to a paginated response
func ToAssetListResponse(assets []models.Asset, repairTotals map[uint64]float64, page, pageSize int, totalCount int64) AssetListResponse {
	items := make([]AssetListItemDTO, len(assets))
	for i, asset := range assets {
		item := AssetListItemDTO{
			AssetDTO: ToAssetDTO(asset),
		}
		if total, ok := repairTotals[asset.ID]; ok {
			item.RepairTotal = &total
		}
		items[i] = item
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return AssetListResponse{
		Assets:     items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
