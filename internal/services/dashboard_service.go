package services

import (
	"fmt"

	"github.com/asset-management-api/internal/models"
	"gorm.io/gorm"
)

// DashboardService computes the aggregate statistics shown on the dashboard.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// AssetTypeCount is one row of the assets-by-type breakdown.
type AssetTypeCount struct {
	AssetType models.AssetType `json:"asset_type"`
	Count     int64            `json:"count"`
}

// DepartmentCost is the summed asset cost of one department, over assets
// assigned to users belonging to that department.
type DepartmentCost struct {
	DepartmentID uint64  `json:"department_id"`
	Name         string  `json:"name"`
	TotalCost    float64 `json:"total_cost"`
}

// DashboardData represents the dashboard statistics.
type DashboardData struct {
	TotalAssetValue  float64          `json:"total_asset_value"`
	AssetsByType     []AssetTypeCount `json:"assets_by_type"`
	CostByDepartment []DepartmentCost `json:"cost_by_department"`
}

// GetDashboard returns all dashboard statistics in one call.
func (s *DashboardService) GetDashboard() (*DashboardData, error) {
	data := &DashboardData{
		AssetsByType:     []AssetTypeCount{},
		CostByDepartment: []DepartmentCost{},
	}

	// Total value of all assets, zero when none exist
	if err := s.db.Model(&models.Asset{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&data.TotalAssetValue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum asset value: %w", err)
	}

	// Count of assets per type, one row per type present
	if err := s.db.Model(&models.Asset{}).
		Select("asset_type, COUNT(id) AS count").
		Group("asset_type").
		Order("asset_type ASC").
		Scan(&data.AssetsByType).Error; err != nil {
		return nil, fmt.Errorf("failed to count assets by type: %w", err)
	}

	// Asset cost summed per department of the assigned user. The inner
	// joins drop departments with no qualifying assets.
	if err := s.db.Model(&models.Department{}).
		Select("departments.id AS department_id, departments.name AS name, SUM(assets.cost) AS total_cost").
		Joins("JOIN users ON users.department_id = departments.id").
		Joins("JOIN assets ON assets.assigned_to_id = users.id").
		Group("departments.id, departments.name").
		Order("departments.name ASC").
		Scan(&data.CostByDepartment).Error; err != nil {
		return nil, fmt.Errorf("failed to sum cost by department: %w", err)
	}

	return data, nil
}
