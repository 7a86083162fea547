package repository

import (
	"github.com/asset-management-api/internal/database"
	"github.com/asset-management-api/internal/models"
	"github.com/asset-management-api/internal/utils"
	"gorm.io/gorm"
)

// GormAssetRepository is a GORM implementation of AssetRepository
type GormAssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &GormAssetRepository{db: db}
}

// Create creates a new asset
func (r *GormAssetRepository) Create(asset *models.Asset) error {
	return r.db.Create(asset).Error
}

// FindByID finds an asset by ID with optional preloading
func (r *GormAssetRepository) FindByID(id uint64, preload ...string) (*models.Asset, error) {
	var asset models.Asset
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&asset, id).Error; err != nil {
		return nil, err
	}

	return &asset, nil
}

// List retrieves assets joined with their assigned user. Ordering by id
// keeps pages consistent between requests.
func (r *GormAssetRepository) List(params utils.PaginationParams) ([]models.Asset, int64, error) {
	var assets []models.Asset

	var total int64
	if err := r.db.Model(&models.Asset{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Model(&models.Asset{}).
		Joins("AssignedTo").
		Order("assets.id ASC").
		Scopes(database.Paginate(params)).
		Find(&assets).Error; err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}

// ListAll retrieves every asset with its assigned user, unpaginated
func (r *GormAssetRepository) ListAll() ([]models.Asset, error) {
	var assets []models.Asset
	if err := r.db.Model(&models.Asset{}).
		Joins("AssignedTo").
		Order("assets.id ASC").
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// RepairTotals returns the summed maintenance-log cost per asset ID
func (r *GormAssetRepository) RepairTotals(assetIDs []uint64) (map[uint64]float64, error) {
	totals := make(map[uint64]float64, len(assetIDs))
	if len(assetIDs) == 0 {
		return totals, nil
	}

	type row struct {
		AssetID uint64
		Total   float64
	}

	var rows []row
	if err := r.db.Model(&models.MaintenanceLog{}).
		Select("asset_id, SUM(cost) AS total").
		Where("asset_id IN ?", assetIDs).
		Group("asset_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, rw := range rows {
		totals[rw.AssetID] = rw.Total
	}

	return totals, nil
}

// Update updates an asset
func (r *GormAssetRepository) Update(asset *models.Asset) error {
	return r.db.Save(asset).Error
}

// Delete deletes an asset and all of its maintenance logs in a transaction
func (r *GormAssetRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", id).Delete(&models.MaintenanceLog{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Asset{}, id).Error
	})
}

// CreateMaintenanceLog inserts a log and bumps the asset's repair_cost
func (r *GormAssetRepository) CreateMaintenanceLog(log *models.MaintenanceLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(log).Error; err != nil {
			return err
		}

		return tx.Model(&models.Asset{}).
			Where("id = ?", log.AssetID).
			Update("repair_cost", gorm.Expr("repair_cost + ?", log.Cost)).Error
	})
}

// ListMaintenanceLogs lists an asset's logs, most recent repair first
func (r *GormAssetRepository) ListMaintenanceLogs(assetID uint64) ([]models.MaintenanceLog, error) {
	var logs []models.MaintenanceLog
	if err := r.db.Where("asset_id = ?", assetID).
		Order("date_repaired DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
