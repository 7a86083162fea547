package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/asset-management-api/internal/models"
	"github.com/asset-management-api/internal/repository"
	"github.com/asset-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrAssetNotFound        = errors.New("asset not found")
	ErrAssignedUserNotFound = errors.New("assigned user not found")
	ErrNegativeCost         = errors.New("cost cannot be negative")
)

// AssetService provides business logic for asset and maintenance operations.
type AssetService struct {
	assetRepo repository.AssetRepository
	userRepo  repository.UserRepository
}

// NewAssetService creates a new AssetService.
func NewAssetService(assetRepo repository.AssetRepository, userRepo repository.UserRepository) *AssetService {
	return &AssetService{
		assetRepo: assetRepo,
		userRepo:  userRepo,
	}
}

// AssetInput represents the writable fields of an asset.
type AssetInput struct {
	Name         string
	AssetType    models.AssetType
	Cost         float64
	AssignedToID *uint64
}

func (s *AssetService) validateInput(input AssetInput) error {
	if input.Cost < 0 {
		return ErrNegativeCost
	}
	if input.AssignedToID != nil {
		if _, err := s.userRepo.FindByID(*input.AssignedToID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignedUserNotFound
			}
			return fmt.Errorf("failed to check assigned user: %w", err)
		}
	}
	return nil
}

// CreateAsset persists a new asset.
func (s *AssetService) CreateAsset(input AssetInput) (*models.Asset, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	asset := &models.Asset{
		Name:         input.Name,
		AssetType:    input.AssetType,
		Cost:         input.Cost,
		AssignedToID: input.AssignedToID,
	}

	if err := s.assetRepo.Create(asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return asset, nil
}

// UpdateAsset modifies an existing asset by identity. The updated_at
// timestamp refreshes on save.
func (s *AssetService) UpdateAsset(id uint64, input AssetInput) (*models.Asset, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	asset, err := s.assetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	asset.Name = input.Name
	asset.AssetType = input.AssetType
	asset.Cost = input.Cost
	asset.AssignedToID = input.AssignedToID

	if err := s.assetRepo.Update(asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return asset, nil
}

// DeleteAsset removes an asset and cascades to its maintenance logs.
func (s *AssetService) DeleteAsset(id uint64) error {
	if _, err := s.assetRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssetNotFound
		}
		return fmt.Errorf("failed to find asset: %w", err)
	}

	if err := s.assetRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}

// GetAsset retrieves an asset with its assigned user and maintenance logs.
func (s *AssetService) GetAsset(id uint64) (*models.Asset, error) {
	asset, err := s.assetRepo.FindByID(id, "AssignedTo", "MaintenanceLogs")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return asset, nil
}

// ListAssets returns a page of assets with their assigned user, plus the
// per-asset maintenance cost totals for that page.
func (s *AssetService) ListAssets(params utils.PaginationParams) ([]models.Asset, map[uint64]float64, int64, error) {
	assets, total, err := s.assetRepo.List(params)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	assetIDs := make([]uint64, len(assets))
	for i, asset := range assets {
		assetIDs[i] = asset.ID
	}

	repairTotals, err := s.assetRepo.RepairTotals(assetIDs)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to sum repair costs: %w", err)
	}

	return assets, repairTotals, total, nil
}

// ListAllAssets returns every asset with its assigned user, for the export.
func (s *AssetService) ListAllAssets() ([]models.Asset, error) {
	assets, err := s.assetRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// MaintenanceInput represents the writable fields of a maintenance log. The
// target asset always comes from the URL path, never from the caller.
type MaintenanceInput struct {
	Description  string
	Cost         float64
	DateRepaired *time.Time
}

// AddMaintenanceLog records a repair event for an asset and accumulates the
// cost on the asset's repair total.
func (s *AssetService) AddMaintenanceLog(assetID uint64, input MaintenanceInput) (*models.MaintenanceLog, error) {
	if input.Cost < 0 {
		return nil, ErrNegativeCost
	}

	if _, err := s.assetRepo.FindByID(assetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	dateRepaired := time.Now()
	if input.DateRepaired != nil {
		dateRepaired = *input.DateRepaired
	}

	log := &models.MaintenanceLog{
		AssetID:      assetID,
		Description:  input.Description,
		Cost:         input.Cost,
		DateRepaired: dateRepaired,
	}

	if err := s.assetRepo.CreateMaintenanceLog(log); err != nil {
		return nil, fmt.Errorf("failed to create maintenance log: %w", err)
	}

	return log, nil
}

// ListMaintenanceLogs lists an asset's repair history, most recent first.
func (s *AssetService) ListMaintenanceLogs(assetID uint64) ([]models.MaintenanceLog, error) {
	if _, err := s.assetRepo.FindByID(assetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	logs, err := s.assetRepo.ListMaintenanceLogs(assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance logs: %w", err)
	}

	return logs, nil
}
