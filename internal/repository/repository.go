package repository

import (
	"github.com/asset-management-api/internal/models"
	"github.com/asset-management-api/internal/utils"
)

// AssetRepository defines the interface for asset data access
type AssetRepository interface {
	// Create creates a new asset
	Create(asset *models.Asset) error

	// FindByID finds an asset by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Asset, error)

	// List retrieves assets with their assigned user joined in a single
	// query, in stable id order, with pagination
	List(params utils.PaginationParams) ([]models.Asset, int64, error)

	// ListAll retrieves every asset with its assigned user, unpaginated
	ListAll() ([]models.Asset, error)

	// RepairTotals returns the summed maintenance-log cost per asset ID.
	// Assets without logs have no entry in the result.
	RepairTotals(assetIDs []uint64) (map[uint64]float64, error)

	// Update updates an asset
	Update(asset *models.Asset) error

	// Delete deletes an asset and cascades to its maintenance logs
	Delete(id uint64) error

	// CreateMaintenanceLog inserts a log and bumps the asset's accumulated
	// repair cost within one transaction
	CreateMaintenanceLog(log *models.MaintenanceLog) error

	// ListMaintenanceLogs lists an asset's logs, most recent repair first
	ListMaintenanceLogs(assetID uint64) ([]models.MaintenanceLog, error)
}

// DepartmentRepository defines the interface for department data access
type DepartmentRepository interface {
	// Create creates a new department
	Create(department *models.Department) error

	// FindByID finds a department by ID
	FindByID(id uint64) (*models.Department, error)

	// FindByName finds a department by its unique name
	FindByName(name string) (*models.Department, error)

	// List lists all departments
	List() ([]models.Department, error)

	// Delete deletes a department, clearing the department reference of its
	// users rather than cascading
	Delete(id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// List lists all users with their department
	List() ([]models.User, error)

	// Delete deletes a user, clearing the assignment of their assets rather
	// than cascading
	Delete(id uint64) error
}
