package repository

import (
	"github.com/asset-management-api/internal/models"
	"gorm.io/gorm"
)

// GormDepartmentRepository is a GORM implementation of DepartmentRepository
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// Create creates a new department
func (r *GormDepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// FindByID finds a department by ID
func (r *GormDepartmentRepository) FindByID(id uint64) (*models.Department, error) {
	var department models.Department
	if err := r.db.First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// FindByName finds a department by its unique name
func (r *GormDepartmentRepository) FindByName(name string) (*models.Department, error) {
	var department models.Department
	if err := r.db.Where("name = ?", name).First(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// List lists all departments
func (r *GormDepartmentRepository) List() ([]models.Department, error) {
	var departments []models.Department
	if err := r.db.Order("name ASC").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

// Delete deletes a department. Users referencing it keep existing with a
// cleared department, matching SET NULL semantics.
func (r *GormDepartmentRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("department_id = ?", id).
			Update("department_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Department{}, id).Error
	})
}
