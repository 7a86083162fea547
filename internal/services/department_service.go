package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/asset-management-api/internal/models"
	"github.com/asset-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidDepartmentName = errors.New("department name cannot be empty")
	ErrDepartmentNameTaken   = errors.New("department name already exists")
)

// DepartmentService provides business logic for department operations.
type DepartmentService struct {
	deptRepo repository.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(deptRepo repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		deptRepo: deptRepo,
	}
}

// CreateDepartment creates a new department with a unique name.
func (s *DepartmentService) CreateDepartment(name string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidDepartmentName
	}

	if _, err := s.deptRepo.FindByName(name); err == nil {
		return nil, ErrDepartmentNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check department name: %w", err)
	}

	department := &models.Department{Name: name}
	if err := s.deptRepo.Create(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return department, nil
}

// ListDepartments lists all departments.
func (s *DepartmentService) ListDepartments() ([]models.Department, error) {
	departments, err := s.deptRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

// DeleteDepartment removes a department. Its users survive with a cleared
// department reference.
func (s *DepartmentService) DeleteDepartment(id uint64) error {
	if _, err := s.deptRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to find department: %w", err)
	}

	if err := s.deptRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}

	return nil
}
