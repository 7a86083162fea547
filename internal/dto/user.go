package dto

import (
	"github.com/asset-management-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID         uint64         `json:"id"`
	Username   string         `json:"username"`
	IsManager  bool           `json:"is_manager"`
	Department *DepartmentDTO `json:"department,omitempty"`
}

// DepartmentDTO represents a department in API responses
type DepartmentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		IsManager: user.IsManager,
	}

	// Include department if preloaded
	if user.Department != nil {
		dept := ToDepartmentDTO(*user.Department)
		dto.Department = &dept
	}

	return dto
}

// ToDepartmentDTO converts a Department model to DepartmentDTO
func ToDepartmentDTO(department models.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:   department.ID,
		Name: department.Name,
	}
}
