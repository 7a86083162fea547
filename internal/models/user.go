package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	IsManager    bool      `gorm:"not null;default:false" json:"is_manager"`
	IsSuperuser  bool      `gorm:"not null;default:false" json:"is_superuser"`
	DepartmentID *uint64   `gorm:"index" json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Assets     []Asset     `gorm:"foreignKey:AssignedToID" json:"-"`
}

// CanManageAssets reports whether the user passes the manager gate.
// Superusers are treated as managers.
func (u *User) CanManageAssets() bool {
	return u.IsManager || u.IsSuperuser
}
