package models

type Department struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`

	// Relations
	Users []User `gorm:"foreignKey:DepartmentID" json:"users,omitempty"`
}
