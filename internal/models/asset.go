package models

import "time"

type AssetType string

const (
	AssetTypeLaptop    AssetType = "LAPTOP"
	AssetTypeMonitor   AssetType = "MONITOR"
	AssetTypePhone     AssetType = "PHONE"
	AssetTypeFurniture AssetType = "FURNITURE"
)

// assetTypeLabels maps the stored enum values to their display names.
var assetTypeLabels = map[AssetType]string{
	AssetTypeLaptop:    "Laptop",
	AssetTypeMonitor:   "Monitor",
	AssetTypePhone:     "Phone",
	AssetTypeFurniture: "Furniture",
}

// Label returns the human-readable name for the asset type.
func (t AssetType) Label() string {
	if label, ok := assetTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

type Asset struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	AssetType    AssetType `gorm:"type:varchar(20);not null" json:"asset_type"`
	Cost         float64   `gorm:"type:decimal(10,2);not null" json:"cost"`
	RepairCost   float64   `gorm:"type:decimal(10,2);not null;default:0" json:"repair_cost"`
	AssignedToID *uint64   `gorm:"index" json:"assigned_to_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	AssignedTo      *User            `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
	MaintenanceLogs []MaintenanceLog `gorm:"foreignKey:AssetID" json:"maintenance_logs,omitempty"`
}
