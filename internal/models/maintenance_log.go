package models

import "time"

// MaintenanceLog records a single repair event for an asset. Logs are
// created through the asset-maintenance action and never edited afterwards.
type MaintenanceLog struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	AssetID      uint64    `gorm:"not null;index" json:"asset_id"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Cost         float64   `gorm:"type:decimal(10,2);not null" json:"cost"`
	DateRepaired time.Time `gorm:"type:date;not null" json:"date_repaired"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Asset Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
}
