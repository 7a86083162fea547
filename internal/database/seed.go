package database

import (
	"log"
	"time"

	"github.com/asset-management-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder populates the database with demo departments, users, assets and
// maintenance logs. It is idempotent: a database that already contains
// assets is left untouched.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes the demo data seeder
func (s *Seeder) Run() error {
	log.Println("Running demo data seeder...")

	var count int64
	if err := s.db.Model(&models.Asset{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Demo data already present, skipping seeder")
		return nil
	}

	departments, err := s.seedDepartments()
	if err != nil {
		return err
	}

	users, err := s.seedUsers(departments)
	if err != nil {
		return err
	}

	assets, err := s.seedAssets(users)
	if err != nil {
		return err
	}

	if err := s.seedMaintenanceLogs(assets); err != nil {
		return err
	}

	log.Println("Demo data seeding completed")
	return nil
}

func (s *Seeder) seedDepartments() (map[string]*models.Department, error) {
	names := []string{"IT", "HR", "Sales", "Finance", "Operations"}
	departments := make(map[string]*models.Department, len(names))

	for _, name := range names {
		dept := &models.Department{Name: name}
		if err := s.db.Where(models.Department{Name: name}).FirstOrCreate(dept).Error; err != nil {
			return nil, err
		}
		departments[name] = dept
	}

	return departments, nil
}

func (s *Seeder) seedUsers(departments map[string]*models.Department) (map[string]*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pass1234"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	seedUsers := []struct {
		username   string
		department string
		isManager  bool
	}{
		{"alice", "IT", true},
		{"bob", "HR", false},
		{"carol", "Sales", false},
		{"dave", "Finance", true},
		{"eve", "Operations", false},
	}

	users := make(map[string]*models.User, len(seedUsers))
	for _, su := range seedUsers {
		user := &models.User{
			Username:     su.username,
			PasswordHash: string(hash),
			IsManager:    su.isManager,
			DepartmentID: &departments[su.department].ID,
		}
		if err := s.db.Where(models.User{Username: su.username}).FirstOrCreate(user).Error; err != nil {
			return nil, err
		}
		users[su.username] = user
	}

	return users, nil
}

func (s *Seeder) seedAssets(users map[string]*models.User) (map[string]*models.Asset, error) {
	seedAssets := []struct {
		name       string
		assetType  models.AssetType
		cost       float64
		assignedTo string
	}{
		{"Dell Latitude 5540", models.AssetTypeLaptop, 1249.99, "alice"},
		{`MacBook Pro 14"`, models.AssetTypeLaptop, 2399.00, "carol"},
		{"Lenovo ThinkPad X1", models.AssetTypeLaptop, 1599.00, "dave"},
		{"HP EliteBook 840", models.AssetTypeLaptop, 1349.50, "bob"},
		{`Dell UltraSharp 27"`, models.AssetTypeMonitor, 549.99, "alice"},
		{`LG 34" Ultrawide`, models.AssetTypeMonitor, 699.00, "carol"},
		{`Samsung 24" FHD`, models.AssetTypeMonitor, 229.99, "eve"},
		{"iPhone 15 Pro", models.AssetTypePhone, 999.00, "dave"},
		{"Samsung Galaxy S24", models.AssetTypePhone, 849.99, "bob"},
		{"Google Pixel 8", models.AssetTypePhone, 699.00, "alice"},
		{"Standing Desk - Large", models.AssetTypeFurniture, 789.00, "eve"},
		{"Ergonomic Office Chair", models.AssetTypeFurniture, 549.00, "carol"},
		{"Conference Table 8-Seat", models.AssetTypeFurniture, 1200.00, ""},
		{`Dell Monitor 22"`, models.AssetTypeMonitor, 189.99, "bob"},
		{"HP ProBook 450", models.AssetTypeLaptop, 1099.00, "eve"},
	}

	assets := make(map[string]*models.Asset, len(seedAssets))
	for _, sa := range seedAssets {
		asset := &models.Asset{
			Name:      sa.name,
			AssetType: sa.assetType,
			Cost:      sa.cost,
		}
		if sa.assignedTo != "" {
			asset.AssignedToID = &users[sa.assignedTo].ID
		}
		if err := s.db.Create(asset).Error; err != nil {
			return nil, err
		}
		assets[sa.name] = asset
	}

	return assets, nil
}

func (s *Seeder) seedMaintenanceLogs(assets map[string]*models.Asset) error {
	seedLogs := []struct {
		asset       string
		description string
		cost        float64
		date        string
	}{
		{"Dell Latitude 5540", "Replaced faulty battery", 129.99, "2025-11-15"},
		{`MacBook Pro 14"`, "Screen replacement after drop damage", 549.00, "2025-12-02"},
		{"Samsung Galaxy S24", "Cracked screen repair", 249.99, "2026-01-10"},
		{"Standing Desk - Large", "Motor replacement for height adjustment", 175.00, "2026-01-25"},
		{"Dell Latitude 5540", "SSD upgrade from 256 GB to 1 TB", 89.99, "2026-02-14"},
	}

	for _, sl := range seedLogs {
		date, err := time.Parse("2006-01-02", sl.date)
		if err != nil {
			return err
		}

		asset := assets[sl.asset]
		logEntry := &models.MaintenanceLog{
			AssetID:      asset.ID,
			Description:  sl.description,
			Cost:         sl.cost,
			DateRepaired: date,
		}
		if err := s.db.Create(logEntry).Error; err != nil {
			return err
		}

		asset.RepairCost += sl.cost
		if err := s.db.Model(asset).Update("repair_cost", asset.RepairCost).Error; err != nil {
			return err
		}
	}

	return nil
}
