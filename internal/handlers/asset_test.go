package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asset-management-api/internal/constants"
	"github.com/asset-management-api/internal/database"
	"github.com/asset-management-api/internal/dto"
	"github.com/asset-management-api/internal/middleware"
	"github.com/asset-management-api/internal/models"
	"github.com/asset-management-api/internal/repository"
	"github.com/asset-management-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// AssetHandlerTestSuite defines the test suite for AssetHandler
type AssetHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *AssetHandler
}

// SetupTest runs before each test
func (suite *AssetHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.Department{},
		&models.User{},
		&models.Asset{},
		&models.MaintenanceLog{},
	)
	suite.Require().NoError(err)

	// Set the test DB as the default database
	database.SetDB(suite.db)

	assetRepo := repository.NewAssetRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	suite.handler = NewAssetHandler(services.NewAssetService(assetRepo, userRepo))

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *AssetHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// newRouter builds a router with the asset routes, authenticated as the
// given user, with the real manager gate and asset loader in the chain.
func (suite *AssetHandlerTestSuite) newRouter(userID uint64) *gin.Engine {
	r := gin.New()

	authStub := func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
	}

	assets := r.Group("/api/assets", authStub)
	assets.GET("", suite.handler.ListAssets)
	assets.POST("", middleware.RequireManager(), suite.handler.CreateAsset)
	assets.GET("/:id", middleware.RequireAsset(), suite.handler.GetAsset)
	assets.PUT("/:id", middleware.RequireManager(), middleware.RequireAsset(), suite.handler.UpdateAsset)
	assets.DELETE("/:id", middleware.RequireManager(), middleware.RequireAsset(), suite.handler.DeleteAsset)
	assets.GET("/:id/maintenance", middleware.RequireAsset(), suite.handler.ListMaintenance)
	assets.POST("/:id/maintenance", middleware.RequireManager(), middleware.RequireAsset(), suite.handler.AddMaintenance)

	return r
}

// Helper functions to create test data

func (suite *AssetHandlerTestSuite) createTestUser(username string, isManager bool) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
		IsManager:    isManager,
	}
	suite.db.Create(user)
	return user
}

func (suite *AssetHandlerTestSuite) createTestAsset(name string, cost float64, assignedTo *models.User) *models.Asset {
	asset := &models.Asset{
		Name:      name,
		AssetType: models.AssetTypeLaptop,
		Cost:      cost,
	}
	if assignedTo != nil {
		asset.AssignedToID = &assignedTo.ID
	}
	suite.db.Create(asset)
	return asset
}

func (suite *AssetHandlerTestSuite) doJSON(r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (suite *AssetHandlerTestSuite) TestCreateAssetAsManager() {
	manager := suite.createTestUser("manager", true)
	r := suite.newRouter(manager.ID)

	w := suite.doJSON(r, http.MethodPost, "/api/assets", map[string]interface{}{
		"name":       "Dell Latitude 5540",
		"asset_type": "LAPTOP",
		"cost":       1249.99,
	})

	suite.Equal(http.StatusCreated, w.Code)

	var response dto.AssetDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Dell Latitude 5540", response.Name)
	suite.Equal(models.AssetTypeLaptop, response.AssetType)
	suite.False(response.CreatedAt.IsZero(), "created_at must be server-assigned")
	suite.False(response.UpdatedAt.IsZero(), "updated_at must be server-assigned")

	var count int64
	suite.db.Model(&models.Asset{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *AssetHandlerTestSuite) TestCreateAssetAsSuperuser() {
	superuser := &models.User{
		Username:     "root",
		PasswordHash: "hashedpassword",
		IsSuperuser:  true,
	}
	suite.db.Create(superuser)
	r := suite.newRouter(superuser.ID)

	w := suite.doJSON(r, http.MethodPost, "/api/assets", map[string]interface{}{
		"name":       "iPhone 15 Pro",
		"asset_type": "PHONE",
		"cost":       999.00,
	})

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *AssetHandlerTestSuite) TestCreateAssetForbiddenForNonManager() {
	user := suite.createTestUser("regular", false)
	r := suite.newRouter(user.ID)

	w := suite.doJSON(r, http.MethodPost, "/api/assets", map[string]interface{}{
		"name":       "Dell Latitude 5540",
		"asset_type": "LAPTOP",
		"cost":       1249.99,
	})

	suite.Equal(http.StatusForbidden, w.Code)

	// No state change
	var count int64
	suite.db.Model(&models.Asset{}).Count(&count)
	suite.Zero(count)
}

func (suite *AssetHandlerTestSuite) TestCreateAssetRejectsNegativeCost() {
	manager := suite.createTestUser("manager", true)
	r := suite.newRouter(manager.ID)

	w := suite.doJSON(r, http.MethodPost, "/api/assets", map[string]interface{}{
		"name":       "Dell Latitude 5540",
		"asset_type": "LAPTOP",
		"cost":       -10.00,
	})

	suite.Equal(http.StatusBadRequest, w.Code)

	var count int64
	suite.db.Model(&models.Asset{}).Count(&count)
	suite.Zero(count)
}

func (suite *AssetHandlerTestSuite) TestCreateAssetRejectsUnknownType() {
	manager := suite.createTestUser("manager", true)
	r := suite.newRouter(manager.ID)

	w := suite.doJSON(r, http.MethodPost, "/api/assets", map[string]interface{}{
		"name":       "Mystery Box",
		"asset_type": "GADGET",
		"cost":       10.00,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AssetHandlerTestSuite) TestCreateAssetRejectsMissingAssignee() {
	manager := suite.createTestUser("manager", true)
	r := suite.newRouter(manager.ID)

	w := suite.doJSON(r, http.MethodPost, "/api/assets", map[string]interface{}{
		"name":           "Dell Latitude 5540",
		"asset_type":     "LAPTOP",
		"cost":           1249.99,
		"assigned_to_id": 9999,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AssetHandlerTestSuite) TestUpdateAsset() {
	manager := suite.createTestUser("manager", true)
	asset := suite.createTestAsset("Old Name", 100.00, nil)
	r := suite.newRouter(manager.ID)

	w := suite.doJSON(r, http.MethodPut, fmt.Sprintf("/api/assets/%d", asset.ID), map[string]interface{}{
		"name":           "New Name",
		"asset_type":     "MONITOR",
		"cost":           250.00,
		"assigned_to_id": manager.ID,
	})

	suite.Equal(http.StatusOK, w.Code)

	var updated models.Asset
	suite.Require().NoError(suite.db.First(&updated, asset.ID).Error)
	suite.Equal("New Name", updated.Name)
	suite.Equal(models.AssetTypeMonitor, updated.AssetType)
	suite.Equal(250.00, updated.Cost)
	suite.Require().NotNil(updated.AssignedToID)
	suite.Equal(manager.ID, *updated.AssignedToID)
}

func (suite *AssetHandlerTestSuite) TestUpdateAssetForbiddenForNonManager() {
	user := suite.createTestUser("regular", false)
	asset := suite.createTestAsset("Old Name", 100.00, nil)
	r := suite.newRouter(user.ID)

	w := suite.doJSON(r, http.MethodPut, fmt.Sprintf("/api/assets/%d", asset.ID), map[string]interface{}{
		"name":       "New Name",
		"asset_type": "MONITOR",
		"cost":       250.00,
	})

	suite.Equal(http.StatusForbidden, w.Code)

	var unchanged models.Asset
	suite.Require().NoError(suite.db.First(&unchanged, asset.ID).Error)
	suite.Equal("Old Name", unchanged.Name)
}

func (suite *AssetHandlerTestSuite) TestUpdateAssetNotFound() {
	manager := suite.createTestUser("manager", true)
	r := suite.newRouter(manager.ID)

	w := suite.doJSON(r, http.MethodPut, "/api/assets/9999", map[string]interface{}{
		"name":       "New Name",
		"asset_type": "MONITOR",
		"cost":       250.00,
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AssetHandlerTestSuite) TestDeleteAssetCascadesLogs() {
	manager := suite.createTestUser("manager", true)
	asset := suite.createTestAsset("Broken Laptop", 1000.00, nil)
	suite.db.Create(&models.MaintenanceLog{AssetID: asset.ID, Description: "Battery", Cost: 50.00})
	suite.db.Create(&models.MaintenanceLog{AssetID: asset.ID, Description: "Screen", Cost: 150.00})

	r := suite.newRouter(manager.ID)
	w := suite.doJSON(r, http.MethodDelete, fmt.Sprintf("/api/assets/%d", asset.ID), nil)

	suite.Equal(http.StatusOK, w.Code)

	var assetCount, logCount int64
	suite.db.Model(&models.Asset{}).Count(&assetCount)
	suite.db.Model(&models.MaintenanceLog{}).Count(&logCount)
	suite.Zero(assetCount)
	suite.Zero(logCount, "deleting an asset must remove its maintenance logs")
}

func (suite *AssetHandlerTestSuite) TestDeleteAssetForbiddenForNonManager() {
	user := suite.createTestUser("regular", false)
	asset := suite.createTestAsset("Laptop", 1000.00, nil)

	r := suite.newRouter(user.ID)
	w := suite.doJSON(r, http.MethodDelete, fmt.Sprintf("/api/assets/%d", asset.ID), nil)

	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.Asset{}).Count(&count)
	suite.Equal(int64(1), count)
}

// TestRepairTotalAccumulates follows an asset from creation through two
// repairs: the list's repair_total goes null -> 50.00 -> 75.00.
func (suite *AssetHandlerTestSuite) TestRepairTotalAccumulates() {
	manager := suite.createTestUser("manager", true)
	r := suite.newRouter(manager.ID)

	w := suite.doJSON(r, http.MethodPost, "/api/assets", map[string]interface{}{
		"name":       "Test Laptop",
		"asset_type": "LAPTOP",
		"cost":       1000.00,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created dto.AssetDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	listTotal := func() *float64 {
		w := suite.doJSON(r, http.MethodGet, "/api/assets", nil)
		suite.Require().Equal(http.StatusOK, w.Code)
		var response dto.AssetListResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
		suite.Require().Len(response.Assets, 1)
		return response.Assets[0].RepairTotal
	}

	suite.Nil(listTotal(), "asset without logs must report a null repair total")

	w = suite.doJSON(r, http.MethodPost, fmt.Sprintf("/api/assets/%d/maintenance", created.ID), map[string]interface{}{
		"description": "Replaced faulty battery",
		"cost":        50.00,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	total := listTotal()
	suite.Require().NotNil(total)
	suite.Equal(50.00, *total)

	w = suite.doJSON(r, http.MethodPost, fmt.Sprintf("/api/assets/%d/maintenance", created.ID), map[string]interface{}{
		"description": "Replaced keyboard",
		"cost":        25.00,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	total = listTotal()
	suite.Require().NotNil(total)
	suite.Equal(75.00, *total)

	// The denormalized repair_cost on the asset keeps pace
	var asset models.Asset
	suite.Require().NoError(suite.db.First(&asset, created.ID).Error)
	suite.Equal(75.00, asset.RepairCost)
}

func (suite *AssetHandlerTestSuite) TestAddMaintenanceForbiddenForNonManager() {
	user := suite.createTestUser("regular", false)
	asset := suite.createTestAsset("Laptop", 1000.00, nil)

	r := suite.newRouter(user.ID)
	w := suite.doJSON(r, http.MethodPost, fmt.Sprintf("/api/assets/%d/maintenance", asset.ID), map[string]interface{}{
		"description": "Battery",
		"cost":        50.00,
	})

	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.MaintenanceLog{}).Count(&count)
	suite.Zero(count)
}

// TestMaintenanceAssetFixedFromPath sends a foreign asset_id in the body;
// the log must still attach to the asset named in the path.
func (suite *AssetHandlerTestSuite) TestMaintenanceAssetFixedFromPath() {
	manager := suite.createTestUser("manager", true)
	target := suite.createTestAsset("Target", 100.00, nil)
	other := suite.createTestAsset("Other", 100.00, nil)

	r := suite.newRouter(manager.ID)
	w := suite.doJSON(r, http.MethodPost, fmt.Sprintf("/api/assets/%d/maintenance", target.ID), map[string]interface{}{
		"description": "Battery",
		"cost":        50.00,
		"asset_id":    other.ID,
	})

	suite.Require().Equal(http.StatusCreated, w.Code)

	var log models.MaintenanceLog
	suite.Require().NoError(suite.db.First(&log).Error)
	suite.Equal(target.ID, log.AssetID)
}

func (suite *AssetHandlerTestSuite) TestListMaintenanceOrdering() {
	manager := suite.createTestUser("manager", true)
	asset := suite.createTestAsset("Laptop", 1000.00, nil)

	r := suite.newRouter(manager.ID)
	for _, m := range []map[string]interface{}{
		{"description": "oldest", "cost": 10.00, "date_repaired": "2025-11-15T00:00:00Z"},
		{"description": "newest", "cost": 20.00, "date_repaired": "2026-02-14T00:00:00Z"},
		{"description": "middle", "cost": 30.00, "date_repaired": "2025-12-02T00:00:00Z"},
	} {
		w := suite.doJSON(r, http.MethodPost, fmt.Sprintf("/api/assets/%d/maintenance", asset.ID), m)
		suite.Require().Equal(http.StatusCreated, w.Code)
	}

	w := suite.doJSON(r, http.MethodGet, fmt.Sprintf("/api/assets/%d/maintenance", asset.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		MaintenanceLogs []dto.MaintenanceLogDTO `json:"maintenance_logs"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.MaintenanceLogs, 3)
	suite.Equal("newest", response.MaintenanceLogs[0].Description)
	suite.Equal("middle", response.MaintenanceLogs[1].Description)
	suite.Equal("oldest", response.MaintenanceLogs[2].Description)
}

func (suite *AssetHandlerTestSuite) TestListAssetsPagination() {
	user := suite.createTestUser("viewer", false)
	for i := 1; i <= 7; i++ {
		suite.createTestAsset(fmt.Sprintf("Asset %d", i), float64(i)*100, nil)
	}

	r := suite.newRouter(user.ID)

	w := suite.doJSON(r, http.MethodGet, "/api/assets", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var page1 dto.AssetListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page1))
	suite.Len(page1.Assets, 5, "default page size is five")
	suite.Equal(int64(7), page1.TotalCount)
	suite.Equal(2, page1.TotalPages)

	w = suite.doJSON(r, http.MethodGet, "/api/assets?page=2", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var page2 dto.AssetListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page2))
	suite.Len(page2.Assets, 2)

	// Stable id ordering across pages
	suite.Equal("Asset 1", page1.Assets[0].Name)
	suite.Equal("Asset 5", page1.Assets[4].Name)
	suite.Equal("Asset 6", page2.Assets[0].Name)
	suite.Equal("Asset 7", page2.Assets[1].Name)
}

func (suite *AssetHandlerTestSuite) TestListAssetsJoinsAssignedUser() {
	user := suite.createTestUser("alice", false)
	suite.createTestAsset("Assigned Laptop", 1000.00, user)
	suite.createTestAsset("Spare Laptop", 800.00, nil)

	r := suite.newRouter(user.ID)
	w := suite.doJSON(r, http.MethodGet, "/api/assets", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response dto.AssetListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Assets, 2)

	suite.Require().NotNil(response.Assets[0].AssignedTo)
	suite.Equal("alice", response.Assets[0].AssignedTo.Username)
	suite.Nil(response.Assets[1].AssignedTo)
}

func (suite *AssetHandlerTestSuite) TestGetAssetNotFound() {
	user := suite.createTestUser("viewer", false)
	r := suite.newRouter(user.ID)

	w := suite.doJSON(r, http.MethodGet, "/api/assets/9999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestAssetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssetHandlerTestSuite))
}
