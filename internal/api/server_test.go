package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quartermaster/internal/distribution"
	"quartermaster/internal/inventory"
	"quartermaster/internal/models"
	"quartermaster/internal/onboarding"
	"quartermaster/internal/storage"
	"quartermaster/internal/vendors"
)

// okSubmitter accepts every purchase order with a sequential PO number.
type okSubmitter struct{ seq int }

func (s *okSubmitter) Submit(ctx context.Context, req models.PurchaseOrderRequest) (models.PurchaseOrderResponse, error) {
	s.seq++
	return models.PurchaseOrderResponse{
		Success:       true,
		PurchaseOrder: &models.PurchaseOrder{PONumber: fmt.Sprintf("PO-%d", s.seq)},
	}, nil
}

func newTestAPI(t *testing.T, seedPrefs bool) *ProcurementAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "api_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	invService := inventory.NewService(db, nil, nil)
	require.NoError(t, invService.Migrate())

	require.NoError(t, db.Create(&inventory.ItemRecord{
		ItemID: "itm-1", Name: "Full Cream Milk", Unit: "l",
		CurrentStock: 2, ReorderPoint: 10, SafetyStock: 2, Category: "dairy",
	}).Error)
	require.NoError(t, db.Create(&inventory.ItemRecord{
		ItemID: "itm-2", Name: "Chicken Breast", Unit: "kg",
		CurrentStock: 3, ReorderPoint: 8, SafetyStock: 2, Category: "meat",
	}).Error)
	require.NoError(t, db.Create(&inventory.ItemRecord{
		ItemID: "itm-3", Name: "Basmati Rice", Unit: "kg",
		CurrentStock: 50, ReorderPoint: 20, SafetyStock: 5, Category: "grains",
	}).Error)

	require.NoError(t, db.Create(&inventory.VendorRecord{
		VendorID: "vnd-1", Name: "City Dairy", VendorCategory: "Dairy",
	}).Error)
	require.NoError(t, db.Create(&inventory.VendorRecord{
		VendorID: "vnd-2", Name: "Fresh Cuts", VendorCategory: "Meat",
	}).Error)

	kv := storage.NewMemoryKV()
	prefs := vendors.NewPreferenceStore(kv)
	if seedPrefs {
		bulk, err := invService.Vendors()
		require.NoError(t, err)
		prefs.SeedFromVendors(bulk)
	}

	progress := NewProgressHub()
	engine := distribution.NewEngine(&okSubmitter{}, progress, nil)

	return NewProcurementAPI(Options{
		Inventory: invService,
		Prefs:     prefs,
		Resolver:  onboarding.NewResolver(kv),
		Engine:    engine,
		Progress:  progress,
	})
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestAPI(t, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	server.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetInventoryOverview(t *testing.T) {
	server := newTestAPI(t, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/inventory/overview", nil)
	server.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Phase string                 `json:"phase"`
		Items []models.InventoryItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	// A fresh store means first use: all-items phase, full inventory.
	assert.Equal(t, string(onboarding.PhaseAllItems), response.Phase)
	assert.Len(t, response.Items, 3)
}

func TestGetReorderSuggestions(t *testing.T) {
	server := newTestAPI(t, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/inventory/suggestions", nil)
	server.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var items []models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))

	// Rice is well stocked and must not appear.
	require.Len(t, items, 2)
	for _, item := range items {
		assert.True(t, item.IsLowStock)
		assert.Greater(t, item.ReorderQty, 0.0)
	}
}

func TestAddPreferredVendor(t *testing.T) {
	server := newTestAPI(t, false)

	body, _ := json.Marshal(map[string]string{"vendor_id": "vnd-1"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/vendors/preferred", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	server.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var list []models.PreferredVendorEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "dairy", list[0].NormalizedCategoryKey)
}

func TestAddPreferredVendorUnknownID(t *testing.T) {
	server := newTestAPI(t, false)

	body, _ := json.Marshal(map[string]string{"vendor_id": "nope"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/vendors/preferred", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	server.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDistributeOrder(t *testing.T) {
	server := newTestAPI(t, true)

	payload := map[string]interface{}{
		"selectedItems": []map[string]interface{}{
			{"itemId": "itm-1"},
			{"itemId": "itm-2", "orderQuantity": 12.5, "notes": "boneless"},
		},
		"orderNotes":            "weekly restock",
		"requestedDeliveryDate": "2025-03-05",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/orders/distribute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	server.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var summary models.BatchSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	require.Len(t, summary.Results, 2)
	for _, result := range summary.Results {
		assert.NotEmpty(t, result.PONumber)
	}
}

func TestDistributeOrderWithoutPreferredVendors(t *testing.T) {
	server := newTestAPI(t, false)

	payload := map[string]interface{}{
		"selectedItems": []map[string]interface{}{{"itemId": "itm-1"}},
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/orders/distribute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	server.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDistributeOrderUnknownItem(t *testing.T) {
	server := newTestAPI(t, true)

	payload := map[string]interface{}{
		"selectedItems": []map[string]interface{}{{"itemId": "ghost"}},
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/orders/distribute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	server.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/secure", AuthMiddleware("secret"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/secure", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
