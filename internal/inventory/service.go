// Package inventory loads items and vendors from the database and derives
// the reorder fields (vendor category key, suggested quantity, low-stock
// flag, ABC class) the procurement workflow runs on.
package inventory

import (
	"log"

	"github.com/jinzhu/gorm"

	"quartermaster/internal/models"
	"quartermaster/internal/reorder"
	"quartermaster/internal/taxonomy"
)

// ABCSource looks up the sales-importance class per item. An unreachable
// source is non-fatal: every item degrades to class C.
type ABCSource interface {
	Classes() (map[string]models.ABCClass, error)
}

// Service reads the inventory and vendor tables and derives the
// procurement view of each item on every load.
type Service struct {
	db      *gorm.DB
	deriver *taxonomy.Deriver
	abc     ABCSource
}

// NewService creates the inventory service. abc may be nil.
func NewService(db *gorm.DB, deriver *taxonomy.Deriver, abc ABCSource) *Service {
	if deriver == nil {
		deriver = taxonomy.NewDeriver(nil)
	}
	return &Service{db: db, deriver: deriver, abc: abc}
}

// Migrate creates the inventory tables.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&ItemRecord{}, &VendorRecord{}, &ABCRecord{}).Error
}

// Items loads every inventory item with its derived fields recomputed
// from the current stock and threshold data.
func (s *Service) Items() ([]models.InventoryItem, error) {
	var records []ItemRecord
	if err := s.db.Order("name").Find(&records).Error; err != nil {
		return nil, err
	}

	classes := s.abcClasses()

	items := make([]models.InventoryItem, 0, len(records))
	for _, rec := range records {
		item := models.InventoryItem{
			ItemID:       rec.ItemID,
			Name:         rec.Name,
			Unit:         rec.Unit,
			CurrentStock: rec.CurrentStock,
			ReorderPoint: rec.ReorderPoint,
			SafetyStock:  rec.SafetyStock,
			IsNewlyAdded: rec.IsNewlyAdded,
		}
		item.VendorCategoryKey = s.deriver.DeriveCategoryFromItemName(rec.Category, rec.Name)
		item.ReorderQty = reorder.Suggest(rec.CurrentStock, rec.ReorderPoint, rec.SafetyStock)
		item.IsLowStock = reorder.IsLowStock(rec.CurrentStock, rec.ReorderPoint, rec.SafetyStock)

		item.ABCCategory = models.ClassC
		if class, ok := classes[rec.ItemID]; ok {
			item.ABCCategory = class
		}

		items = append(items, item)
	}
	return items, nil
}

// Vendors loads the vendor list as delivered by the data source.
func (s *Service) Vendors() ([]models.Vendor, error) {
	var records []VendorRecord
	if err := s.db.Order("name").Find(&records).Error; err != nil {
		return nil, err
	}

	vendors := make([]models.Vendor, 0, len(records))
	for _, rec := range records {
		vendors = append(vendors, models.Vendor{
			VendorID:            rec.VendorID,
			Name:                rec.Name,
			VendorCategory:      rec.VendorCategory,
			AverageRating:       rec.AverageRating,
			TotalPurchaseOrders: rec.TotalPurchaseOrders,
			ContactPhone:        rec.ContactPhone,
			ContactEmail:        rec.ContactEmail,
		})
	}
	return vendors, nil
}

// abcClasses reads the classification lookup, degrading to an empty map
// (and therefore class C everywhere) when the source is unavailable.
func (s *Service) abcClasses() map[string]models.ABCClass {
	if s.abc == nil {
		return nil
	}
	classes, err := s.abc.Classes()
	if err != nil {
		log.Printf("inventory: ABC classification source unavailable, defaulting to class C: %v", err)
		return nil
	}
	return classes
}

// TableABCSource serves ABC classes from the local abc_classes table.
type TableABCSource struct {
	db *gorm.DB
}

// NewTableABCSource creates a classification source over db.
func NewTableABCSource(db *gorm.DB) *TableABCSource {
	return &TableABCSource{db: db}
}

// Classes returns the item-id to class lookup. Unknown class letters are
// ignored so a corrupt row cannot poison the map.
func (t *TableABCSource) Classes() (map[string]models.ABCClass, error) {
	var records []ABCRecord
	if err := t.db.Find(&records).Error; err != nil {
		return nil, err
	}

	classes := make(map[string]models.ABCClass, len(records))
	for _, rec := range records {
		switch models.ABCClass(rec.Class) {
		case models.ClassA, models.ClassB, models.ClassC:
			classes[rec.ItemID] = models.ABCClass(rec.Class)
		}
	}
	return classes, nil
}
