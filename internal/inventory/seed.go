package inventory

import "github.com/jinzhu/gorm"

// SeedDefaultData ensures a development database has something to work
// with. Existing rows are never touched.
func SeedDefaultData(db *gorm.DB) {
	var itemCount int64
	db.Model(&ItemRecord{}).Count(&itemCount)
	if itemCount == 0 {
		defaultItems := []ItemRecord{
			{ItemID: "itm-001", Name: "Full Cream Milk", Unit: "l", CurrentStock: 4, ReorderPoint: 20, SafetyStock: 5, Category: "dairy"},
			{ItemID: "itm-002", Name: "Paneer", Unit: "kg", CurrentStock: 2, ReorderPoint: 6, SafetyStock: 2, Category: "dairy"},
			{ItemID: "itm-003", Name: "Chicken Breast", Unit: "kg", CurrentStock: 8, ReorderPoint: 15, SafetyStock: 3, Category: "meat"},
			{ItemID: "itm-004", Name: "Basmati Rice", Unit: "kg", CurrentStock: 45, ReorderPoint: 25, SafetyStock: 10, Category: "grains"},
			{ItemID: "itm-005", Name: "Tomatoes", Unit: "kg", CurrentStock: 6, ReorderPoint: 12, SafetyStock: 4, Category: "vegetables"},
			{ItemID: "itm-006", Name: "Chicken Masala Powder", Unit: "pc", CurrentStock: 3, ReorderPoint: 5, SafetyStock: 2, Category: "spices"},
			{ItemID: "itm-007", Name: "Sunflower Oil", Unit: "l", CurrentStock: 10, ReorderPoint: 8, SafetyStock: 4, Category: "oils", IsNewlyAdded: true},
		}
		for _, item := range defaultItems {
			db.Create(&item)
		}
	}

	var vendorCount int64
	db.Model(&VendorRecord{}).Count(&vendorCount)
	if vendorCount == 0 {
		defaultVendors := []VendorRecord{
			{VendorID: "vnd-001", Name: "City Dairy Supplies", VendorCategory: "Dairy", AverageRating: 4.4, TotalPurchaseOrders: 120, ContactPhone: "+91-9800000001", ContactEmail: "orders@citydairy.example"},
			{VendorID: "vnd-002", Name: "Fresh Cuts Poultry", VendorCategory: "Chicken & Meat", AverageRating: 4.1, TotalPurchaseOrders: 85, ContactPhone: "+91-9800000002", ContactEmail: "sales@freshcuts.example"},
			{VendorID: "vnd-003", Name: "Green Basket Produce", VendorCategory: "Vegetables", AverageRating: 4.6, TotalPurchaseOrders: 210, ContactPhone: "+91-9800000003", ContactEmail: "hello@greenbasket.example"},
			{VendorID: "vnd-004", Name: "Metro Wholesale Mart", VendorCategory: "General Store", AverageRating: 3.9, TotalPurchaseOrders: 340, ContactPhone: "+91-9800000004", ContactEmail: "b2b@metromart.example"},
		}
		for _, vendor := range defaultVendors {
			db.Create(&vendor)
		}
	}

	var abcCount int64
	db.Model(&ABCRecord{}).Count(&abcCount)
	if abcCount == 0 {
		defaultClasses := []ABCRecord{
			{ItemID: "itm-001", Class: "A"},
			{ItemID: "itm-003", Class: "A"},
			{ItemID: "itm-004", Class: "B"},
		}
		for _, class := range defaultClasses {
			db.Create(&class)
		}
	}
}
