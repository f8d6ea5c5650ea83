package inventory

import "time"

// ItemRecord represents the items table, the upstream inventory source.
type ItemRecord struct {
	ItemID       string  `gorm:"primary_key;column:item_id"`
	Name         string  `gorm:"not null"`
	Unit         string  `gorm:"type:varchar(16)"`
	CurrentStock float64 `gorm:"not null;default:0"`
	ReorderPoint float64 `gorm:"not null;default:0"`
	SafetyStock  float64 `gorm:"not null;default:0"`
	Category     string  `gorm:"type:varchar(64)"`
	IsNewlyAdded bool    `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for ItemRecord
func (ItemRecord) TableName() string {
	return "items"
}

// VendorRecord represents the vendors table.
type VendorRecord struct {
	VendorID            string  `gorm:"primary_key;column:vendor_id"`
	Name                string  `gorm:"not null"`
	VendorCategory      string  `gorm:"type:varchar(64)"`
	AverageRating       float64 `gorm:"not null;default:0"`
	TotalPurchaseOrders int     `gorm:"not null;default:0"`
	ContactPhone        string  `gorm:"type:varchar(32)"`
	ContactEmail        string  `gorm:"type:varchar(128)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for VendorRecord
func (VendorRecord) TableName() string {
	return "vendors"
}

// ABCRecord represents the abc_classes table, the local mirror of the
// ABC-classification source.
type ABCRecord struct {
	ItemID string `gorm:"primary_key;column:item_id"`
	Class  string `gorm:"type:varchar(1);not null"`
}

// TableName specifies the table name for ABCRecord
func (ABCRecord) TableName() string {
	return "abc_classes"
}
