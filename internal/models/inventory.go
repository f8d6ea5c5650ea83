package models

// ABCClass represents the sales-importance classification of an item
type ABCClass string

const (
	// ABC classes, A being the most sales-critical
	ClassA ABCClass = "A"
	ClassB ABCClass = "B"
	ClassC ABCClass = "C"
)

// InventoryItem represents a stocked item in the restaurant inventory.
// VendorCategoryKey, ReorderQty and IsLowStock are derived on every load
// and recomputed whenever the stock or threshold source data changes.
type InventoryItem struct {
	ItemID       string   `json:"item_id"`
	Name         string   `json:"name"`
	Unit         string   `json:"unit"`
	CurrentStock float64  `json:"current_stock"`
	ReorderPoint float64  `json:"reorder_point"`
	SafetyStock  float64  `json:"safety_stock"`
	ABCCategory  ABCClass `json:"abc_category"`

	// Derived fields
	VendorCategoryKey string  `json:"vendor_category_key"`
	ReorderQty        float64 `json:"reorder_qty"`
	IsLowStock        bool    `json:"is_low_stock"`

	// Set by the upstream inventory source for recently created items
	IsNewlyAdded bool `json:"is_newly_added"`

	// Free-form note attached by the user before submission
	Notes string `json:"notes,omitempty"`
}

// UrgencyThreshold returns the divisor used to rank low-stock items.
// The larger of the two thresholds wins so the ratio reflects the most
// conservative restocking target; never less than 1 to keep division safe.
func (i InventoryItem) UrgencyThreshold() float64 {
	threshold := i.ReorderPoint
	if i.SafetyStock > threshold {
		threshold = i.SafetyStock
	}
	if threshold < 1 {
		threshold = 1
	}
	return threshold
}

// UrgencyRatio returns current stock relative to the restocking threshold.
// Lower values indicate more urgent items.
func (i InventoryItem) UrgencyRatio() float64 {
	return i.CurrentStock / i.UrgencyThreshold()
}
