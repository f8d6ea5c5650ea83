package models

// CanonicalCategory is the closed-taxonomy pair all raw category strings
// resolve to. Key is a slug ("dairy"), Label its display form ("Dairy").
type CanonicalCategory struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Vendor represents a supplier as delivered by the vendor data source.
// VendorCategory is the raw, pre-canonicalization category string.
type Vendor struct {
	VendorID            string  `json:"vendor_id"`
	Name                string  `json:"name"`
	VendorCategory      string  `json:"vendor_category"`
	AverageRating       float64 `json:"average_rating"`
	TotalPurchaseOrders int     `json:"total_purchase_orders"`
	ContactPhone        string  `json:"contact_phone"`
	ContactEmail        string  `json:"contact_email"`
}

// PreferredVendorEntry is a vendor designated for one canonical category.
// The preferred list holds at most one entry per NormalizedCategoryKey;
// adding a vendor for an occupied category replaces the previous entry.
type PreferredVendorEntry struct {
	Vendor
	NormalizedCategoryKey   string `json:"normalizedCategoryKey"`
	NormalizedCategoryLabel string `json:"normalizedCategoryLabel"`
}
