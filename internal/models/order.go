package models

// OrderAssignment pairs one vendor with the items routed to it during a
// single distribution attempt. Built per submission, discarded once the
// submission result has been recorded.
type OrderAssignment struct {
	Vendor   PreferredVendorEntry
	Category string
	Items    []InventoryItem
}

// SubmissionResult records the outcome of one purchase-order submission
// to one vendor.
type SubmissionResult struct {
	Vendor    string `json:"vendor"`
	VendorID  string `json:"vendorId"`
	Category  string `json:"category"`
	PONumber  string `json:"poNumber,omitempty"`
	ItemCount int    `json:"itemCount"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// BatchSummary aggregates the per-vendor results of one distribution run.
type BatchSummary struct {
	BatchID    string             `json:"batchId"`
	Results    []SubmissionResult `json:"results"`
	TotalItems int                `json:"totalItems"`
	Succeeded  int                `json:"succeeded"`
	Failed     int                `json:"failed"`
}

// OrderMeta carries the user-supplied context for a distribution run.
type OrderMeta struct {
	OrderNotes            string `json:"orderNotes"`
	RequestedDeliveryDate string `json:"requestedDeliveryDate"`
}

// OrderLine is one item row inside a purchase-order request.
type OrderLine struct {
	ItemID        string  `json:"itemId"`
	OrderQuantity float64 `json:"orderQuantity"`
	Notes         string  `json:"notes"`
}

// PurchaseOrderRequest is the wire shape sent to the order-submission
// endpoint, one request per vendor per distribution attempt.
type PurchaseOrderRequest struct {
	VendorID              string      `json:"vendorId"`
	SelectedItems         []OrderLine `json:"selectedItems"`
	OrderNotes            string      `json:"orderNotes"`
	RequestedDeliveryDate string      `json:"requestedDeliveryDate"`
}

// PurchaseOrder carries the identifier assigned by the submission endpoint.
type PurchaseOrder struct {
	PONumber string `json:"poNumber"`
}

// PurchaseOrderResponse is the wire shape returned by the order-submission
// endpoint.
type PurchaseOrderResponse struct {
	Success       bool           `json:"success"`
	PurchaseOrder *PurchaseOrder `json:"purchaseOrder,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// RankedSuggestion is one entry of a server-supplied urgency ranking.
type RankedSuggestion struct {
	ItemID       string  `json:"item_id"`
	UrgencyScore float64 `json:"urgency_score"`
}
