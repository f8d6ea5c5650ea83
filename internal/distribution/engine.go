// Package distribution routes a multi-item reorder across the preferred
// vendors: a category pass first, then a full broadcast fallback when the
// category pass produced no successful submission at all.
package distribution

import (
	"context"
	"log"

	"github.com/google/uuid"

	"quartermaster/internal/models"
)

// Submitter delivers one purchase-order request to the external
// order-submission endpoint. A transport error and an unsuccessful
// response are equivalent at this layer.
type Submitter interface {
	Submit(ctx context.Context, req models.PurchaseOrderRequest) (models.PurchaseOrderResponse, error)
}

// Publisher receives each submission result as it is recorded, in
// submission order. Used to feed the live progress stream.
type Publisher interface {
	Publish(batchID string, result models.SubmissionResult)
}

// Recorder counts submission and batch outcomes for the metrics endpoint.
type Recorder interface {
	RecordSubmission(success bool)
	RecordBatch(outcome string, itemCount int)
}

// Engine orchestrates one distribution batch at a time. Submissions are
// issued strictly one after another; the sequential loop keeps generated
// purchase-order numbers in a deterministic, auditable order and spares a
// possibly rate-limited submission endpoint.
type Engine struct {
	submitter Submitter
	progress  Publisher
	metrics   Recorder
}

// NewEngine creates an engine. progress and metrics may be nil.
func NewEngine(submitter Submitter, progress Publisher, metrics Recorder) *Engine {
	return &Engine{submitter: submitter, progress: progress, metrics: metrics}
}

// Distribute submits the selected items across the preferred vendors.
// Per-vendor failures are recorded in the summary, not raised; the only
// errors are ConfigurationError (no preferred vendors) and
// TotalSubmissionFailure (no vendor accepted anything in either pass).
// Once started, a batch always runs to completion.
func (e *Engine) Distribute(ctx context.Context, selectedItems []models.InventoryItem, preferredVendors []models.PreferredVendorEntry, meta models.OrderMeta) (models.BatchSummary, error) {
	summary := models.BatchSummary{BatchID: uuid.NewString()}

	if len(preferredVendors) == 0 {
		err := &ConfigurationError{Reason: "no preferred vendors"}
		e.recordBatch("rejected", 0)
		return summary, err
	}

	log.Printf("distribution: batch %s starting, %d items across %d vendors",
		summary.BatchID, len(selectedItems), len(preferredVendors))

	// Category pass: each vendor gets only the items whose derived
	// category matches its own. Vendors with no matching items are
	// skipped entirely.
	byCategory := groupByCategory(selectedItems)
	for _, vendor := range preferredVendors {
		items := byCategory[vendor.NormalizedCategoryKey]
		if len(items) == 0 {
			continue
		}
		e.submitOne(ctx, &summary, vendor, vendor.NormalizedCategoryKey, items, meta)
	}

	// Broadcast fallback: only when the category pass produced zero
	// successes (typically no category overlap existed) does every
	// vendor get the entire selection.
	if summary.Succeeded == 0 {
		log.Printf("distribution: batch %s category pass yielded no success, broadcasting to all %d vendors",
			summary.BatchID, len(preferredVendors))
		for _, vendor := range preferredVendors {
			e.submitOne(ctx, &summary, vendor, "broadcast", selectedItems, meta)
		}
	}

	if summary.Succeeded == 0 {
		e.recordBatch("failed", 0)
		return summary, &TotalSubmissionFailure{Attempts: len(summary.Results)}
	}

	e.recordBatch("completed", summary.TotalItems)
	log.Printf("distribution: batch %s done, %d succeeded, %d failed, %d items placed",
		summary.BatchID, summary.Succeeded, summary.Failed, summary.TotalItems)
	return summary, nil
}

// submitOne issues a single purchase-order request and folds its outcome
// into the summary. Failures are isolated: they never abort the batch.
func (e *Engine) submitOne(ctx context.Context, summary *models.BatchSummary, vendor models.PreferredVendorEntry, category string, items []models.InventoryItem, meta models.OrderMeta) {
	req := models.PurchaseOrderRequest{
		VendorID:              vendor.VendorID,
		SelectedItems:         orderLines(items),
		OrderNotes:            meta.OrderNotes,
		RequestedDeliveryDate: meta.RequestedDeliveryDate,
	}

	result := models.SubmissionResult{
		Vendor:    vendor.Name,
		VendorID:  vendor.VendorID,
		Category:  category,
		ItemCount: len(items),
	}

	resp, err := e.submitter.Submit(ctx, req)
	switch {
	case err != nil:
		result.Error = err.Error()
	case !resp.Success:
		result.Error = resp.Error
	default:
		result.Success = true
		if resp.PurchaseOrder != nil {
			result.PONumber = resp.PurchaseOrder.PONumber
		}
	}

	if result.Success {
		summary.Succeeded++
		summary.TotalItems += result.ItemCount
	} else {
		summary.Failed++
		log.Printf("distribution: submission to vendor %s failed: %s", vendor.VendorID, result.Error)
	}
	summary.Results = append(summary.Results, result)

	if e.metrics != nil {
		e.metrics.RecordSubmission(result.Success)
	}
	if e.progress != nil {
		e.progress.Publish(summary.BatchID, result)
	}
}

func (e *Engine) recordBatch(outcome string, itemCount int) {
	if e.metrics != nil {
		e.metrics.RecordBatch(outcome, itemCount)
	}
}

// groupByCategory buckets items by their derived vendor category key.
func groupByCategory(items []models.InventoryItem) map[string][]models.InventoryItem {
	groups := make(map[string][]models.InventoryItem)
	for _, item := range items {
		groups[item.VendorCategoryKey] = append(groups[item.VendorCategoryKey], item)
	}
	return groups
}

func orderLines(items []models.InventoryItem) []models.OrderLine {
	lines := make([]models.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.OrderLine{
			ItemID:        item.ItemID,
			OrderQuantity: item.ReorderQty,
			Notes:         item.Notes,
		})
	}
	return lines
}
