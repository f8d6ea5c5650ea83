// Package reorder computes suggested reorder quantities from stock levels
// and restocking thresholds.
package reorder

import "math"

// coerce treats NaN and infinities as 0 so arithmetic stays total over
// whatever numbers the upstream source delivers.
func coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Suggest returns the suggested order quantity for the given stock level:
// the deficit below the reorder point plus the safety-stock buffer, rounded
// half-up to two decimals. Note the safety stock is ordered even when the
// deficit is zero; this mirrors the upstream purchasing behaviour.
func Suggest(currentStock, reorderPoint, safetyStock float64) float64 {
	current := coerce(currentStock)
	point := coerce(reorderPoint)
	safety := coerce(safetyStock)

	deficit := math.Max(0, point-current)
	suggested := deficit + safety

	// The epsilon nudges values sitting on an exact half over the edge
	// before rounding, where binary floats would otherwise truncate.
	return math.Round((suggested+1e-9)*100) / 100
}

// IsLowStock reports whether the stock level sits at or below either
// restocking threshold. A threshold of zero is treated as unset.
func IsLowStock(currentStock, reorderPoint, safetyStock float64) bool {
	current := coerce(currentStock)
	point := coerce(reorderPoint)
	safety := coerce(safetyStock)

	return (point > 0 && current <= point) || (safety > 0 && current <= safety)
}
