// Package service holds the business rules of the command center as
// plain functions over model types. Handlers load rows through the
// repository layer, ask this package what should happen, then write
// the result back. Keeping the rules free of *sql.DB makes them
// testable without a database.
package service

import "math"

// ComputeAmounts derives the tax and total amounts for a quantity of
// tickets at the given unit price and tax percentage. Tax is rounded
// to the nearest minor unit.
func ComputeAmounts(unitPriceCents uint32, taxPercent float64, quantity uint32) (taxCents, totalCents uint32) {
	base := uint64(unitPriceCents) * uint64(quantity)
	tax := uint64(math.Round(float64(base) * taxPercent / 100))
	return uint32(tax), uint32(base + tax)
}

// PriceChange summarizes the delta a transfer causes, for the caller's
// response body. Difference is new minus old and may be negative.
type PriceChange struct {
	OldTotalCents uint32 `json:"oldPrice"`
	NewTotalCents uint32 `json:"newPrice"`
	Difference    int64  `json:"difference"`
}
