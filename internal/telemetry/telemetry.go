// Package telemetry feeds live taxi performance data into the stats
// snapshots. Producers (vehicle trackers, or the dev simulator) emit
// deltas; Apply folds them into the current snapshot through the normal
// storage patch path.
package telemetry

import (
	"context"
	"fmt"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/storage"
)

// Report is one telemetry message: deltas against the taxi's current
// snapshot.
type Report struct {
	TaxiID          string  `json:"taxiId"`
	PassengersDelta int     `json:"passengersDelta"`
	DistanceDelta   float64 `json:"distanceDelta"`
	EfficiencyDelta float64 `json:"efficiencyDelta"`
	FuelDelta       float64 `json:"fuelDelta"`
	EarningsDelta   float64 `json:"earningsDelta"`
}

// Apply folds a report into the taxi's snapshot. Resulting values clamp at
// zero; route efficiency additionally clamps at 100. A report for a taxi
// without a snapshot is dropped with fleet.ErrNotFound.
func Apply(ctx context.Context, store storage.Store, r Report) (*fleet.TaxiStats, error) {
	if r.TaxiID == "" {
		return nil, fleet.Invalid("taxiId", "cannot be empty")
	}

	current, err := store.GetTaxiStatsByTaxiID(ctx, r.TaxiID)
	if err != nil {
		return nil, err
	}

	passengers := clampInt(current.PassengersToday + r.PassengersDelta)
	distance := clamp(current.DistanceTraveled + r.DistanceDelta)
	efficiency := clamp(current.RouteEfficiency + r.EfficiencyDelta)
	if efficiency > 100 {
		efficiency = 100
	}
	fuel := clamp(current.FuelConsumption + r.FuelDelta)
	earnings := clamp(current.TotalEarnings + r.EarningsDelta)

	updated, err := store.UpdateTaxiStatsByTaxiID(ctx, r.TaxiID, fleet.TaxiStatsPatch{
		PassengersToday:  &passengers,
		DistanceTraveled: &distance,
		RouteEfficiency:  &efficiency,
		FuelConsumption:  &fuel,
		TotalEarnings:    &earnings,
	})
	if err != nil {
		return nil, fmt.Errorf("apply telemetry: %w", err)
	}
	return updated, nil
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
