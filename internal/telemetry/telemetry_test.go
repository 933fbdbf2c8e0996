package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/storage"
)

func seedStats(t *testing.T, s storage.Store) *fleet.TaxiStats {
	t.Helper()
	ctx := context.Background()

	taxi, err := s.CreateTaxi(ctx, fleet.InsertTaxi{Name: "Taxi 1", LicensePlate: "LAG-001-XX"})
	if err != nil {
		t.Fatalf("create taxi: %v", err)
	}

	passengers := 10
	distance := 100.0
	efficiency := 90.0
	fuel := 20.0
	earnings := 5000.0
	st, err := s.CreateTaxiStats(ctx, fleet.InsertTaxiStats{
		TaxiID:           taxi.ID,
		PassengersToday:  &passengers,
		DistanceTraveled: &distance,
		RouteEfficiency:  &efficiency,
		FuelConsumption:  &fuel,
		TotalEarnings:    &earnings,
	})
	if err != nil {
		t.Fatalf("create stats: %v", err)
	}
	return st
}

func TestApplyAddsDeltas(t *testing.T) {
	store := storage.NewMemoryStore()
	st := seedStats(t, store)

	got, err := Apply(context.Background(), store, Report{
		TaxiID:          st.TaxiID,
		PassengersDelta: 3,
		DistanceDelta:   12.5,
		EfficiencyDelta: -5,
		FuelDelta:       1.5,
		EarningsDelta:   750,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got.PassengersToday != 13 {
		t.Fatalf("passengersToday = %d, want 13", got.PassengersToday)
	}
	if got.DistanceTraveled != 112.5 {
		t.Fatalf("distanceTraveled = %v, want 112.5", got.DistanceTraveled)
	}
	if got.RouteEfficiency != 85 {
		t.Fatalf("routeEfficiency = %v, want 85", got.RouteEfficiency)
	}
	if got.TotalEarnings != 5750 {
		t.Fatalf("totalEarnings = %v, want 5750", got.TotalEarnings)
	}
}

func TestApplyClampsAtZero(t *testing.T) {
	store := storage.NewMemoryStore()
	st := seedStats(t, store)

	got, err := Apply(context.Background(), store, Report{
		TaxiID:          st.TaxiID,
		PassengersDelta: -100,
		DistanceDelta:   -1000,
		FuelDelta:       -50,
		EarningsDelta:   -99999,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.PassengersToday != 0 || got.DistanceTraveled != 0 || got.FuelConsumption != 0 || got.TotalEarnings != 0 {
		t.Fatalf("values not clamped at zero: %+v", got)
	}
}

func TestApplyClampsEfficiencyAt100(t *testing.T) {
	store := storage.NewMemoryStore()
	st := seedStats(t, store)

	got, err := Apply(context.Background(), store, Report{
		TaxiID:          st.TaxiID,
		EfficiencyDelta: 50,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.RouteEfficiency != 100 {
		t.Fatalf("routeEfficiency = %v, want 100", got.RouteEfficiency)
	}
}

func TestApplyUnknownTaxi(t *testing.T) {
	store := storage.NewMemoryStore()

	_, err := Apply(context.Background(), store, Report{TaxiID: "nope"})
	if !errors.Is(err, fleet.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyEmptyTaxiID(t *testing.T) {
	store := storage.NewMemoryStore()

	_, err := Apply(context.Background(), store, Report{})
	var ve *fleet.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
