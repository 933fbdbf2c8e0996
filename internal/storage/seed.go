package storage

import (
	"context"
	"fmt"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"

	"golang.org/x/crypto/bcrypt"
)

// Demo credentials the mobile client ships with.
const (
	SeedAdminEmail    = "admin@savezar.com"
	SeedAdminPassword = "password"
	SeedAdminName     = "SaveZar Admin"
)

func seedAdminHash() (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash seed password: %w", err)
	}
	return string(hash), nil
}

// runSeed inserts the demo fleet through the normal Store methods. The
// caller is responsible for the once-guard; this function itself bails out
// when the admin user already exists, so a re-run against a seeded store is
// a no-op.
func runSeed(ctx context.Context, s Store) error {
	if _, err := s.GetUserByEmail(ctx, SeedAdminEmail); err == nil {
		return nil
	}

	hash, err := seedAdminHash()
	if err != nil {
		return err
	}

	if _, err := s.CreateUser(ctx, fleet.InsertUser{
		Email:    SeedAdminEmail,
		Password: hash,
		Name:     SeedAdminName,
	}); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	lat, lng := 6.5244, 3.3792
	location := "Akina Jola St, Victoria Island"
	online := true
	taxi, err := s.CreateTaxi(ctx, fleet.InsertTaxi{
		Name:             "Taxi 1",
		LicensePlate:     "LAG-001-XX",
		CurrentLatitude:  &lat,
		CurrentLongitude: &lng,
		CurrentLocation:  &location,
		IsOnline:         &online,
	})
	if err != nil {
		return fmt.Errorf("seed taxi: %w", err)
	}

	rating := 4.2
	passengers := 235
	photo := "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop&crop=face"
	driver, err := s.CreateDriver(ctx, fleet.InsertDriver{
		Name:                "Tshepo Trust",
		Age:                 36,
		Phone:               "+234-801-234-5678",
		Rating:              &rating,
		AvgPassengersPerDay: &passengers,
		PhotoURL:            &photo,
		TaxiID:              taxi.ID,
	})
	if err != nil {
		return fmt.Errorf("seed driver: %w", err)
	}

	if _, err := s.UpdateTaxi(ctx, taxi.ID, fleet.TaxiPatch{DriverID: &driver.ID}); err != nil {
		return fmt.Errorf("seed taxi driver link: %w", err)
	}

	passengersToday := 140
	distance := 146.5
	earnings := 28500.0
	if _, err := s.CreateTaxiStats(ctx, fleet.InsertTaxiStats{
		TaxiID:           taxi.ID,
		PassengersToday:  &passengersToday,
		DistanceTraveled: &distance,
		TotalEarnings:    &earnings,
	}); err != nil {
		return fmt.Errorf("seed stats: %w", err)
	}

	return nil
}
