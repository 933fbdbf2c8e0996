// Package storage defines the uniform CRUD contract over the fleet schema.
// Two interchangeable backends implement it: an in-process map store and a
// PostgreSQL store. Callers must not be able to tell them apart.
package storage

import (
	"context"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
)

// Store is the single abstraction point between the HTTP layer and
// persistence.
//
// Lookups return fleet.ErrNotFound for unknown ids, never panic. Create
// methods validate their input and assign a fresh unique id; duplicate
// natural keys (user email, taxi license plate, driver/stats taxi id)
// produce a *fleet.ValidationError. Update methods merge partial fields and
// validate only what the patch provides. Delete reports whether a record
// existed.
//
// CreateUser expects Password to already be a bcrypt hash; plaintext never
// reaches the store.
type Store interface {
	GetUser(ctx context.Context, id string) (*fleet.User, error)
	GetUserByEmail(ctx context.Context, email string) (*fleet.User, error)
	CreateUser(ctx context.Context, in fleet.InsertUser) (*fleet.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)

	GetDriver(ctx context.Context, id string) (*fleet.Driver, error)
	GetDriverByTaxiID(ctx context.Context, taxiID string) (*fleet.Driver, error)
	GetAllDrivers(ctx context.Context) ([]fleet.Driver, error)
	CreateDriver(ctx context.Context, in fleet.InsertDriver) (*fleet.Driver, error)
	UpdateDriver(ctx context.Context, id string, patch fleet.DriverPatch) (*fleet.Driver, error)
	DeleteDriver(ctx context.Context, id string) (bool, error)

	GetTaxi(ctx context.Context, id string) (*fleet.Taxi, error)
	GetAllTaxis(ctx context.Context) ([]fleet.Taxi, error)
	GetTaxiWithDriver(ctx context.Context, id string) (*fleet.TaxiWithDriver, error)
	CreateTaxi(ctx context.Context, in fleet.InsertTaxi) (*fleet.Taxi, error)
	UpdateTaxi(ctx context.Context, id string, patch fleet.TaxiPatch) (*fleet.Taxi, error)
	DeleteTaxi(ctx context.Context, id string) (bool, error)

	GetTaxiStatsByTaxiID(ctx context.Context, taxiID string) (*fleet.TaxiStats, error)
	GetAllTaxiStats(ctx context.Context) ([]fleet.TaxiStats, error)
	CreateTaxiStats(ctx context.Context, in fleet.InsertTaxiStats) (*fleet.TaxiStats, error)
	UpdateTaxiStatsByTaxiID(ctx context.Context, taxiID string, patch fleet.TaxiStatsPatch) (*fleet.TaxiStats, error)
	DeleteTaxiStats(ctx context.Context, id string) (bool, error)

	GetRecording(ctx context.Context, id string) (*fleet.Recording, error)
	GetAllRecordings(ctx context.Context) ([]fleet.Recording, error)
	GetRecordingsByTaxiID(ctx context.Context, taxiID string) ([]fleet.Recording, error)
	CreateRecording(ctx context.Context, in fleet.InsertRecording) (*fleet.Recording, error)
	DeleteRecording(ctx context.Context, id string) (bool, error)

	GetAvailableDriver(ctx context.Context, id string) (*fleet.AvailableDriver, error)
	GetAllAvailableDrivers(ctx context.Context) ([]fleet.AvailableDriver, error)
	CreateAvailableDriver(ctx context.Context, in fleet.InsertAvailableDriver) (*fleet.AvailableDriver, error)
	DeleteAvailableDriver(ctx context.Context, id string) (bool, error)

	// Seed inserts the demo fleet if the backing store is empty. Safe to
	// call any number of times, from any number of goroutines.
	Seed(ctx context.Context) error

	// Ping reports backend health.
	Ping(ctx context.Context) error
}
