package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is the relational backend. Uniqueness of natural keys is
// enforced by the schema's unique constraints; violations surface as
// *fleet.ValidationError so both backends fail identically.
type PostgresStore struct {
	pool *pgxpool.Pool

	seedOnce sync.Once
	seedErr  error
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Seed runs the demo-fleet insert in a single transaction keyed on the
// admin user's absence. The unique email constraint makes concurrent seeds
// from multiple processes collapse to one.
func (s *PostgresStore) Seed(ctx context.Context) error {
	s.seedOnce.Do(func() {
		s.seedErr = s.seed(ctx)
	})
	return s.seedErr
}

func (s *PostgresStore) seed(ctx context.Context) error {
	hash, err := seedAdminHash()
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var userID string
	err = tx.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`, utils.NewUUID(), SeedAdminEmail, hash, SeedAdminName).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		// admin already present, another process seeded before us
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	taxiID := utils.NewUUID()
	_, err = tx.Exec(ctx, `
		INSERT INTO taxis (id, name, license_plate, current_latitude, current_longitude, current_location, is_online)
		VALUES ($1, 'Taxi 1', 'LAG-001-XX', 6.5244, 3.3792, 'Akina Jola St, Victoria Island', true)
	`, taxiID)
	if err != nil {
		return fmt.Errorf("seed taxi: %w", err)
	}

	driverID := utils.NewUUID()
	_, err = tx.Exec(ctx, `
		INSERT INTO drivers (id, name, age, phone, rating, avg_passengers_per_day, photo_url, taxi_id, is_active)
		VALUES ($1, 'Tshepo Trust', 36, '+234-801-234-5678', 4.2, 235,
		        'https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop&crop=face',
		        $2, true)
	`, driverID, taxiID)
	if err != nil {
		return fmt.Errorf("seed driver: %w", err)
	}

	if _, err = tx.Exec(ctx, `UPDATE taxis SET driver_id = $1 WHERE id = $2`, driverID, taxiID); err != nil {
		return fmt.Errorf("seed taxi driver link: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO taxi_stats (id, taxi_id, passengers_today, distance_traveled, total_earnings)
		VALUES ($1, $2, 140, 146.5, 28500)
	`, utils.NewUUID(), taxiID)
	if err != nil {
		return fmt.Errorf("seed stats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

// mapPgError converts unique violations into the validation errors the
// memory backend produces, so callers see one behavior.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return fleet.Invalid("email", "already registered")
		case strings.Contains(pgErr.ConstraintName, "license_plate"):
			return fleet.Invalid("licensePlate", "already registered")
		case strings.Contains(pgErr.ConstraintName, "drivers") && strings.Contains(pgErr.ConstraintName, "taxi_id"):
			return fleet.Invalid("taxiId", "already assigned to another driver")
		case strings.Contains(pgErr.ConstraintName, "taxi_stats"):
			return fleet.Invalid("taxiId", "stats snapshot already exists for this taxi")
		}
	}
	return err
}

// --- users ---

const userColumns = `id, email, password_hash, name, created_at`

func scanUser(row pgx.Row) (*fleet.User, error) {
	var u fleet.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fleet.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*fleet.User, error) {
	return scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*fleet.User, error) {
	return scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (s *PostgresStore) CreateUser(ctx context.Context, in fleet.InsertUser) (*fleet.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, name)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		utils.NewUUID(), in.Email, in.Password, in.Name)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapPgError(err)
	}
	return u, nil
}

func (s *PostgresStore) DeleteUser(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// --- drivers ---

const driverColumns = `id, name, age, phone, rating, avg_passengers_per_day, photo_url, taxi_id, is_active`

func scanDriver(row pgx.Row) (*fleet.Driver, error) {
	var d fleet.Driver
	err := row.Scan(&d.ID, &d.Name, &d.Age, &d.Phone, &d.Rating, &d.AvgPassengersPerDay, &d.PhotoURL, &d.TaxiID, &d.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fleet.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan driver: %w", err)
	}
	return &d, nil
}

func (s *PostgresStore) GetDriver(ctx context.Context, id string) (*fleet.Driver, error) {
	return scanDriver(s.pool.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1`, id))
}

func (s *PostgresStore) GetDriverByTaxiID(ctx context.Context, taxiID string) (*fleet.Driver, error) {
	return scanDriver(s.pool.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE taxi_id = $1`, taxiID))
}

func (s *PostgresStore) GetAllDrivers(ctx context.Context) ([]fleet.Driver, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+driverColumns+` FROM drivers`)
	if err != nil {
		return nil, fmt.Errorf("query drivers: %w", err)
	}
	defer rows.Close()

	out := make([]fleet.Driver, 0)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateDriver(ctx context.Context, in fleet.InsertDriver) (*fleet.Driver, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rating := 0.0
	if in.Rating != nil {
		rating = *in.Rating
	}
	avg := 0
	if in.AvgPassengersPerDay != nil {
		avg = *in.AvgPassengersPerDay
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO drivers (id, name, age, phone, rating, avg_passengers_per_day, photo_url, taxi_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+driverColumns,
		utils.NewUUID(), in.Name, in.Age, in.Phone, rating, avg, in.PhotoURL, in.TaxiID, active)
	d, err := scanDriver(row)
	if err != nil {
		return nil, mapPgError(err)
	}
	return d, nil
}

func (s *PostgresStore) UpdateDriver(ctx context.Context, id string, patch fleet.DriverPatch) (*fleet.Driver, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	b := newPatchBuilder()
	b.set("name", patch.Name)
	b.set("age", patch.Age)
	b.set("phone", patch.Phone)
	b.set("rating", patch.Rating)
	b.set("avg_passengers_per_day", patch.AvgPassengersPerDay)
	b.set("photo_url", patch.PhotoURL)
	b.set("taxi_id", patch.TaxiID)
	b.set("is_active", patch.IsActive)

	if b.empty() {
		return s.GetDriver(ctx, id)
	}

	row := s.pool.QueryRow(ctx, b.updateSQL("drivers", driverColumns, id), b.args...)
	d, err := scanDriver(row)
	if err != nil {
		return nil, mapPgError(err)
	}
	return d, nil
}

func (s *PostgresStore) DeleteDriver(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete driver: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// --- taxis ---

const taxiColumns = `id, name, license_plate, driver_id, current_latitude, current_longitude, current_location, is_online`

func scanTaxi(row pgx.Row) (*fleet.Taxi, error) {
	var t fleet.Taxi
	err := row.Scan(&t.ID, &t.Name, &t.LicensePlate, &t.DriverID, &t.CurrentLatitude, &t.CurrentLongitude, &t.CurrentLocation, &t.IsOnline)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fleet.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan taxi: %w", err)
	}
	return &t, nil
}

func (s *PostgresStore) GetTaxi(ctx context.Context, id string) (*fleet.Taxi, error) {
	return scanTaxi(s.pool.QueryRow(ctx, `SELECT `+taxiColumns+` FROM taxis WHERE id = $1`, id))
}

func (s *PostgresStore) GetAllTaxis(ctx context.Context) ([]fleet.Taxi, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+taxiColumns+` FROM taxis`)
	if err != nil {
		return nil, fmt.Errorf("query taxis: %w", err)
	}
	defer rows.Close()

	out := make([]fleet.Taxi, 0)
	for rows.Next() {
		t, err := scanTaxi(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetTaxiWithDriver(ctx context.Context, id string) (*fleet.TaxiWithDriver, error) {
	t, err := s.GetTaxi(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &fleet.TaxiWithDriver{Taxi: *t}
	if t.DriverID != nil {
		d, err := s.GetDriver(ctx, *t.DriverID)
		if err != nil && !errors.Is(err, fleet.ErrNotFound) {
			return nil, err
		}
		out.Driver = d
	}
	return out, nil
}

func (s *PostgresStore) CreateTaxi(ctx context.Context, in fleet.InsertTaxi) (*fleet.Taxi, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	online := false
	if in.IsOnline != nil {
		online = *in.IsOnline
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO taxis (id, name, license_plate, driver_id, current_latitude, current_longitude, current_location, is_online)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+taxiColumns,
		utils.NewUUID(), in.Name, in.LicensePlate, in.DriverID, in.CurrentLatitude, in.CurrentLongitude, in.CurrentLocation, online)
	t, err := scanTaxi(row)
	if err != nil {
		return nil, mapPgError(err)
	}
	return t, nil
}

func (s *PostgresStore) UpdateTaxi(ctx context.Context, id string, patch fleet.TaxiPatch) (*fleet.Taxi, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	b := newPatchBuilder()
	b.set("name", patch.Name)
	b.set("license_plate", patch.LicensePlate)
	b.set("driver_id", patch.DriverID)
	b.set("current_latitude", patch.CurrentLatitude)
	b.set("current_longitude", patch.CurrentLongitude)
	b.set("current_location", patch.CurrentLocation)
	b.set("is_online", patch.IsOnline)

	if b.empty() {
		return s.GetTaxi(ctx, id)
	}

	row := s.pool.QueryRow(ctx, b.updateSQL("taxis", taxiColumns, id), b.args...)
	t, err := scanTaxi(row)
	if err != nil {
		return nil, mapPgError(err)
	}
	return t, nil
}

func (s *PostgresStore) DeleteTaxi(ctx context.Context, id string) (bool, error) {
	// no cascade: drivers, stats and recordings keep their taxi id
	tag, err := s.pool.Exec(ctx, `DELETE FROM taxis WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete taxi: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// --- taxi stats ---

const statsColumns = `id, taxi_id, date, passengers_today, distance_traveled, route_efficiency, fuel_consumption, total_earnings`

func scanStats(row pgx.Row) (*fleet.TaxiStats, error) {
	var st fleet.TaxiStats
	err := row.Scan(&st.ID, &st.TaxiID, &st.Date, &st.PassengersToday, &st.DistanceTraveled, &st.RouteEfficiency, &st.FuelConsumption, &st.TotalEarnings)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fleet.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan taxi stats: %w", err)
	}
	return &st, nil
}

func (s *PostgresStore) GetTaxiStatsByTaxiID(ctx context.Context, taxiID string) (*fleet.TaxiStats, error) {
	return scanStats(s.pool.QueryRow(ctx, `SELECT `+statsColumns+` FROM taxi_stats WHERE taxi_id = $1`, taxiID))
}

func (s *PostgresStore) GetAllTaxiStats(ctx context.Context) ([]fleet.TaxiStats, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+statsColumns+` FROM taxi_stats`)
	if err != nil {
		return nil, fmt.Errorf("query taxi stats: %w", err)
	}
	defer rows.Close()

	out := make([]fleet.TaxiStats, 0)
	for rows.Next() {
		st, err := scanStats(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *st)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateTaxiStats(ctx context.Context, in fleet.InsertTaxiStats) (*fleet.TaxiStats, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	passengers := 0
	if in.PassengersToday != nil {
		passengers = *in.PassengersToday
	}
	distance := 0.0
	if in.DistanceTraveled != nil {
		distance = *in.DistanceTraveled
	}
	efficiency := 0.0
	if in.RouteEfficiency != nil {
		efficiency = *in.RouteEfficiency
	}
	fuel := 0.0
	if in.FuelConsumption != nil {
		fuel = *in.FuelConsumption
	}
	earnings := 0.0
	if in.TotalEarnings != nil {
		earnings = *in.TotalEarnings
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO taxi_stats (id, taxi_id, passengers_today, distance_traveled, route_efficiency, fuel_consumption, total_earnings)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+statsColumns,
		utils.NewUUID(), in.TaxiID, passengers, distance, efficiency, fuel, earnings)
	st, err := scanStats(row)
	if err != nil {
		return nil, mapPgError(err)
	}
	return st, nil
}

func (s *PostgresStore) UpdateTaxiStatsByTaxiID(ctx context.Context, taxiID string, patch fleet.TaxiStatsPatch) (*fleet.TaxiStats, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	// date is immutable: never part of the SET clause
	b := newPatchBuilder()
	b.set("passengers_today", patch.PassengersToday)
	b.set("distance_traveled", patch.DistanceTraveled)
	b.set("route_efficiency", patch.RouteEfficiency)
	b.set("fuel_consumption", patch.FuelConsumption)
	b.set("total_earnings", patch.TotalEarnings)

	if b.empty() {
		return s.GetTaxiStatsByTaxiID(ctx, taxiID)
	}

	row := s.pool.QueryRow(ctx, b.updateByColumnSQL("taxi_stats", statsColumns, "taxi_id", taxiID), b.args...)
	st, err := scanStats(row)
	if err != nil {
		return nil, mapPgError(err)
	}
	return st, nil
}

func (s *PostgresStore) DeleteTaxiStats(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM taxi_stats WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete taxi stats: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// --- recordings ---

const recordingColumns = `id, taxi_id, filename, file_url, duration, file_size, mime_type, recorded_at, title, is_processed`

func scanRecording(row pgx.Row) (*fleet.Recording, error) {
	var r fleet.Recording
	err := row.Scan(&r.ID, &r.TaxiID, &r.Filename, &r.FileURL, &r.Duration, &r.FileSize, &r.MimeType, &r.RecordedAt, &r.Title, &r.IsProcessed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fleet.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan recording: %w", err)
	}
	return &r, nil
}

func (s *PostgresStore) GetRecording(ctx context.Context, id string) (*fleet.Recording, error) {
	return scanRecording(s.pool.QueryRow(ctx, `SELECT `+recordingColumns+` FROM recordings WHERE id = $1`, id))
}

func (s *PostgresStore) GetAllRecordings(ctx context.Context) ([]fleet.Recording, error) {
	return s.queryRecordings(ctx, `SELECT `+recordingColumns+` FROM recordings`)
}

func (s *PostgresStore) GetRecordingsByTaxiID(ctx context.Context, taxiID string) ([]fleet.Recording, error) {
	return s.queryRecordings(ctx, `SELECT `+recordingColumns+` FROM recordings WHERE taxi_id = $1`, taxiID)
}

func (s *PostgresStore) queryRecordings(ctx context.Context, sql string, args ...any) ([]fleet.Recording, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query recordings: %w", err)
	}
	defer rows.Close()

	out := make([]fleet.Recording, 0)
	for rows.Next() {
		r, err := scanRecording(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateRecording(ctx context.Context, in fleet.InsertRecording) (*fleet.Recording, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	processed := false
	if in.IsProcessed != nil {
		processed = *in.IsProcessed
	}

	var row pgx.Row
	if in.RecordedAt != nil {
		row = s.pool.QueryRow(ctx, `
			INSERT INTO recordings (id, taxi_id, filename, file_url, duration, file_size, mime_type, recorded_at, title, is_processed)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING `+recordingColumns,
			utils.NewUUID(), in.TaxiID, in.Filename, in.FileURL, in.Duration, in.FileSize, in.MimeType, *in.RecordedAt, in.Title, processed)
	} else {
		row = s.pool.QueryRow(ctx, `
			INSERT INTO recordings (id, taxi_id, filename, file_url, duration, file_size, mime_type, title, is_processed)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+recordingColumns,
			utils.NewUUID(), in.TaxiID, in.Filename, in.FileURL, in.Duration, in.FileSize, in.MimeType, in.Title, processed)
	}
	r, err := scanRecording(row)
	if err != nil {
		return nil, mapPgError(err)
	}
	return r, nil
}

func (s *PostgresStore) DeleteRecording(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM recordings WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete recording: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// --- available drivers ---

const availableColumns = `id, full_name, age, driving_experience, availability, phone, email, notes, is_available, registered_at`

func scanAvailableDriver(row pgx.Row) (*fleet.AvailableDriver, error) {
	var a fleet.AvailableDriver
	err := row.Scan(&a.ID, &a.FullName, &a.Age, &a.DrivingExperience, &a.Availability, &a.Phone, &a.Email, &a.Notes, &a.IsAvailable, &a.RegisteredAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fleet.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan available driver: %w", err)
	}
	return &a, nil
}

func (s *PostgresStore) GetAvailableDriver(ctx context.Context, id string) (*fleet.AvailableDriver, error) {
	return scanAvailableDriver(s.pool.QueryRow(ctx, `SELECT `+availableColumns+` FROM available_drivers WHERE id = $1`, id))
}

func (s *PostgresStore) GetAllAvailableDrivers(ctx context.Context) ([]fleet.AvailableDriver, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+availableColumns+` FROM available_drivers`)
	if err != nil {
		return nil, fmt.Errorf("query available drivers: %w", err)
	}
	defer rows.Close()

	out := make([]fleet.AvailableDriver, 0)
	for rows.Next() {
		a, err := scanAvailableDriver(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateAvailableDriver(ctx context.Context, in fleet.InsertAvailableDriver) (*fleet.AvailableDriver, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO available_drivers (id, full_name, age, driving_experience, availability, phone, email, notes, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+availableColumns,
		utils.NewUUID(), in.FullName, in.Age, in.DrivingExperience, in.Availability, in.Phone, in.Email, in.Notes, available)
	a, err := scanAvailableDriver(row)
	if err != nil {
		return nil, mapPgError(err)
	}
	return a, nil
}

func (s *PostgresStore) DeleteAvailableDriver(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM available_drivers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete available driver: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// patchBuilder accumulates SET clauses for partial updates. Pointer fields
// that are nil stay out of the statement entirely.
type patchBuilder struct {
	sets []string
	args []any
}

func newPatchBuilder() *patchBuilder {
	return &patchBuilder{}
}

func (b *patchBuilder) set(column string, v any) {
	switch p := v.(type) {
	case *string:
		if p == nil {
			return
		}
	case *int:
		if p == nil {
			return
		}
	case *float64:
		if p == nil {
			return
		}
	case *bool:
		if p == nil {
			return
		}
	}
	b.args = append(b.args, v)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *patchBuilder) empty() bool {
	return len(b.sets) == 0
}

func (b *patchBuilder) updateSQL(table, returning, id string) string {
	return b.updateByColumnSQL(table, returning, "id", id)
}

func (b *patchBuilder) updateByColumnSQL(table, returning, keyColumn, keyValue string) string {
	b.args = append(b.args, keyValue)
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		table, strings.Join(b.sets, ", "), keyColumn, len(b.args), returning)
}
