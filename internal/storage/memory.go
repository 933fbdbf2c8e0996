package storage

import (
	"context"
	"sync"
	"time"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/utils"
)

// MemoryStore keeps everything in process memory. It is the default backend
// for development and tests and disappears on restart.
type MemoryStore struct {
	mu sync.RWMutex

	users            map[string]fleet.User
	drivers          map[string]fleet.Driver
	taxis            map[string]fleet.Taxi
	taxiStats        map[string]fleet.TaxiStats
	recordings       map[string]fleet.Recording
	availableDrivers map[string]fleet.AvailableDriver

	seedOnce sync.Once
	seedErr  error
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:            make(map[string]fleet.User),
		drivers:          make(map[string]fleet.Driver),
		taxis:            make(map[string]fleet.Taxi),
		taxiStats:        make(map[string]fleet.TaxiStats),
		recordings:       make(map[string]fleet.Recording),
		availableDrivers: make(map[string]fleet.AvailableDriver),
	}
}

// Seed is guarded by sync.Once so concurrent first calls cannot
// double-insert the demo fleet.
func (s *MemoryStore) Seed(ctx context.Context) error {
	s.seedOnce.Do(func() {
		s.seedErr = runSeed(ctx, s)
	})
	return s.seedErr
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// --- users ---

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*fleet.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*fleet.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fleet.ErrNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, in fleet.InsertUser) (*fleet.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == in.Email {
			return nil, fleet.Invalid("email", "already registered")
		}
	}

	u := fleet.User{
		ID:           utils.NewUUID(),
		Email:        in.Email,
		PasswordHash: in.Password,
		Name:         in.Name,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[u.ID] = u
	return &u, nil
}

func (s *MemoryStore) DeleteUser(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

// --- drivers ---

func (s *MemoryStore) GetDriver(ctx context.Context, id string) (*fleet.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drivers[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}
	return &d, nil
}

func (s *MemoryStore) GetDriverByTaxiID(ctx context.Context, taxiID string) (*fleet.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.drivers {
		if d.TaxiID == taxiID {
			return &d, nil
		}
	}
	return nil, fleet.ErrNotFound
}

func (s *MemoryStore) GetAllDrivers(ctx context.Context) ([]fleet.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]fleet.Driver, 0, len(s.drivers))
	for _, d := range s.drivers {
		out = append(out, d)
	}
	return out, nil
}

func (s *MemoryStore) CreateDriver(ctx context.Context, in fleet.InsertDriver) (*fleet.Driver, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.drivers {
		if d.TaxiID == in.TaxiID {
			return nil, fleet.Invalid("taxiId", "already assigned to another driver")
		}
	}

	d := fleet.Driver{
		ID:       utils.NewUUID(),
		Name:     in.Name,
		Age:      in.Age,
		Phone:    in.Phone,
		PhotoURL: in.PhotoURL,
		TaxiID:   in.TaxiID,
		IsActive: true,
	}
	if in.Rating != nil {
		d.Rating = *in.Rating
	}
	if in.AvgPassengersPerDay != nil {
		d.AvgPassengersPerDay = *in.AvgPassengersPerDay
	}
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
	s.drivers[d.ID] = d
	return &d, nil
}

func (s *MemoryStore) UpdateDriver(ctx context.Context, id string, patch fleet.DriverPatch) (*fleet.Driver, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drivers[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}

	if patch.TaxiID != nil {
		for _, other := range s.drivers {
			if other.ID != id && other.TaxiID == *patch.TaxiID {
				return nil, fleet.Invalid("taxiId", "already assigned to another driver")
			}
		}
		d.TaxiID = *patch.TaxiID
	}
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Age != nil {
		d.Age = *patch.Age
	}
	if patch.Phone != nil {
		d.Phone = *patch.Phone
	}
	if patch.Rating != nil {
		d.Rating = *patch.Rating
	}
	if patch.AvgPassengersPerDay != nil {
		d.AvgPassengersPerDay = *patch.AvgPassengersPerDay
	}
	if patch.PhotoURL != nil {
		d.PhotoURL = patch.PhotoURL
	}
	if patch.IsActive != nil {
		d.IsActive = *patch.IsActive
	}

	s.drivers[id] = d
	return &d, nil
}

func (s *MemoryStore) DeleteDriver(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drivers[id]; !ok {
		return false, nil
	}
	delete(s.drivers, id)
	return true, nil
}

// --- taxis ---

func (s *MemoryStore) GetTaxi(ctx context.Context, id string) (*fleet.Taxi, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.taxis[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}
	return &t, nil
}

func (s *MemoryStore) GetAllTaxis(ctx context.Context) ([]fleet.Taxi, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]fleet.Taxi, 0, len(s.taxis))
	for _, t := range s.taxis {
		out = append(out, t)
	}
	return out, nil
}

func (s *MemoryStore) GetTaxiWithDriver(ctx context.Context, id string) (*fleet.TaxiWithDriver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.taxis[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}

	out := &fleet.TaxiWithDriver{Taxi: t}
	if t.DriverID != nil {
		// dangling driver id is tolerated: the driver field stays nil
		if d, ok := s.drivers[*t.DriverID]; ok {
			out.Driver = &d
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateTaxi(ctx context.Context, in fleet.InsertTaxi) (*fleet.Taxi, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.taxis {
		if t.LicensePlate == in.LicensePlate {
			return nil, fleet.Invalid("licensePlate", "already registered")
		}
	}

	t := fleet.Taxi{
		ID:               utils.NewUUID(),
		Name:             in.Name,
		LicensePlate:     in.LicensePlate,
		DriverID:         in.DriverID,
		CurrentLatitude:  in.CurrentLatitude,
		CurrentLongitude: in.CurrentLongitude,
		CurrentLocation:  in.CurrentLocation,
	}
	if in.IsOnline != nil {
		t.IsOnline = *in.IsOnline
	}
	s.taxis[t.ID] = t
	return &t, nil
}

func (s *MemoryStore) UpdateTaxi(ctx context.Context, id string, patch fleet.TaxiPatch) (*fleet.Taxi, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.taxis[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}

	if patch.LicensePlate != nil {
		for _, other := range s.taxis {
			if other.ID != id && other.LicensePlate == *patch.LicensePlate {
				return nil, fleet.Invalid("licensePlate", "already registered")
			}
		}
		t.LicensePlate = *patch.LicensePlate
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.DriverID != nil {
		t.DriverID = patch.DriverID
	}
	if patch.CurrentLatitude != nil {
		t.CurrentLatitude = patch.CurrentLatitude
	}
	if patch.CurrentLongitude != nil {
		t.CurrentLongitude = patch.CurrentLongitude
	}
	if patch.CurrentLocation != nil {
		t.CurrentLocation = patch.CurrentLocation
	}
	if patch.IsOnline != nil {
		t.IsOnline = *patch.IsOnline
	}

	s.taxis[id] = t
	return &t, nil
}

func (s *MemoryStore) DeleteTaxi(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.taxis[id]; !ok {
		return false, nil
	}
	// no cascade: drivers, stats and recordings keep their taxi id
	delete(s.taxis, id)
	return true, nil
}

// --- taxi stats ---

func (s *MemoryStore) GetTaxiStatsByTaxiID(ctx context.Context, taxiID string) (*fleet.TaxiStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.taxiStats {
		if st.TaxiID == taxiID {
			return &st, nil
		}
	}
	return nil, fleet.ErrNotFound
}

func (s *MemoryStore) GetAllTaxiStats(ctx context.Context) ([]fleet.TaxiStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]fleet.TaxiStats, 0, len(s.taxiStats))
	for _, st := range s.taxiStats {
		out = append(out, st)
	}
	return out, nil
}

func (s *MemoryStore) CreateTaxiStats(ctx context.Context, in fleet.InsertTaxiStats) (*fleet.TaxiStats, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.taxiStats {
		if st.TaxiID == in.TaxiID {
			return nil, fleet.Invalid("taxiId", "stats snapshot already exists for this taxi")
		}
	}

	st := fleet.TaxiStats{
		ID:     utils.NewUUID(),
		TaxiID: in.TaxiID,
		Date:   time.Now().UTC(),
	}
	if in.PassengersToday != nil {
		st.PassengersToday = *in.PassengersToday
	}
	if in.DistanceTraveled != nil {
		st.DistanceTraveled = *in.DistanceTraveled
	}
	if in.RouteEfficiency != nil {
		st.RouteEfficiency = *in.RouteEfficiency
	}
	if in.FuelConsumption != nil {
		st.FuelConsumption = *in.FuelConsumption
	}
	if in.TotalEarnings != nil {
		st.TotalEarnings = *in.TotalEarnings
	}
	s.taxiStats[st.ID] = st
	return &st, nil
}

func (s *MemoryStore) UpdateTaxiStatsByTaxiID(ctx context.Context, taxiID string, patch fleet.TaxiStatsPatch) (*fleet.TaxiStats, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, st := range s.taxiStats {
		if st.TaxiID != taxiID {
			continue
		}
		if patch.PassengersToday != nil {
			st.PassengersToday = *patch.PassengersToday
		}
		if patch.DistanceTraveled != nil {
			st.DistanceTraveled = *patch.DistanceTraveled
		}
		if patch.RouteEfficiency != nil {
			st.RouteEfficiency = *patch.RouteEfficiency
		}
		if patch.FuelConsumption != nil {
			st.FuelConsumption = *patch.FuelConsumption
		}
		if patch.TotalEarnings != nil {
			st.TotalEarnings = *patch.TotalEarnings
		}
		s.taxiStats[id] = st
		return &st, nil
	}
	return nil, fleet.ErrNotFound
}

func (s *MemoryStore) DeleteTaxiStats(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.taxiStats[id]; !ok {
		return false, nil
	}
	delete(s.taxiStats, id)
	return true, nil
}

// --- recordings ---

func (s *MemoryStore) GetRecording(ctx context.Context, id string) (*fleet.Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recordings[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}
	return &r, nil
}

func (s *MemoryStore) GetAllRecordings(ctx context.Context) ([]fleet.Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]fleet.Recording, 0, len(s.recordings))
	for _, r := range s.recordings {
		out = append(out, r)
	}
	return out, nil
}

func (s *MemoryStore) GetRecordingsByTaxiID(ctx context.Context, taxiID string) ([]fleet.Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]fleet.Recording, 0)
	for _, r := range s.recordings {
		if r.TaxiID == taxiID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateRecording(ctx context.Context, in fleet.InsertRecording) (*fleet.Recording, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := fleet.Recording{
		ID:         utils.NewUUID(),
		TaxiID:     in.TaxiID,
		Filename:   in.Filename,
		FileURL:    in.FileURL,
		Duration:   in.Duration,
		FileSize:   in.FileSize,
		MimeType:   in.MimeType,
		RecordedAt: time.Now().UTC(),
		Title:      in.Title,
	}
	if in.RecordedAt != nil {
		r.RecordedAt = *in.RecordedAt
	}
	if in.IsProcessed != nil {
		r.IsProcessed = *in.IsProcessed
	}
	s.recordings[r.ID] = r
	return &r, nil
}

func (s *MemoryStore) DeleteRecording(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recordings[id]; !ok {
		return false, nil
	}
	delete(s.recordings, id)
	return true, nil
}

// --- available drivers ---

func (s *MemoryStore) GetAvailableDriver(ctx context.Context, id string) (*fleet.AvailableDriver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.availableDrivers[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}
	return &a, nil
}

func (s *MemoryStore) GetAllAvailableDrivers(ctx context.Context) ([]fleet.AvailableDriver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]fleet.AvailableDriver, 0, len(s.availableDrivers))
	for _, a := range s.availableDrivers {
		out = append(out, a)
	}
	return out, nil
}

func (s *MemoryStore) CreateAvailableDriver(ctx context.Context, in fleet.InsertAvailableDriver) (*fleet.AvailableDriver, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := fleet.AvailableDriver{
		ID:                utils.NewUUID(),
		FullName:          in.FullName,
		Age:               in.Age,
		DrivingExperience: in.DrivingExperience,
		Availability:      in.Availability,
		Phone:             in.Phone,
		Email:             in.Email,
		Notes:             in.Notes,
		IsAvailable:       true,
		RegisteredAt:      time.Now().UTC(),
	}
	if in.IsAvailable != nil {
		a.IsAvailable = *in.IsAvailable
	}
	s.availableDrivers[a.ID] = a
	return &a, nil
}

func (s *MemoryStore) DeleteAvailableDriver(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.availableDrivers[id]; !ok {
		return false, nil
	}
	delete(s.availableDrivers, id)
	return true, nil
}
