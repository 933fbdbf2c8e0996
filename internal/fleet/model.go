package fleet

import "time"

// User is a dashboard account. The password hash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the client-facing projection of a User.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}

type InsertUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Driver is an active fleet driver. TaxiID is required and unique: one
// driver per taxi.
type Driver struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Age                 int     `json:"age"`
	Phone               string  `json:"phone"`
	Rating              float64 `json:"rating"`
	AvgPassengersPerDay int     `json:"avgPassengersPerDay"`
	PhotoURL            *string `json:"photoUrl"`
	TaxiID              string  `json:"taxiId"`
	IsActive            bool    `json:"isActive"`
}

// InsertDriver carries driver creation fields. Optional fields default per
// schema: rating 0, avgPassengersPerDay 0, isActive true.
type InsertDriver struct {
	Name                string   `json:"name"`
	Age                 int      `json:"age"`
	Phone               string   `json:"phone"`
	Rating              *float64 `json:"rating"`
	AvgPassengersPerDay *int     `json:"avgPassengersPerDay"`
	PhotoURL            *string  `json:"photoUrl"`
	TaxiID              string   `json:"taxiId"`
	IsActive            *bool    `json:"isActive"`
}

// DriverPatch is a partial update; nil fields keep their previous values.
type DriverPatch struct {
	Name                *string  `json:"name"`
	Age                 *int     `json:"age"`
	Phone               *string  `json:"phone"`
	Rating              *float64 `json:"rating"`
	AvgPassengersPerDay *int     `json:"avgPassengersPerDay"`
	PhotoURL            *string  `json:"photoUrl"`
	TaxiID              *string  `json:"taxiId"`
	IsActive            *bool    `json:"isActive"`
}

// Taxi is a fleet vehicle. The three location fields may each be null
// independently; the client hides taxis missing any of them.
type Taxi struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	LicensePlate     string   `json:"licensePlate"`
	DriverID         *string  `json:"driverId"`
	CurrentLatitude  *float64 `json:"currentLatitude"`
	CurrentLongitude *float64 `json:"currentLongitude"`
	CurrentLocation  *string  `json:"currentLocation"`
	IsOnline         bool     `json:"isOnline"`
}

type InsertTaxi struct {
	Name             string   `json:"name"`
	LicensePlate     string   `json:"licensePlate"`
	DriverID         *string  `json:"driverId"`
	CurrentLatitude  *float64 `json:"currentLatitude"`
	CurrentLongitude *float64 `json:"currentLongitude"`
	CurrentLocation  *string  `json:"currentLocation"`
	IsOnline         *bool    `json:"isOnline"`
}

type TaxiPatch struct {
	Name             *string  `json:"name"`
	LicensePlate     *string  `json:"licensePlate"`
	DriverID         *string  `json:"driverId"`
	CurrentLatitude  *float64 `json:"currentLatitude"`
	CurrentLongitude *float64 `json:"currentLongitude"`
	CurrentLocation  *string  `json:"currentLocation"`
	IsOnline         *bool    `json:"isOnline"`
}

// TaxiWithDriver embeds the resolved driver. A dangling DriverID yields a
// nil Driver, not an error.
type TaxiWithDriver struct {
	Taxi
	Driver *Driver `json:"driver,omitempty"`
}

// TaxiStats is the single live performance snapshot of one taxi. Date is
// set at creation and never patched.
type TaxiStats struct {
	ID               string    `json:"id"`
	TaxiID           string    `json:"taxiId"`
	Date             time.Time `json:"date"`
	PassengersToday  int       `json:"passengersToday"`
	DistanceTraveled float64   `json:"distanceTraveled"`
	RouteEfficiency  float64   `json:"routeEfficiency"`
	FuelConsumption  float64   `json:"fuelConsumption"`
	TotalEarnings    float64   `json:"totalEarnings"`
}

type InsertTaxiStats struct {
	TaxiID           string   `json:"taxiId"`
	PassengersToday  *int     `json:"passengersToday"`
	DistanceTraveled *float64 `json:"distanceTraveled"`
	RouteEfficiency  *float64 `json:"routeEfficiency"`
	FuelConsumption  *float64 `json:"fuelConsumption"`
	TotalEarnings    *float64 `json:"totalEarnings"`
}

type TaxiStatsPatch struct {
	PassengersToday  *int     `json:"passengersToday"`
	DistanceTraveled *float64 `json:"distanceTraveled"`
	RouteEfficiency  *float64 `json:"routeEfficiency"`
	FuelConsumption  *float64 `json:"fuelConsumption"`
	TotalEarnings    *float64 `json:"totalEarnings"`
}

// Recording is metadata for one captured broadcast segment. The media file
// itself lives wherever FileURL points.
type Recording struct {
	ID          string    `json:"id"`
	TaxiID      string    `json:"taxiId"`
	Filename    string    `json:"filename"`
	FileURL     string    `json:"fileUrl"`
	Duration    float64   `json:"duration"`
	FileSize    int64     `json:"fileSize"`
	MimeType    string    `json:"mimeType"`
	RecordedAt  time.Time `json:"recordedAt"`
	Title       string    `json:"title"`
	IsProcessed bool      `json:"isProcessed"`
}

type InsertRecording struct {
	TaxiID      string     `json:"taxiId"`
	Filename    string     `json:"filename"`
	FileURL     string     `json:"fileUrl"`
	Duration    float64    `json:"duration"`
	FileSize    int64      `json:"fileSize"`
	MimeType    string     `json:"mimeType"`
	RecordedAt  *time.Time `json:"recordedAt"`
	Title       string     `json:"title"`
	IsProcessed *bool      `json:"isProcessed"`
}

// AvailableDriver is a recruiting-pool entry from the public registration
// form, independent of active Driver records.
type AvailableDriver struct {
	ID                string    `json:"id"`
	FullName          string    `json:"fullName"`
	Age               int       `json:"age"`
	DrivingExperience int       `json:"drivingExperience"`
	Availability      string    `json:"availability"`
	Phone             *string   `json:"phone"`
	Email             *string   `json:"email"`
	Notes             *string   `json:"notes"`
	IsAvailable       bool      `json:"isAvailable"`
	RegisteredAt      time.Time `json:"registeredAt"`
}

type InsertAvailableDriver struct {
	FullName          string  `json:"fullName"`
	Age               int     `json:"age"`
	DrivingExperience int     `json:"drivingExperience"`
	Availability      string  `json:"availability"`
	Phone             *string `json:"phone"`
	Email             *string `json:"email"`
	Notes             *string `json:"notes"`
	IsAvailable       *bool   `json:"isAvailable"`
}
