package fleet

import "regexp"

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func validCoordinates(lat, lng *float64, ve *ValidationError) {
	if lat != nil && (*lat < -90 || *lat > 90) {
		ve.Add("currentLatitude", "must be between -90 and 90")
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		ve.Add("currentLongitude", "must be between -180 and 180")
	}
}

func (in InsertUser) Validate() error {
	ve := &ValidationError{}
	if !ValidEmail(in.Email) {
		ve.Add("email", "must be a valid email address")
	}
	if in.Password == "" {
		ve.Add("password", "cannot be empty")
	}
	if in.Name == "" {
		ve.Add("name", "cannot be empty")
	}
	return ve.OrNil()
}

func (in InsertDriver) Validate() error {
	ve := &ValidationError{}
	if in.Name == "" {
		ve.Add("name", "cannot be empty")
	}
	if in.Age <= 0 {
		ve.Add("age", "must be a positive number")
	}
	if in.Phone == "" {
		ve.Add("phone", "cannot be empty")
	}
	if in.TaxiID == "" {
		ve.Add("taxiId", "cannot be empty")
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		ve.Add("rating", "must be between 0 and 5")
	}
	if in.AvgPassengersPerDay != nil && *in.AvgPassengersPerDay < 0 {
		ve.Add("avgPassengersPerDay", "must be non-negative")
	}
	return ve.OrNil()
}

// Validate checks only the fields the patch provides; nil fields are
// untouched and need no revalidation.
func (p DriverPatch) Validate() error {
	ve := &ValidationError{}
	if p.Name != nil && *p.Name == "" {
		ve.Add("name", "cannot be empty")
	}
	if p.Age != nil && *p.Age <= 0 {
		ve.Add("age", "must be a positive number")
	}
	if p.Phone != nil && *p.Phone == "" {
		ve.Add("phone", "cannot be empty")
	}
	if p.TaxiID != nil && *p.TaxiID == "" {
		ve.Add("taxiId", "cannot be empty")
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		ve.Add("rating", "must be between 0 and 5")
	}
	if p.AvgPassengersPerDay != nil && *p.AvgPassengersPerDay < 0 {
		ve.Add("avgPassengersPerDay", "must be non-negative")
	}
	return ve.OrNil()
}

func (in InsertTaxi) Validate() error {
	ve := &ValidationError{}
	if in.Name == "" {
		ve.Add("name", "cannot be empty")
	}
	if in.LicensePlate == "" {
		ve.Add("licensePlate", "cannot be empty")
	}
	validCoordinates(in.CurrentLatitude, in.CurrentLongitude, ve)
	return ve.OrNil()
}

func (p TaxiPatch) Validate() error {
	ve := &ValidationError{}
	if p.Name != nil && *p.Name == "" {
		ve.Add("name", "cannot be empty")
	}
	if p.LicensePlate != nil && *p.LicensePlate == "" {
		ve.Add("licensePlate", "cannot be empty")
	}
	validCoordinates(p.CurrentLatitude, p.CurrentLongitude, ve)
	return ve.OrNil()
}

func (in InsertTaxiStats) Validate() error {
	ve := &ValidationError{}
	if in.TaxiID == "" {
		ve.Add("taxiId", "cannot be empty")
	}
	if in.PassengersToday != nil && *in.PassengersToday < 0 {
		ve.Add("passengersToday", "must be non-negative")
	}
	if in.DistanceTraveled != nil && *in.DistanceTraveled < 0 {
		ve.Add("distanceTraveled", "must be non-negative")
	}
	if in.RouteEfficiency != nil && (*in.RouteEfficiency < 0 || *in.RouteEfficiency > 100) {
		ve.Add("routeEfficiency", "must be between 0 and 100")
	}
	if in.FuelConsumption != nil && *in.FuelConsumption < 0 {
		ve.Add("fuelConsumption", "must be non-negative")
	}
	if in.TotalEarnings != nil && *in.TotalEarnings < 0 {
		ve.Add("totalEarnings", "must be non-negative")
	}
	return ve.OrNil()
}

func (p TaxiStatsPatch) Validate() error {
	ve := &ValidationError{}
	if p.PassengersToday != nil && *p.PassengersToday < 0 {
		ve.Add("passengersToday", "must be non-negative")
	}
	if p.DistanceTraveled != nil && *p.DistanceTraveled < 0 {
		ve.Add("distanceTraveled", "must be non-negative")
	}
	if p.RouteEfficiency != nil && (*p.RouteEfficiency < 0 || *p.RouteEfficiency > 100) {
		ve.Add("routeEfficiency", "must be between 0 and 100")
	}
	if p.FuelConsumption != nil && *p.FuelConsumption < 0 {
		ve.Add("fuelConsumption", "must be non-negative")
	}
	if p.TotalEarnings != nil && *p.TotalEarnings < 0 {
		ve.Add("totalEarnings", "must be non-negative")
	}
	return ve.OrNil()
}

func (in InsertRecording) Validate() error {
	ve := &ValidationError{}
	if in.TaxiID == "" {
		ve.Add("taxiId", "cannot be empty")
	}
	if in.Filename == "" {
		ve.Add("filename", "cannot be empty")
	}
	if in.FileURL == "" {
		ve.Add("fileUrl", "cannot be empty")
	}
	if in.MimeType == "" {
		ve.Add("mimeType", "cannot be empty")
	}
	if in.Title == "" {
		ve.Add("title", "cannot be empty")
	}
	if in.Duration < 0 {
		ve.Add("duration", "must be non-negative")
	}
	if in.FileSize < 0 {
		ve.Add("fileSize", "must be non-negative")
	}
	return ve.OrNil()
}

func (in InsertAvailableDriver) Validate() error {
	ve := &ValidationError{}
	if in.FullName == "" {
		ve.Add("fullName", "cannot be empty")
	}
	if in.Age < 18 || in.Age > 75 {
		ve.Add("age", "must be between 18 and 75")
	}
	if in.DrivingExperience < 0 || in.DrivingExperience > 50 {
		ve.Add("drivingExperience", "must be between 0 and 50 years")
	}
	if in.Availability == "" {
		ve.Add("availability", "cannot be empty")
	}
	if in.Email != nil && *in.Email != "" && !ValidEmail(*in.Email) {
		ve.Add("email", "must be a valid email address")
	}
	return ve.OrNil()
}
