package fleet

import (
	"errors"
	"testing"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"admin@savezar.com", "a@b.co", "first.last@fleet.example.org"}
	for _, s := range valid {
		if !ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "no-at-sign", "@missing.local", "spaces in@mail.com", "no@tld"}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = true, want false", s)
		}
	}
}

func TestInsertAvailableDriverValidate(t *testing.T) {
	base := InsertAvailableDriver{
		FullName:          "Naledi Dube",
		Age:               25,
		DrivingExperience: 3,
		Availability:      "weekdays",
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid registration rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*InsertAvailableDriver)
		field  string
	}{
		{"age below minimum", func(in *InsertAvailableDriver) { in.Age = 17 }, "age"},
		{"age above maximum", func(in *InsertAvailableDriver) { in.Age = 76 }, "age"},
		{"experience negative", func(in *InsertAvailableDriver) { in.DrivingExperience = -1 }, "drivingExperience"},
		{"experience too long", func(in *InsertAvailableDriver) { in.DrivingExperience = 51 }, "drivingExperience"},
		{"missing name", func(in *InsertAvailableDriver) { in.FullName = "" }, "fullName"},
		{"missing availability", func(in *InsertAvailableDriver) { in.Availability = "" }, "availability"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			err := in.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !hasField(ve, tc.field) {
				t.Fatalf("expected violation on %q, got %v", tc.field, ve.Fields)
			}
		})
	}
}

func TestInsertAvailableDriverOptionalEmail(t *testing.T) {
	in := InsertAvailableDriver{
		FullName:          "Naledi Dube",
		Age:               30,
		DrivingExperience: 5,
		Availability:      "weekends",
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("nil email rejected: %v", err)
	}

	bad := "not-an-email"
	in.Email = &bad
	if err := in.Validate(); err == nil {
		t.Fatal("malformed email accepted")
	}
}

func TestInsertDriverValidate(t *testing.T) {
	in := InsertDriver{Name: "Tshepo Trust", Age: 36, Phone: "+234-801-234-5678", TaxiID: "t1"}
	if err := in.Validate(); err != nil {
		t.Fatalf("valid driver rejected: %v", err)
	}

	rating := 5.5
	in.Rating = &rating
	err := in.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) || !hasField(ve, "rating") {
		t.Fatalf("expected rating violation, got %v", err)
	}
}

func TestTaxiPatchCoordinates(t *testing.T) {
	lat := 91.0
	err := TaxiPatch{CurrentLatitude: &lat}.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) || !hasField(ve, "currentLatitude") {
		t.Fatalf("expected currentLatitude violation, got %v", err)
	}

	lat = 6.5244
	lng := 3.3792
	if err := (TaxiPatch{CurrentLatitude: &lat, CurrentLongitude: &lng}).Validate(); err != nil {
		t.Fatalf("valid coordinates rejected: %v", err)
	}
}

func TestTaxiStatsPatchRanges(t *testing.T) {
	eff := 101.0
	err := TaxiStatsPatch{RouteEfficiency: &eff}.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) || !hasField(ve, "routeEfficiency") {
		t.Fatalf("expected routeEfficiency violation, got %v", err)
	}

	passengers := -1
	err = TaxiStatsPatch{PassengersToday: &passengers}.Validate()
	if !errors.As(err, &ve) || !hasField(ve, "passengersToday") {
		t.Fatalf("expected passengersToday violation, got %v", err)
	}
}

func TestValidationErrorCollectsAllFields(t *testing.T) {
	err := InsertUser{}.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 3 {
		t.Fatalf("expected 3 field violations, got %d: %v", len(ve.Fields), ve.Fields)
	}
}

func hasField(ve *ValidationError, field string) bool {
	for _, f := range ve.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
