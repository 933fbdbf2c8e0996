package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/auth"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/session"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/config"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/logger"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/storage"
)

type testServer struct {
	routes http.Handler
	store  *storage.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := storage.NewMemoryStore()
	if err := store.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	log := logger.NewLoggerWithWriter("api-test", io.Discard)
	sessions := session.NewManager(session.NewMemoryStore(), config.SessionConfig{
		Secret:   "test-secret",
		TTLHours: 1,
	}, true)
	authSvc := auth.NewService(store, sessions, log)
	h := NewHandler(store, authSvc, sessions, log)

	return &testServer{routes: h.Routes(), store: store}
}

// do sends a request through the full route table and decodes the JSON
// response into out when out is non-nil.
func (ts *testServer) do(t *testing.T, method, path string, body any, cookie *http.Cookie, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	r := httptest.NewRequest(method, path, reader)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	ts.routes.ServeHTTP(w, r)

	resp := w.Result()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp
}

func (ts *testServer) login(t *testing.T) *http.Cookie {
	t.Helper()

	resp := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    storage.SeedAdminEmail,
		"password": storage.SeedAdminPassword,
	}, nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in login response")
	return nil
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.do(t, http.MethodGet, "/health", nil, nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestLoginLogoutFlow(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	var me struct {
		User fleet.PublicUser `json:"user"`
	}
	resp := ts.do(t, http.MethodGet, "/api/auth/me", nil, cookie, &me)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me status = %d", resp.StatusCode)
	}
	if me.User.Email != storage.SeedAdminEmail {
		t.Fatalf("me email = %q", me.User.Email)
	}

	resp = ts.do(t, http.MethodPost, "/api/auth/logout", nil, cookie, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status = %d", resp.StatusCode)
	}

	// old cookie is dead after logout
	resp = ts.do(t, http.MethodGet, "/api/auth/me", nil, cookie, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after logout status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    storage.SeedAdminEmail,
		"password": "wrong",
	}, nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginMissingFields(t *testing.T) {
	ts := newTestServer(t)
	var body struct {
		Errors []fleet.FieldError `json:"errors"`
	}
	resp := ts.do(t, http.MethodPost, "/api/auth/login", map[string]string{}, nil, &body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if len(body.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %v", body.Errors)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	ts := newTestServer(t)
	paths := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/taxis"},
		{http.MethodGet, "/api/drivers"},
		{http.MethodGet, "/api/stats"},
		{http.MethodGet, "/api/recordings"},
		{http.MethodGet, "/api/available-drivers"},
		{http.MethodPost, "/api/auth/logout"},
	}
	for _, p := range paths {
		resp := ts.do(t, p.method, p.path, nil, nil, nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want 401", p.method, p.path, resp.StatusCode)
		}
	}
}

func TestListTaxisSeeded(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	var taxis []fleet.Taxi
	resp := ts.do(t, http.MethodGet, "/api/taxis", nil, cookie, &taxis)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(taxis) != 1 {
		t.Fatalf("expected 1 seeded taxi, got %d", len(taxis))
	}
	if taxis[0].LicensePlate != "LAG-001-XX" {
		t.Fatalf("plate = %q", taxis[0].LicensePlate)
	}
}

func TestGetTaxiWithDriver(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	var taxis []fleet.Taxi
	ts.do(t, http.MethodGet, "/api/taxis", nil, cookie, &taxis)

	var taxi fleet.TaxiWithDriver
	resp := ts.do(t, http.MethodGet, "/api/taxis/"+taxis[0].ID, nil, cookie, &taxi)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if taxi.Driver == nil || taxi.Driver.Name != "Tshepo Trust" {
		t.Fatalf("driver not embedded: %+v", taxi.Driver)
	}
}

func TestGetTaxiNotFound(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	resp := ts.do(t, http.MethodGet, "/api/taxis/does-not-exist", nil, cookie, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCreateTaxiAndLocationUpdate(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	var created fleet.Taxi
	resp := ts.do(t, http.MethodPost, "/api/taxis", map[string]any{
		"name":         "Taxi 2",
		"licensePlate": "LAG-002-XX",
	}, cookie, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}

	var updated fleet.Taxi
	resp = ts.do(t, http.MethodPatch, "/api/taxis/"+created.ID+"/location", map[string]any{
		"latitude":  6.45,
		"longitude": 3.39,
		"location":  "Ikoyi",
	}, cookie, &updated)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("location patch status = %d", resp.StatusCode)
	}
	if updated.CurrentLatitude == nil || *updated.CurrentLatitude != 6.45 {
		t.Fatalf("latitude not updated: %+v", updated.CurrentLatitude)
	}
	if updated.CurrentLocation == nil || *updated.CurrentLocation != "Ikoyi" {
		t.Fatalf("location not updated: %+v", updated.CurrentLocation)
	}
}

func TestCreateTaxiDuplicatePlate(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	resp := ts.do(t, http.MethodPost, "/api/taxis", map[string]any{
		"name":         "Clone",
		"licensePlate": "LAG-001-XX",
	}, cookie, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestStatsPatchByTaxi(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	var taxis []fleet.Taxi
	ts.do(t, http.MethodGet, "/api/taxis", nil, cookie, &taxis)
	taxiID := taxis[0].ID

	var before fleet.TaxiStats
	ts.do(t, http.MethodGet, "/api/stats/taxi/"+taxiID, nil, cookie, &before)

	var after fleet.TaxiStats
	resp := ts.do(t, http.MethodPatch, "/api/stats/taxi/"+taxiID, map[string]any{
		"passengersToday": 150,
	}, cookie, &after)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch status = %d", resp.StatusCode)
	}
	if after.PassengersToday != 150 {
		t.Fatalf("passengersToday = %d, want 150", after.PassengersToday)
	}
	if after.DistanceTraveled != before.DistanceTraveled || after.TotalEarnings != before.TotalEarnings {
		t.Fatal("patch touched untargeted fields")
	}

	var again fleet.TaxiStats
	ts.do(t, http.MethodGet, "/api/stats/taxi/"+taxiID, nil, cookie, &again)
	if again.PassengersToday != 150 {
		t.Fatalf("patch not persisted: %d", again.PassengersToday)
	}
}

func TestDriverByTaxi(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	var taxis []fleet.Taxi
	ts.do(t, http.MethodGet, "/api/taxis", nil, cookie, &taxis)

	var driver fleet.Driver
	resp := ts.do(t, http.MethodGet, "/api/drivers/taxi/"+taxis[0].ID, nil, cookie, &driver)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if driver.Name != "Tshepo Trust" {
		t.Fatalf("driver = %q", driver.Name)
	}
}

func TestAvailableDriverRegistrationIsPublic(t *testing.T) {
	ts := newTestServer(t)

	// no cookie: the registration form must still work
	var created fleet.AvailableDriver
	resp := ts.do(t, http.MethodPost, "/api/available-drivers", map[string]any{
		"fullName":          "Naledi Dube",
		"age":               25,
		"drivingExperience": 3,
		"availability":      "weekdays",
	}, nil, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if !created.IsAvailable {
		t.Fatal("isAvailable should default to true")
	}

	// but listing the pool needs a session
	resp = ts.do(t, http.MethodGet, "/api/available-drivers", nil, nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("list status = %d, want 401", resp.StatusCode)
	}

	cookie := ts.login(t)
	var pool []fleet.AvailableDriver
	resp = ts.do(t, http.MethodGet, "/api/available-drivers", nil, cookie, &pool)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	if len(pool) != 1 || pool[0].FullName != "Naledi Dube" {
		t.Fatalf("pool = %+v", pool)
	}
}

func TestAvailableDriverUnderage(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Errors []fleet.FieldError `json:"errors"`
	}
	resp := ts.do(t, http.MethodPost, "/api/available-drivers", map[string]any{
		"fullName":          "Too Young",
		"age":               17,
		"drivingExperience": 1,
		"availability":      "weekends",
	}, nil, &body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "age" {
		t.Fatalf("errors = %+v", body.Errors)
	}
}

func TestRecordingLifecycle(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	var created fleet.Recording
	resp := ts.do(t, http.MethodPost, "/api/recordings", map[string]any{
		"taxiId":   "t1",
		"filename": "shift.mp4",
		"fileUrl":  "https://media.local/shift.mp4",
		"mimeType": "video/mp4",
		"title":    "Morning shift",
		"duration": 120.5,
		"fileSize": 1048576,
	}, cookie, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}

	var got fleet.Recording
	resp = ts.do(t, http.MethodGet, "/api/recordings/"+created.ID, nil, cookie, &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	if got.Title != "Morning shift" {
		t.Fatalf("title = %q", got.Title)
	}

	var byTaxi []fleet.Recording
	ts.do(t, http.MethodGet, "/api/recordings/taxi/t1", nil, cookie, &byTaxi)
	if len(byTaxi) != 1 {
		t.Fatalf("expected 1 recording for t1, got %d", len(byTaxi))
	}

	resp = ts.do(t, http.MethodDelete, "/api/recordings/"+created.ID, nil, cookie, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	resp = ts.do(t, http.MethodDelete, "/api/recordings/"+created.ID, nil, cookie, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", resp.StatusCode)
	}
}

func TestUnknownBodyFieldRejected(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	resp := ts.do(t, http.MethodPost, "/api/taxis", map[string]any{
		"name":         "Taxi 9",
		"licensePlate": "LAG-009-XX",
		"bogus":        true,
	}, cookie, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
