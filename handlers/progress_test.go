package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"internhours/config"
	"internhours/models"
)

type fakePreferenceStore struct {
	prefs map[string]float64
	err   error
}

func newFakePreferenceStore() *fakePreferenceStore {
	return &fakePreferenceStore{prefs: map[string]float64{}}
}

func (s *fakePreferenceStore) GetByOwner(owner string) (*models.Preference, error) {
	if s.err != nil {
		return nil, s.err
	}
	hours, ok := s.prefs[owner]
	if !ok {
		return nil, nil
	}
	return &models.Preference{UserID: owner, RequiredHours: hours}, nil
}

func (s *fakePreferenceStore) Upsert(owner string, requiredHours float64) (*models.Preference, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.prefs[owner] = requiredHours
	return &models.Preference{UserID: owner, RequiredHours: requiredHours}, nil
}

func newProgressRouter(entries *fakeEntryStore, prefs *fakePreferenceStore) *chi.Mux {
	cfg := &config.Config{DefaultRequiredHours: 500}
	h := NewProgressHandler(cfg, entries, prefs)
	router := chi.NewRouter()
	router.Get("/progress", h.Progress)
	router.Get("/preferences", h.GetPreferences)
	router.Put("/preferences", h.UpdatePreferences)
	return router
}

func getProgress(t *testing.T, router http.Handler, user *models.User) progressResponse {
	t.Helper()
	req := withUser(httptest.NewRequest(http.MethodGet, "/progress", nil), user)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body)
	}
	var got progressResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return got
}

func TestProgressUnauthenticated(t *testing.T) {
	router := newProgressRouter(newFakeEntryStore(), newFakePreferenceStore())

	for _, target := range []string{"/progress", "/preferences"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want %d", target, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestProgressDefaultTarget(t *testing.T) {
	entries := newFakeEntryStore()
	router := newProgressRouter(entries, newFakePreferenceStore())

	// 4 + 4 logged hours against the default 500 target.
	seedEntry(t, entries, ownerA, `{"date":"2025-02-05","morning_time_in":"08:00","morning_time_out":"12:00","afternoon_time_in":"13:00","afternoon_time_out":"17:00"}`)

	got := getProgress(t, router, ownerA)
	if got.CompletedHours != 8 {
		t.Errorf("completed_hours = %v, want 8", got.CompletedHours)
	}
	if got.RequiredHours != 500 {
		t.Errorf("required_hours = %v, want 500", got.RequiredHours)
	}
	if got.RemainingHours != 492 {
		t.Errorf("remaining_hours = %v, want 492", got.RemainingHours)
	}
	if got.Percent != 2 {
		t.Errorf("percent = %v, want 2", got.Percent)
	}
}

func TestProgressPercentCapped(t *testing.T) {
	entries := newFakeEntryStore()
	prefs := newFakePreferenceStore()
	prefs.prefs[ownerA.ID] = 4
	router := newProgressRouter(entries, prefs)

	seedEntry(t, entries, ownerA, `{"date":"2025-02-05","morning_time_in":"08:00","morning_time_out":"16:00"}`)

	got := getProgress(t, router, ownerA)
	if got.Percent != 100 {
		t.Errorf("percent = %v, want 100 (capped)", got.Percent)
	}
	if got.RemainingHours != -4 {
		t.Errorf("remaining_hours = %v, want -4", got.RemainingHours)
	}
}

func TestProgressZeroTarget(t *testing.T) {
	entries := newFakeEntryStore()
	prefs := newFakePreferenceStore()
	prefs.prefs[ownerA.ID] = 0
	router := newProgressRouter(entries, prefs)

	seedEntry(t, entries, ownerA, `{"date":"2025-02-05","morning_time_in":"08:00","morning_time_out":"12:00"}`)

	got := getProgress(t, router, ownerA)
	if got.Percent != 0 {
		t.Errorf("percent = %v, want 0 for a zero target", got.Percent)
	}
}

func TestProgressIgnoresOtherOwners(t *testing.T) {
	entries := newFakeEntryStore()
	router := newProgressRouter(entries, newFakePreferenceStore())

	seedEntry(t, entries, ownerB, `{"date":"2025-02-05","morning_time_in":"08:00","morning_time_out":"12:00"}`)

	got := getProgress(t, router, ownerA)
	if got.CompletedHours != 0 {
		t.Errorf("completed_hours = %v, want 0", got.CompletedHours)
	}
}

func TestGetPreferencesDefault(t *testing.T) {
	router := newProgressRouter(newFakeEntryStore(), newFakePreferenceStore())

	req := withUser(httptest.NewRequest(http.MethodGet, "/preferences", nil), ownerA)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var got map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["required_hours"] != 500 {
		t.Errorf("required_hours = %v, want 500", got["required_hours"])
	}
}

func TestUpdatePreferences(t *testing.T) {
	prefs := newFakePreferenceStore()
	router := newProgressRouter(newFakeEntryStore(), prefs)

	req := withUser(httptest.NewRequest(http.MethodPut, "/preferences", strings.NewReader(`{"required_hours":320}`)), ownerA)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body)
	}
	if prefs.prefs[ownerA.ID] != 320 {
		t.Errorf("stored target = %v, want 320", prefs.prefs[ownerA.ID])
	}
}

func TestUpdatePreferencesValidation(t *testing.T) {
	router := newProgressRouter(newFakeEntryStore(), newFakePreferenceStore())

	tests := []struct {
		name string
		body string
	}{
		{name: "missing field", body: `{}`},
		{name: "negative", body: `{"required_hours":-1}`},
		{name: "malformed", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withUser(httptest.NewRequest(http.MethodPut, "/preferences", strings.NewReader(tt.body)), ownerA)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}
