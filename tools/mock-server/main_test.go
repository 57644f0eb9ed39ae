package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestFixture(t *testing.T) map[string]coordinates {
	t.Helper()
	zips, err := loadFixture(filepath.Join("testdata", "zips.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return zips
}

func TestLoadFixture(t *testing.T) {
	zips := loadTestFixture(t)
	if len(zips) == 0 {
		t.Fatal("expected zips in fixture")
	}
	c, ok := zips["10001"]
	if !ok {
		t.Fatal("expected 10001 in fixture")
	}
	if c.Latitude < 40 || c.Latitude > 41 {
		t.Errorf("latitude=%v, want about 40.75", c.Latitude)
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := loadFixture(filepath.Join("testdata", "nope.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestGeocodeHandler(t *testing.T) {
	handler := geocodeHandler(testLogger(), loadTestFixture(t), "99999")

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{name: "known zip", query: "?zip=10001", wantStatus: http.StatusOK},
		{name: "unknown zip", query: "?zip=00000", wantStatus: http.StatusNotFound},
		{name: "simulated outage", query: "?zip=99999", wantStatus: http.StatusServiceUnavailable},
		{name: "missing zip", query: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/zip"+tt.query, http.NoBody)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status=%d, want %d", w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content-type=%q, want application/json", ct)
			}
		})
	}
}

func TestGeocodeHandler_Body(t *testing.T) {
	handler := geocodeHandler(testLogger(), loadTestFixture(t), "")
	req := httptest.NewRequest(http.MethodGet, "/zip?zip=94103", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var c coordinates
	if err := json.NewDecoder(w.Body).Decode(&c); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if c.Latitude != 37.7726 || c.Longitude != -122.4099 {
		t.Errorf("got %+v, want 37.7726,-122.4099", c)
	}
}
