// Package main implements a mock ZIP geocoding server for local development.
// It answers GET /zip?zip=<zip> from a JSON fixture so signups get
// coordinates without a real geocoding provider.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

type coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/zips.json", "path to ZIP coordinate fixture")
	failZIP := flag.String("fail-zip", "", "ZIP code that answers 503, for exercising geocoder outages")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "zips", len(fixture))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /zip", geocodeHandler(logger, fixture, *failZIP))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock geocoder", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (map[string]coordinates, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var zips map[string]coordinates
	if err := json.Unmarshal(data, &zips); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return zips, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func geocodeHandler(logger *slog.Logger, zips map[string]coordinates, failZIP string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zip := r.URL.Query().Get("zip")
		w.Header().Set("Content-Type", "application/json")

		if zip == "" {
			w.WriteHeader(http.StatusBadRequest)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "zip is required"})
			return
		}

		if failZIP != "" && zip == failZIP {
			logger.Warn("simulating outage", "zip", zip)
			w.WriteHeader(http.StatusServiceUnavailable)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "temporarily unavailable"})
			return
		}

		c, ok := zips[zip]
		if !ok {
			logger.Info("unknown zip", "zip", zip)
			w.WriteHeader(http.StatusNotFound)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "unknown zip"})
			return
		}

		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(c)
		logger.Info("geocoded", "zip", zip, "latitude", c.Latitude, "longitude", c.Longitude)
	}
}
