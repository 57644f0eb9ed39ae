package geocode_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/listing-valuator/internal/geocode"
)

func TestClient_Geocode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		zip     string
		handler http.HandlerFunc
		wantErr error
		wantLat float64
		wantLon float64
	}{
		{
			name: "resolves zip",
			zip:  "10001",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "10001", r.URL.Query().Get("zip"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"latitude": 40.7506, "longitude": -73.9972}`))
			},
			wantLat: 40.7506,
			wantLon: -73.9972,
		},
		{
			name: "trims whitespace",
			zip:  " 94105 ",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "94105", r.URL.Query().Get("zip"))
				_, _ = w.Write([]byte(`{"latitude": 37.7898, "longitude": -122.3942}`))
			},
			wantLat: 37.7898,
			wantLon: -122.3942,
		},
		{
			name: "404 is unknown zip",
			zip:  "00000",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: geocode.ErrUnknownZIP,
		},
		{
			name: "missing coordinates is unknown zip",
			zip:  "99999",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"latitude": 40.0}`))
			},
			wantErr: geocode.ErrUnknownZIP,
		},
		{
			name: "500 is unavailable",
			zip:  "10001",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`boom`))
			},
			wantErr: geocode.ErrUnavailable,
		},
		{
			name: "malformed body is unavailable",
			zip:  "10001",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			wantErr: geocode.ErrUnavailable,
		},
		{
			name:    "empty zip never calls out",
			zip:     "",
			handler: func(http.ResponseWriter, *http.Request) { t.Error("unexpected request") },
			wantErr: geocode.ErrUnknownZIP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			t.Cleanup(srv.Close)

			c := geocode.NewClient(srv.URL, geocode.WithRateLimit(100, 10))
			p, err := c.Geocode(context.Background(), tt.zip)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, p)
			assert.InDelta(t, tt.wantLat, p.Lat, 1e-9)
			assert.InDelta(t, tt.wantLon, p.Lon, 1e-9)
		})
	}
}

func TestClient_Geocode_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := geocode.NewClient(srv.URL, geocode.WithHTTPClient(&http.Client{Timeout: time.Second}))
	_, err := c.Geocode(context.Background(), "10001")
	require.ErrorIs(t, err, geocode.ErrUnavailable)
}

func TestClient_Geocode_RateLimitCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"latitude": 1, "longitude": 2}`))
	}))
	t.Cleanup(srv.Close)

	c := geocode.NewClient(srv.URL, geocode.WithRateLimit(0.001, 1))

	_, err := c.Geocode(context.Background(), "10001")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Geocode(ctx, "10001")
	require.ErrorIs(t, err, geocode.ErrUnavailable)
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	_, err := geocode.Disabled{}.Geocode(context.Background(), "10001")
	require.ErrorIs(t, err, geocode.ErrUnavailable)
}
