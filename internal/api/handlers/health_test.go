package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/listing-valuator/internal/api/handlers"
	"github.com/donaldgifford/listing-valuator/internal/store/mocks"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthz(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Healthz(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		storeErr   error
		cacheErr   error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "all dependencies reachable",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready","checks":{"cache":"ok","database":"ok"}}`,
		},
		{
			name:       "database down",
			storeErr:   errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{"cache":"ok","database":"unavailable"}}`,
		},
		{
			name:       "cache down",
			cacheErr:   errors.New("redis: i/o timeout"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{"cache":"unavailable","database":"ok"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			ms.EXPECT().Ping(mock.Anything).Return(tt.storeErr)

			h := handlers.NewHealthHandler(map[string]handlers.Pinger{
				"database": ms,
				"cache":    pingFunc(func(context.Context) error { return tt.cacheErr }),
			})

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			rec := httptest.NewRecorder()

			require.NoError(t, h.Readyz(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
