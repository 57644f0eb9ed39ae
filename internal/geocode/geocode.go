// Package geocode resolves US ZIP codes to coordinates through an external
// HTTP geocoding service.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/donaldgifford/listing-valuator/internal/metrics"
	"github.com/donaldgifford/listing-valuator/pkg/geo"
)

var (
	// ErrUnavailable is returned when the service cannot be reached or fails.
	ErrUnavailable = errors.New("geocoder unavailable")
	// ErrUnknownZIP is returned when the service has no coordinates for a ZIP.
	ErrUnknownZIP = errors.New("unknown zip code")
)

// Geocoder resolves a ZIP code to a point.
type Geocoder interface {
	Geocode(ctx context.Context, zip string) (*geo.Point, error)
}

// Disabled is a Geocoder that always reports the service unavailable.
type Disabled struct{}

// Geocode implements Geocoder.
func (Disabled) Geocode(context.Context, string) (*geo.Point, error) {
	return nil, ErrUnavailable
}

const maxErrorBody = 512

// Client is an HTTP Geocoder. The service is queried as
// GET <url>?zip=<zip> and answers {"latitude": .., "longitude": ..}.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimit bounds outbound requests per second.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewClient creates a geocoding client for the given endpoint.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geocodeResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Geocode implements Geocoder.
func (c *Client) Geocode(ctx context.Context, zip string) (*geo.Point, error) {
	p, err := c.geocode(ctx, strings.TrimSpace(zip))

	switch {
	case err == nil:
		metrics.GeocodeRequestsTotal.WithLabelValues("ok").Inc()
	case errors.Is(err, ErrUnknownZIP):
		metrics.GeocodeRequestsTotal.WithLabelValues("unknown_zip").Inc()
	default:
		metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
	}

	return p, err
}

func (c *Client) geocode(ctx context.Context, zip string) (*geo.Point, error) {
	if zip == "" {
		return nil, ErrUnknownZIP
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit: %w", ErrUnavailable, err)
		}
	}

	u := c.baseURL + "?" + url.Values{"zip": {zip}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrUnknownZIP, zip)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w (status %d): %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var gr geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("%w: parsing response: %w", ErrUnavailable, err)
	}

	p := geo.NewPoint(gr.Latitude, gr.Longitude)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownZIP, zip)
	}
	return p, nil
}
