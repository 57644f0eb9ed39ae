package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_IdenticalPointsIsZero(t *testing.T) {
	t.Parallel()

	p := Point{Lat: 40.0, Lon: -75.0}
	assert.Zero(t, Distance(p, p))
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Point
	}{
		{"philadelphia to new york", Point{39.9526, -75.1652}, Point{40.7128, -74.0060}},
		{"across the antimeridian", Point{51.5, 179.5}, Point{51.5, -179.5}},
		{"equator to pole", Point{0, 0}, Point{90, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, Distance(tt.a, tt.b), Distance(tt.b, tt.a))
		})
	}
}

func TestDistance_KnownValues(t *testing.T) {
	t.Parallel()

	// Philadelphia to New York City is roughly 80 miles.
	d := Distance(Point{39.9526, -75.1652}, Point{40.7128, -74.0060})
	assert.InDelta(t, 80.6, d, 1.0)

	// One degree of latitude along a meridian.
	d = Distance(Point{40, -75}, Point{41, -75})
	assert.InDelta(t, 69.1, d, 0.1)

	// Quarter circumference from equator to pole.
	d = Distance(Point{0, 0}, Point{90, 0})
	assert.InDelta(t, EarthRadiusMiles*3.14159265/2, d, 0.01)
}

func TestNewPoint(t *testing.T) {
	t.Parallel()

	lat, lon := 40.0, -75.0
	p := NewPoint(&lat, &lon)
	require.NotNil(t, p)
	assert.Equal(t, Point{Lat: 40, Lon: -75}, *p)

	assert.Nil(t, NewPoint(nil, &lon))
	assert.Nil(t, NewPoint(&lat, nil))
}

func TestDistanceBetween(t *testing.T) {
	t.Parallel()

	a := &Point{Lat: 40, Lon: -75}
	b := &Point{Lat: 41, Lon: -75}

	d := DistanceBetween(a, b)
	require.NotNil(t, d)
	assert.InDelta(t, 69.1, *d, 0.1)

	assert.Nil(t, DistanceBetween(a, nil))
	assert.Nil(t, DistanceBetween(nil, b))
}

func TestDistance_NearAntipodalIsFinite(t *testing.T) {
	t.Parallel()

	halfCircumference := EarthRadiusMiles * math.Pi

	for lat := -89.99; lat <= 89.99; lat += 0.01 {
		for _, lon := range []float64{-170, 0, 10, 95.5} {
			a := Point{Lat: lat, Lon: lon}
			b := Point{Lat: -lat, Lon: lon - 180}
			d := Distance(a, b)
			require.False(t, math.IsNaN(d), "NaN distance between %v and %v", a, b)
			require.LessOrEqual(t, d, halfCircumference+1e-6)
		}
	}

	d := Distance(Point{-89.98, 10}, Point{89.98, -170})
	assert.InDelta(t, halfCircumference, d, 0.01)
}
