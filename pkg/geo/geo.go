// Package geo computes great-circle distances between coordinates.
package geo

import "math"

// EarthRadiusMiles is the mean Earth radius used by Distance.
const EarthRadiusMiles = 3959.0

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// NewPoint returns a Point when both coordinates are known, nil otherwise.
func NewPoint(lat, lon *float64) *Point {
	if lat == nil || lon == nil {
		return nil
	}
	return &Point{Lat: *lat, Lon: *lon}
}

// Distance returns the Haversine distance between a and b in miles.
func Distance(a, b Point) float64 {
	if a == b {
		return 0
	}

	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Rounding can push h past 1 for near-antipodal points.
	h = math.Min(math.Max(h, 0), 1)

	return 2 * EarthRadiusMiles * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceBetween returns the distance between two optional points, or nil
// when either is unknown.
func DistanceBetween(a, b *Point) *float64 {
	if a == nil || b == nil {
		return nil
	}
	d := Distance(*a, *b)
	return &d
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
