// Package geo holds the great-circle math and the location verification
// rules shared by the server and by clients computing a local fallback.
package geo

import (
	"math"

	"github.com/crisisvoices/backend/pkg/validator"
)

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// Point is a geographic position in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether p lies within the latitude and longitude ranges.
func (p Point) Valid() bool {
	return validator.ValidLat(p.Lat) && validator.ValidLng(p.Lng)
}

// DistanceKm returns the haversine distance between a and b in kilometers.
func DistanceKm(a, b Point) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*sinLng*sinLng

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
