package geo

import (
	"github.com/crisisvoices/backend/pkg/validator"
)

// DefaultMaxDistanceKm is the verification radius used when the caller does
// not supply one.
const DefaultMaxDistanceKm = 50.0

// VerificationResult is the outcome of a location verification.
type VerificationResult struct {
	IsWithinRange bool    `json:"isWithinRange"`
	Distance      float64 `json:"distance"`
	MaxDistance   float64 `json:"maxDistance"`
}

// Verify decides whether user lies within maxDistanceKm of target.
//
// A zero maxDistanceKm selects DefaultMaxDistanceKm. The range comparison is
// inclusive and uses the unrounded distance; the reported distance is
// rounded to two decimals. Out-of-range coordinates or a negative radius
// yield validator.ValidationErrors.
func Verify(user, target Point, maxDistanceKm float64) (VerificationResult, error) {
	var errs validator.ValidationErrors
	if !validator.ValidLat(user.Lat) {
		errs.Add("userLat", "must be between -90 and 90")
	}
	if !validator.ValidLng(user.Lng) {
		errs.Add("userLng", "must be between -180 and 180")
	}
	if !validator.ValidLat(target.Lat) {
		errs.Add("targetLat", "must be between -90 and 90")
	}
	if !validator.ValidLng(target.Lng) {
		errs.Add("targetLng", "must be between -180 and 180")
	}
	if maxDistanceKm < 0 {
		errs.Add("maxDistance", "must not be negative")
	}
	if errs.HasErrors() {
		return VerificationResult{}, errs
	}

	if maxDistanceKm == 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}

	d := DistanceKm(user, target)
	return VerificationResult{
		IsWithinRange: d <= maxDistanceKm,
		Distance:      Round2(d),
		MaxDistance:   maxDistanceKm,
	}, nil
}

// WithinRadius reports whether p lies within radiusKm of center. Invalid
// coordinates are never within range.
func WithinRadius(p, center Point, radiusKm float64) bool {
	if !p.Valid() || !center.Valid() {
		return false
	}
	return DistanceKm(p, center) <= radiusKm
}
