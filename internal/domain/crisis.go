package domain

import (
	"context"
	"time"

	"github.com/crisisvoices/backend/internal/geo"
)

type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Valid reports whether s is one of the known severities
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

type CrisisLocation struct {
	Lat  float64 `json:"lat" validate:"lat"`
	Lng  float64 `json:"lng" validate:"lng"`
	Name string  `json:"name" validate:"max=200"`
}

// Point returns the registered position of the crisis
func (l CrisisLocation) Point() geo.Point {
	return geo.Point{Lat: l.Lat, Lng: l.Lng}
}

type Crisis struct {
	ID                    string         `json:"id" validate:"notblank,max=100"`
	Name                  string         `json:"name" validate:"notblank,max=200"`
	Description           string         `json:"description,omitempty" validate:"max=5000"`
	Location              CrisisLocation `json:"location"`
	Severity              Severity       `json:"severity" validate:"oneof=Low Medium High Critical"`
	IsActive              bool           `json:"isActive"`
	AllowStorySubmissions bool           `json:"allowStorySubmissions"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
}

// AcceptsStories reports whether new stories may be submitted for c
func (c *Crisis) AcceptsStories() bool {
	return c.IsActive && c.AllowStorySubmissions
}

type CrisisRepository interface {
	GetCrisisByID(ctx context.Context, id string) (*Crisis, error)
	GetAllActiveCrises(ctx context.Context) ([]*Crisis, error)
	UpsertCrisis(ctx context.Context, crisis *Crisis) (*Crisis, error)
}
