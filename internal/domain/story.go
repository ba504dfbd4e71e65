package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crisisvoices/backend/internal/geo"
)

type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
	StatusFlagged  ModerationStatus = "flagged"
)

// Valid reports whether s is a known moderation status
func (s ModerationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusFlagged:
		return true
	}
	return false
}

type StoryLocation struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Name     string  `json:"name,omitempty"`
	CrisisID string  `json:"crisisId"`
}

// Point returns the position the story was submitted from
func (l StoryLocation) Point() geo.Point {
	return geo.Point{Lat: l.Lat, Lng: l.Lng}
}

type Story struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	Content            string           `json:"content"`
	Excerpt            string           `json:"excerpt"`
	Author             string           `json:"author"`
	Images             []string         `json:"images"`
	Location           StoryLocation    `json:"location"`
	ModerationStatus   ModerationStatus `json:"moderationStatus"`
	ModerationNotes    string           `json:"moderationNotes,omitempty"`
	ModeratedBy        string           `json:"moderatedBy,omitempty"`
	ModeratedAt        *time.Time       `json:"moderatedAt,omitempty"`
	SubmittedAt        time.Time        `json:"submittedAt"`
	Likes              int64            `json:"likes"`
	IsLocationVerified bool             `json:"isLocationVerified"`

	// Provenance, written once at creation
	SubmitterIP        string     `json:"submitterIp,omitempty"`
	SubmitterUserAgent string     `json:"submitterUserAgent,omitempty"`
	SubmitterUserID    *uuid.UUID `json:"submitterUserId,omitempty"`
}

// Clone returns a deep copy of s
func (s *Story) Clone() *Story {
	c := *s
	c.Images = append([]string{}, s.Images...)
	if s.ModeratedAt != nil {
		t := *s.ModeratedAt
		c.ModeratedAt = &t
	}
	if s.SubmitterUserID != nil {
		id := *s.SubmitterUserID
		c.SubmitterUserID = &id
	}
	return &c
}

// Public returns a copy of s without submitter provenance
func (s *Story) Public() *Story {
	c := s.Clone()
	c.SubmitterIP = ""
	c.SubmitterUserAgent = ""
	c.SubmitterUserID = nil
	return c
}

// Provenance describes who submitted a story, as seen by the transport layer
type Provenance struct {
	IP        string
	UserAgent string
	UserID    *uuid.UUID
}

// StoryRepository owns every Story record. Implementations must apply each
// method atomically with respect to concurrent calls on the same story and
// return copies that callers may freely modify.
type StoryRepository interface {
	CreateStory(ctx context.Context, story *Story) (*Story, error)
	GetStoryByID(ctx context.Context, id string) (*Story, error)
	// ListStories returns stories with the given status in insertion order.
	// An empty crisisID matches every crisis.
	ListStories(ctx context.Context, status ModerationStatus, crisisID string) ([]*Story, error)
	ModerateStory(ctx context.Context, action ModerationAction, at time.Time) (*Story, error)
	IncrementLikes(ctx context.Context, id string) (*Story, error)
}

// ImageStore persists validated inline images and returns the URLs that
// replace them on the story. DeleteImages removes URLs returned by an earlier
// StoreImages whose story was never saved.
type ImageStore interface {
	StoreImages(ctx context.Context, images []string) ([]string, error)
	DeleteImages(ctx context.Context, urls []string)
}
