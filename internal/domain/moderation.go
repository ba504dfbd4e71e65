package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/crisisvoices/backend/pkg/validator"
)

type ModerationDecision string

const (
	DecisionApprove ModerationDecision = "approve"
	DecisionReject  ModerationDecision = "reject"
	DecisionFlag    ModerationDecision = "flag"
)

// Status returns the moderation status a decision leads to
func (d ModerationDecision) Status() (ModerationStatus, bool) {
	switch d {
	case DecisionApprove:
		return StatusApproved, true
	case DecisionReject:
		return StatusRejected, true
	case DecisionFlag:
		return StatusFlagged, true
	}
	return "", false
}

// ModerationAction is a moderator's decision about one story
type ModerationAction struct {
	StoryID     string             `json:"storyId" validate:"notblank"`
	Action      ModerationDecision `json:"action" validate:"oneof=approve reject flag"`
	Notes       string             `json:"notes,omitempty" validate:"max=2000"`
	ModeratorID string             `json:"moderatorId" validate:"notblank,max=200"`
}

// Validate checks the action before it reaches the store
func (a *ModerationAction) Validate() error {
	a.StoryID = strings.TrimSpace(a.StoryID)
	a.ModeratorID = strings.TrimSpace(a.ModeratorID)
	a.Notes = strings.TrimSpace(a.Notes)
	if errs := validator.Struct(a); errs.HasErrors() {
		return errs
	}
	return nil
}

// NextStatus computes the transition for a story currently in from.
//
// pending moves to whichever status the decision names. A story that has
// already been decided may be re-moderated; the latest decision wins.
func NextStatus(from ModerationStatus, decision ModerationDecision) (ModerationStatus, error) {
	if !from.Valid() {
		return "", fmt.Errorf("%w: unknown current status %q", ErrInvalidModeration, from)
	}
	to, ok := decision.Status()
	if !ok {
		return "", fmt.Errorf("%w: unknown action %q", ErrInvalidModeration, decision)
	}
	return to, nil
}

// ApplyModeration transitions s according to action and records who made
// the decision and when.
func (s *Story) ApplyModeration(action ModerationAction, at time.Time) error {
	next, err := NextStatus(s.ModerationStatus, action.Action)
	if err != nil {
		return err
	}
	s.ModerationStatus = next
	s.ModerationNotes = action.Notes
	s.ModeratedBy = action.ModeratorID
	t := at
	s.ModeratedAt = &t
	return nil
}
