package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/crisisvoices/backend/internal/domain"
)

func TestNextStatus(t *testing.T) {
	from := []domain.ModerationStatus{domain.StatusPending, domain.StatusApproved, domain.StatusRejected, domain.StatusFlagged}
	want := map[domain.ModerationDecision]domain.ModerationStatus{
		domain.DecisionApprove: domain.StatusApproved,
		domain.DecisionReject:  domain.StatusRejected,
		domain.DecisionFlag:    domain.StatusFlagged,
	}

	for _, f := range from {
		for d, w := range want {
			got, err := domain.NextStatus(f, d)
			if err != nil {
				t.Errorf("NextStatus(%s, %s): %v", f, d, err)
				continue
			}
			if got != w {
				t.Errorf("NextStatus(%s, %s) = %s, want %s", f, d, got, w)
			}
		}
	}
}

func TestNextStatus_Invalid(t *testing.T) {
	if _, err := domain.NextStatus(domain.StatusPending, "archive"); !errors.Is(err, domain.ErrInvalidModeration) {
		t.Errorf("unknown action: err = %v", err)
	}
	if _, err := domain.NextStatus("deleted", domain.DecisionApprove); !errors.Is(err, domain.ErrInvalidModeration) {
		t.Errorf("unknown status: err = %v", err)
	}
}

func TestApplyModeration_RecordsDecision(t *testing.T) {
	s := &domain.Story{ID: "s1", ModerationStatus: domain.StatusApproved, ModerationNotes: "old"}
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	err := s.ApplyModeration(domain.ModerationAction{StoryID: "s1", Action: domain.DecisionReject, ModeratorID: "mod-2"}, at)
	if err != nil {
		t.Fatal(err)
	}
	if s.ModerationStatus != domain.StatusRejected || s.ModeratedBy != "mod-2" || s.ModerationNotes != "" {
		t.Errorf("story = %+v", s)
	}
	if s.ModeratedAt == nil || !s.ModeratedAt.Equal(at) {
		t.Errorf("moderatedAt = %v", s.ModeratedAt)
	}
}

func TestModerationAction_Validate(t *testing.T) {
	tests := []struct {
		name   string
		action domain.ModerationAction
		field  string
	}{
		{"missing moderator", domain.ModerationAction{StoryID: "s1", Action: domain.DecisionApprove, ModeratorID: "  "}, "moderatorId"},
		{"missing story", domain.ModerationAction{Action: domain.DecisionApprove, ModeratorID: "m"}, "storyId"},
		{"unknown action", domain.ModerationAction{StoryID: "s1", Action: "delete", ModeratorID: "m"}, "action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.action
			fields := fieldsOf(t, a.Validate())
			if _, ok := fields[tt.field]; !ok {
				t.Errorf("errors %v do not mention %q", fields, tt.field)
			}
		})
	}

	ok := domain.ModerationAction{StoryID: " s1 ", Action: domain.DecisionFlag, ModeratorID: "m", Notes: " check "}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid action rejected: %v", err)
	}
	if ok.StoryID != "s1" || ok.Notes != "check" {
		t.Errorf("action not normalized: %+v", ok)
	}
}
