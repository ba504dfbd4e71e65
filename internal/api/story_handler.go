package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/crisisvoices/backend/internal/domain"
	"github.com/crisisvoices/backend/internal/middleware"
	"github.com/crisisvoices/backend/pkg/response"
)

type StoryHandler struct {
	storyService StoryService
	logger       *zap.Logger
}

func NewStoryHandler(storyService StoryService, logger *zap.Logger) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
		logger:       logger,
	}
}

// ModerateRequest is the body of POST /stories/{storyId}/moderate. The story
// id comes from the path.
type ModerateRequest struct {
	Action      domain.ModerationDecision `json:"action"`
	Notes       string                    `json:"notes,omitempty"`
	ModeratorID string                    `json:"moderatorId"`
}

// SubmitStory handles a story submission. Authentication is optional; when
// present the submitter's user id is recorded alongside ip and user agent.
func (h *StoryHandler) SubmitStory(w http.ResponseWriter, r *http.Request) {
	var candidate domain.StoryCandidate
	if !bindJSON(w, r, &candidate) {
		return
	}

	prov := domain.Provenance{
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		prov.UserID = &userID
	}

	story, err := h.storyService.SubmitStory(r.Context(), candidate, prov)
	if err != nil {
		writeError(w, h.logger, err, "failed to submit story")
		return
	}

	response.Created(w, story.Public())
}

// GetCrisisStories lists the approved stories of a crisis
func (h *StoryHandler) GetCrisisStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.storyService.GetApprovedStoriesByCrisis(r.Context(), chi.URLParam(r, "crisisId"))
	if err != nil {
		writeError(w, h.logger, err, "failed to get stories")
		return
	}

	response.OK(w, stories)
}

// GetPendingStories returns the moderation queue
func (h *StoryHandler) GetPendingStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.storyService.GetPendingStories(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to get pending stories")
		return
	}

	response.OK(w, stories)
}

func (h *StoryHandler) ModerateStory(w http.ResponseWriter, r *http.Request) {
	var req ModerateRequest
	if !bindJSON(w, r, &req) {
		return
	}

	story, err := h.storyService.UpdateStoryModerationStatus(r.Context(), domain.ModerationAction{
		StoryID:     chi.URLParam(r, "storyId"),
		Action:      req.Action,
		Notes:       req.Notes,
		ModeratorID: req.ModeratorID,
	})
	if err != nil {
		writeError(w, h.logger, err, "failed to moderate story")
		return
	}

	response.OK(w, story)
}

func (h *StoryHandler) LikeStory(w http.ResponseWriter, r *http.Request) {
	story, err := h.storyService.LikeStory(r.Context(), chi.URLParam(r, "storyId"))
	if err != nil {
		writeError(w, h.logger, err, "failed to like story")
		return
	}

	response.OK(w, story)
}
