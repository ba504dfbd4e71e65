package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crisisvoices/backend/internal/middleware"
	"github.com/crisisvoices/backend/pkg/response"
)

// ConversationHandler serves polling-based direct messages
type ConversationHandler struct {
	conversationService ConversationService
	logger              *zap.Logger
}

func NewConversationHandler(conversationService ConversationService, logger *zap.Logger) *ConversationHandler {
	return &ConversationHandler{
		conversationService: conversationService,
		logger:              logger,
	}
}

type StartConversationRequest struct {
	TargetUserID string `json:"targetUserId"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

// Start opens the conversation with another user, or returns the existing one
func (h *ConversationHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "not authenticated")
		return
	}

	var req StartConversationRequest
	if !bindJSON(w, r, &req) {
		return
	}

	targetID, err := uuid.Parse(req.TargetUserID)
	if err != nil {
		response.BadRequest(w, "invalid target user id")
		return
	}

	conv, err := h.conversationService.StartConversation(r.Context(), userID, targetID)
	if err != nil {
		writeError(w, h.logger, err, "failed to start conversation")
		return
	}

	response.OK(w, conv)
}

// List returns the caller's conversations, most recently active first
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "not authenticated")
		return
	}

	convs, err := h.conversationService.ListConversations(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err, "failed to get conversations")
		return
	}

	response.OK(w, convs)
}

// GetMessages returns messages newer than ?since, oldest first
func (h *ConversationHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "not authenticated")
		return
	}

	convID, err := uuid.Parse(chi.URLParam(r, "conversationId"))
	if err != nil {
		response.BadRequest(w, "invalid conversation id")
		return
	}

	var since time.Time
	if s := r.URL.Query().Get("since"); s != "" {
		since, err = time.Parse(time.RFC3339, s)
		if err != nil {
			response.BadRequest(w, "since must be an RFC3339 timestamp")
			return
		}
	}

	var limit int
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil {
			response.BadRequest(w, "limit must be an integer")
			return
		}
	}

	messages, err := h.conversationService.GetMessages(r.Context(), convID, userID, since, limit)
	if err != nil {
		writeError(w, h.logger, err, "failed to get messages")
		return
	}

	response.OK(w, messages)
}

func (h *ConversationHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "not authenticated")
		return
	}

	convID, err := uuid.Parse(chi.URLParam(r, "conversationId"))
	if err != nil {
		response.BadRequest(w, "invalid conversation id")
		return
	}

	var req SendMessageRequest
	if !bindJSON(w, r, &req) {
		return
	}

	msg, err := h.conversationService.SendMessage(r.Context(), convID, userID, req.Content)
	if err != nil {
		writeError(w, h.logger, err, "failed to send message")
		return
	}

	response.Created(w, msg)
}
