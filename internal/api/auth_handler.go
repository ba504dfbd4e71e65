package api

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/crisisvoices/backend/internal/auth"
	"github.com/crisisvoices/backend/internal/domain"
	"github.com/crisisvoices/backend/internal/middleware"
	"github.com/crisisvoices/backend/pkg/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// RefreshRequest represents the token refresh request body
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// GoogleLoginRequest represents the Google sign-in request body
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// GoogleLogin exchanges a Google ID token for a session
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req GoogleLoginRequest
	if !bindJSON(w, r, &req) {
		return
	}

	req.IDToken = strings.TrimSpace(req.IDToken)
	if req.IDToken == "" {
		response.BadRequest(w, "idToken is required")
		return
	}

	result, err := h.authService.GoogleLogin(r.Context(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidGoogleToken):
			response.Unauthorized(w, "invalid Google token")
		case errors.Is(err, auth.ErrGoogleEmailMissing):
			response.BadRequest(w, "email not available from Google account")
		default:
			writeError(w, h.logger, err, "Google login failed")
		}
		return
	}

	if result.IsNewUser {
		h.logger.Info("user signed up", zap.String("user_id", result.User.ID.String()))
	}
	response.OK(w, result)
}

// Refresh issues a new token pair for a valid refresh token
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !bindJSON(w, r, &req) {
		return
	}

	if req.RefreshToken == "" {
		response.BadRequest(w, "refreshToken is required")
		return
	}

	result, err := h.authService.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			response.Unauthorized(w, "refresh token has expired")
		case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, domain.ErrUserNotFound):
			response.Unauthorized(w, "invalid refresh token")
		default:
			writeError(w, h.logger, err, "token refresh failed")
		}
		return
	}

	response.OK(w, result)
}

// Me returns the current authenticated user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "not authenticated")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err, "failed to get user")
		return
	}

	response.OK(w, user.ToResponse())
}
