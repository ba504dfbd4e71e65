package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/crisisvoices/backend/internal/auth"
	"github.com/crisisvoices/backend/internal/domain"
	"github.com/crisisvoices/backend/internal/geo"
	"github.com/crisisvoices/backend/internal/storage"
	"github.com/crisisvoices/backend/pkg/response"
	"github.com/crisisvoices/backend/pkg/validator"
)

// writeError maps a service error onto the response envelope. Anything not
// recognised is logged and answered with a generic 500 carrying fallback.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		response.ValidationFailed(w, verrs)
		return
	}

	switch {
	case errors.Is(err, domain.ErrStoryNotFound),
		errors.Is(err, domain.ErrCrisisNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrConversationNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, domain.ErrLocationNotVerified):
		response.Error(w, http.StatusForbidden, "LOCATION_NOT_VERIFIED", err.Error())
	case errors.Is(err, domain.ErrSubmissionsClosed):
		response.Error(w, http.StatusForbidden, "SUBMISSIONS_CLOSED", err.Error())
	case errors.Is(err, domain.ErrNotParticipant):
		response.Forbidden(w, err.Error())
	case errors.Is(err, domain.ErrInvalidModeration),
		errors.Is(err, storage.ErrInvalidDataURI):
		response.BadRequest(w, err.Error())
	case errors.Is(err, geo.ErrLocationUnavailable):
		response.ServiceUnavailable(w, "LOCATION_UNAVAILABLE", err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidGoogleToken),
		errors.Is(err, auth.ErrGoogleEmailMissing):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrGoogleDisabled):
		response.ServiceUnavailable(w, "GOOGLE_DISABLED", err.Error())
	default:
		logger.Error(fallback, zap.Error(err))
		response.InternalError(w, fallback)
	}
}
