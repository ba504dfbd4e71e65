package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/crisisvoices/backend/internal/domain"
	"github.com/crisisvoices/backend/pkg/response"
	"github.com/crisisvoices/backend/pkg/validator"
)

// CrisisHandler serves crisis lookups, administration and location checks
type CrisisHandler struct {
	crisisService CrisisService
	logger        *zap.Logger
}

func NewCrisisHandler(crisisService CrisisService, logger *zap.Logger) *CrisisHandler {
	return &CrisisHandler{
		crisisService: crisisService,
		logger:        logger,
	}
}

// UpsertCrisisRequest is the body of PUT /crises/{crisisId}
type UpsertCrisisRequest struct {
	Name                  string                `json:"name"`
	Description           string                `json:"description"`
	Location              CrisisLocationRequest `json:"location"`
	Severity              domain.Severity       `json:"severity"`
	IsActive              *bool                 `json:"isActive"`
	AllowStorySubmissions *bool                 `json:"allowStorySubmissions"`
}

// CrisisLocationRequest requires explicit coordinates so an omitted location
// never lands the crisis on (0,0).
type CrisisLocationRequest struct {
	Lat  *float64 `json:"lat" validate:"required,lat"`
	Lng  *float64 `json:"lng" validate:"required,lng"`
	Name string   `json:"name"`
}

func (h *CrisisHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	crises, err := h.crisisService.GetAllActiveCrises(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to get crises")
		return
	}

	response.OK(w, crises)
}

func (h *CrisisHandler) Get(w http.ResponseWriter, r *http.Request) {
	crisis, err := h.crisisService.GetCrisisByID(r.Context(), chi.URLParam(r, "crisisId"))
	if err != nil {
		writeError(w, h.logger, err, "failed to get crisis")
		return
	}

	response.OK(w, crisis)
}

// Upsert creates or replaces a crisis. Omitted flags default to true.
func (h *CrisisHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertCrisisRequest
	if !bindJSON(w, r, &req) {
		return
	}
	if errs := validator.Struct(req); errs.HasErrors() {
		writeError(w, h.logger, errs, "invalid crisis")
		return
	}

	crisis, err := h.crisisService.UpsertCrisis(r.Context(), domain.Crisis{
		ID:          chi.URLParam(r, "crisisId"),
		Name:        req.Name,
		Description: req.Description,
		Location: domain.CrisisLocation{
			Lat:  *req.Location.Lat,
			Lng:  *req.Location.Lng,
			Name: req.Location.Name,
		},
		Severity:              req.Severity,
		IsActive:              boolOr(req.IsActive, true),
		AllowStorySubmissions: boolOr(req.AllowStorySubmissions, true),
	})
	if err != nil {
		writeError(w, h.logger, err, "failed to save crisis")
		return
	}

	response.OK(w, crisis)
}

// VerifyLocation checks a user position against an explicit target or a
// crisis location
func (h *CrisisHandler) VerifyLocation(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyLocationParams
	if !bindJSON(w, r, &req) {
		return
	}

	result, err := h.crisisService.VerifyLocation(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err, "failed to verify location")
		return
	}

	response.OK(w, result)
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
