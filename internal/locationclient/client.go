// Package locationclient verifies a device position against the API and
// falls back to the same computation locally when the server cannot answer.
package locationclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/crisisvoices/backend/internal/geo"
	"github.com/crisisvoices/backend/pkg/response"
	"github.com/crisisvoices/backend/pkg/validator"
)

const (
	verifyPath     = "/api/v1/location/verify"
	defaultTimeout = 10 * time.Second
)

// APIError is a client error reported by the server
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("location verify: %d %s: %s", e.Status, e.Code, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default client, which times out after 10s
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type verifyRequest struct {
	UserLat     float64 `json:"userLat"`
	UserLng     float64 `json:"userLng"`
	TargetLat   float64 `json:"targetLat"`
	TargetLng   float64 `json:"targetLng"`
	MaxDistance float64 `json:"maxDistance,omitempty"`
}

type verifyResponse struct {
	Success bool                   `json:"success"`
	Data    geo.VerificationResult `json:"data"`
	Error   *response.ErrorInfo    `json:"error"`
}

// Verify asks the server whether user lies within maxDistanceKm of target.
// Transport failures and 5xx answers are resolved locally with geo.Verify;
// 4xx answers are returned as validator.ValidationErrors or *APIError.
func (c *Client) Verify(ctx context.Context, user, target geo.Point, maxDistanceKm float64) (geo.VerificationResult, error) {
	result, err := c.remoteVerify(ctx, user, target, maxDistanceKm)
	if err == nil {
		return result, nil
	}

	var apiErr *APIError
	var verrs validator.ValidationErrors
	if errors.As(err, &apiErr) || errors.As(err, &verrs) {
		return geo.VerificationResult{}, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return geo.VerificationResult{}, ctxErr
	}

	c.logger.Warn("location server unreachable, verifying locally", zap.Error(err))
	return geo.Verify(user, target, maxDistanceKm)
}

// VerifyCurrentPosition acquires the device position within timeout and
// verifies it against target. Acquisition failures surface as
// *geo.LocationUnavailableError.
func (c *Client) VerifyCurrentPosition(ctx context.Context, loc geo.Locator, target geo.Point, maxDistanceKm float64, timeout time.Duration) (geo.VerificationResult, error) {
	pos, err := geo.AcquirePosition(ctx, loc, timeout)
	if err != nil {
		return geo.VerificationResult{}, err
	}
	return c.Verify(ctx, pos, target, maxDistanceKm)
}

func (c *Client) remoteVerify(ctx context.Context, user, target geo.Point, maxDistanceKm float64) (geo.VerificationResult, error) {
	body, err := json.Marshal(verifyRequest{
		UserLat:     user.Lat,
		UserLng:     user.Lng,
		TargetLat:   target.Lat,
		TargetLng:   target.Lng,
		MaxDistance: maxDistanceKm,
	})
	if err != nil {
		return geo.VerificationResult{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+verifyPath, bytes.NewReader(body))
	if err != nil {
		return geo.VerificationResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return geo.VerificationResult{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return geo.VerificationResult{}, fmt.Errorf("server error: %s", resp.Status)
	}

	// Below 500 the answer is final, readable or not.
	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return geo.VerificationResult{}, &APIError{Status: resp.StatusCode, Message: resp.Status}
	}

	if resp.StatusCode != http.StatusOK || !out.Success {
		if out.Error == nil {
			return geo.VerificationResult{}, &APIError{Status: resp.StatusCode, Message: resp.Status}
		}
		if len(out.Error.Fields) > 0 {
			return geo.VerificationResult{}, out.Error.Fields
		}
		return geo.VerificationResult{}, &APIError{Status: resp.StatusCode, Code: out.Error.Code, Message: out.Error.Message}
	}

	return out.Data, nil
}
