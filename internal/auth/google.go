package auth

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/api/idtoken"
)

var (
	ErrInvalidGoogleToken = errors.New("invalid Google ID token")
	ErrGoogleEmailMissing = errors.New("email not found in Google token")
	ErrGoogleDisabled     = errors.New("google sign-in is not configured")
)

// GoogleUser represents the user info from Google
type GoogleUser struct {
	GoogleID      string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// PayloadValidator checks an ID token for one audience
type PayloadValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleAuthVerifier handles Google ID token verification
type GoogleAuthVerifier struct {
	clientIDs []string
	validate  PayloadValidator
}

// NewGoogleAuthVerifier creates a verifier that accepts tokens issued to any
// of clientIDs.
func NewGoogleAuthVerifier(clientIDs []string) *GoogleAuthVerifier {
	return NewGoogleAuthVerifierWith(clientIDs, idtoken.Validate)
}

func NewGoogleAuthVerifierWith(clientIDs []string, validate PayloadValidator) *GoogleAuthVerifier {
	ids := make([]string, 0, len(clientIDs))
	for _, id := range clientIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return &GoogleAuthVerifier{clientIDs: ids, validate: validate}
}

// VerifyIDToken verifies a Google ID token and returns the user info
func (v *GoogleAuthVerifier) VerifyIDToken(ctx context.Context, idToken string) (*GoogleUser, error) {
	if !v.IsConfigured() {
		return nil, ErrGoogleDisabled
	}

	var payload *idtoken.Payload
	for _, clientID := range v.clientIDs {
		p, err := v.validate(ctx, idToken, clientID)
		if err == nil {
			payload = p
			break
		}
	}
	if payload == nil {
		return nil, ErrInvalidGoogleToken
	}

	return userFromClaims(payload.Claims)
}

func userFromClaims(claims map[string]interface{}) (*GoogleUser, error) {
	u := &GoogleUser{}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidGoogleToken
	}
	u.GoogleID = sub

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, ErrGoogleEmailMissing
	}
	u.Email = strings.ToLower(email)

	if verified, ok := claims["email_verified"].(bool); ok {
		u.EmailVerified = verified
	}
	if name, ok := claims["name"].(string); ok {
		u.Name = name
	}
	if picture, ok := claims["picture"].(string); ok {
		u.Picture = picture
	}

	return u, nil
}

// IsConfigured returns true if Google OAuth is configured
func (v *GoogleAuthVerifier) IsConfigured() bool {
	return len(v.clientIDs) > 0
}
