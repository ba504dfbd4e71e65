package auth

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/api/idtoken"
)

func TestGoogleAuthVerifier_TriesEveryAudience(t *testing.T) {
	var seen []string
	v := NewGoogleAuthVerifierWith([]string{"web", " ", "android"}, func(_ context.Context, _ string, aud string) (*idtoken.Payload, error) {
		seen = append(seen, aud)
		if aud != "android" {
			return nil, errors.New("audience mismatch")
		}
		return &idtoken.Payload{Claims: map[string]interface{}{
			"sub":            "g-123",
			"email":          "Reporter@Example.org",
			"email_verified": true,
			"name":           "Reporter",
		}}, nil
	})

	u, err := v.VerifyIDToken(context.Background(), "token")
	if err != nil {
		t.Fatalf("VerifyIDToken: %v", err)
	}
	if len(seen) != 2 {
		t.Errorf("validated against %v, want web then android", seen)
	}
	if u.GoogleID != "g-123" || u.Email != "reporter@example.org" || !u.EmailVerified {
		t.Errorf("user = %+v", u)
	}
}

func TestGoogleAuthVerifier_Errors(t *testing.T) {
	ok := func(claims map[string]interface{}) PayloadValidator {
		return func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Claims: claims}, nil
		}
	}

	tests := []struct {
		name     string
		verifier *GoogleAuthVerifier
		want     error
	}{
		{"not configured", NewGoogleAuthVerifierWith(nil, ok(nil)), ErrGoogleDisabled},
		{"rejected", NewGoogleAuthVerifierWith([]string{"web"}, func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("bad signature")
		}), ErrInvalidGoogleToken},
		{"missing sub", NewGoogleAuthVerifierWith([]string{"web"}, ok(map[string]interface{}{"email": "a@b.c"})), ErrInvalidGoogleToken},
		{"missing email", NewGoogleAuthVerifierWith([]string{"web"}, ok(map[string]interface{}{"sub": "x"})), ErrGoogleEmailMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.verifier.VerifyIDToken(context.Background(), "token")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
