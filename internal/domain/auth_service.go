package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crisisvoices/backend/internal/auth"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// IDTokenVerifier exchanges a third-party ID token for the identity it asserts
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleUser, error)
}

// AuthService handles authentication business logic
type AuthService struct {
	repo       UserRepository
	jwt        *auth.JWTManager
	google     IDTokenVerifier
	moderators map[string]struct{}
	logger     *zap.Logger
}

// NewAuthService creates a new auth service. Accounts whose email appears in
// moderatorEmails are granted the moderator role when they sign in.
func NewAuthService(repo UserRepository, jwt *auth.JWTManager, google IDTokenVerifier, moderatorEmails []string, logger *zap.Logger) *AuthService {
	mods := make(map[string]struct{}, len(moderatorEmails))
	for _, e := range moderatorEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			mods[e] = struct{}{}
		}
	}
	return &AuthService{
		repo:       repo,
		jwt:        jwt,
		google:     google,
		moderators: mods,
		logger:     logger,
	}
}

// LoginResult represents the result of a sign-in
type LoginResult struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	IsNewUser    bool          `json:"isNewUser"`
}

// GoogleLogin handles Google ID token sign-in
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*LoginResult, error) {
	googleUser, err := s.google.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	isNewUser := false
	user, err := s.repo.GetUserByGoogleID(ctx, googleUser.GoogleID)
	if errors.Is(err, ErrUserNotFound) {
		user, err = s.repo.GetUserByEmail(ctx, googleUser.Email)
		switch {
		case err == nil:
			user, err = s.repo.LinkGoogleAccount(ctx, user.ID, googleUser.GoogleID)
		case errors.Is(err, ErrUserNotFound):
			var avatar *string
			if googleUser.Picture != "" {
				avatar = &googleUser.Picture
			}
			user, err = s.repo.CreateUser(ctx, CreateUserParams{
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				AvatarURL:     avatar,
				GoogleID:      googleUser.GoogleID,
				Role:          s.roleFor(googleUser.Email),
				EmailVerified: googleUser.EmailVerified,
			})
			isNewUser = true
		}
	}
	if err != nil {
		return nil, err
	}

	if want := s.roleFor(user.Email); want == RoleModerator && user.Role != RoleModerator {
		user, err = s.repo.UpdateUserRole(ctx, user.ID, RoleModerator)
		if err != nil {
			return nil, err
		}
		s.logger.Info("moderator role granted", zap.String("user_id", user.ID.String()))
	}

	pair, err := s.jwt.GenerateTokenPair(subjectOf(user))
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:         user.ToResponse(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		IsNewUser:    isNewUser,
	}, nil
}

// RefreshResult represents the result of token refresh
type RefreshResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken exchanges a refresh token for a new pair. The role is read
// from the stored user so demotions take effect on the next refresh.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	pair, err := s.jwt.GenerateTokenPair(subjectOf(user))
	if err != nil {
		return nil, err
	}
	return &RefreshResult{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *AuthService) roleFor(email string) Role {
	if _, ok := s.moderators[strings.ToLower(email)]; ok {
		return RoleModerator
	}
	return RoleUser
}

func subjectOf(u *User) auth.Subject {
	return auth.Subject{UserID: u.ID, Email: u.Email, Role: string(u.Role)}
}
