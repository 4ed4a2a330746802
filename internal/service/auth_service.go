package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dom/securecart/internal/auth"
	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AuthService orchestrates password hashing, token issuance and the session
// store. It returns raw bearer tokens to the transport layer; only token
// digests ever reach the repositories.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

type SignUpInput struct {
	Email           string
	Password        string
	PasswordConfirm string
}

type SignInInput struct {
	Email    string
	Password string
}

// SignInResult carries the raw bearer token for the cookie plus a routing
// hint; whether an admin lands on the dashboard is the transport layer's
// decision, not an auth concern.
type SignInResult struct {
	User    *domain.User
	Token   string
	IsAdmin bool
}

// normalizeEmail fixes the uniqueness policy: emails are compared and
// stored lowercase.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*domain.User, error) {
	if input.Password != input.PasswordConfirm {
		return nil, domain.Validation(domain.MsgPasswordMismatch)
	}
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domain.Validation("email and password are required")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if exists {
		return nil, domain.Conflict(domain.MsgEmailInUse)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, domain.Internal(err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      false,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two concurrent sign-ups can both pass the existence check; the
		// unique index decides the race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.Conflict(domain.MsgEmailInUse)
		}
		return nil, domain.Internal(err)
	}

	return user, nil
}

func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.Authentication(domain.MsgIncorrectCredentials)
		}
		return nil, domain.Internal(err)
	}

	// A corrupt stored hash verifies as false, which lands on the same
	// generic failure as a wrong password.
	if !auth.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, domain.Authentication(domain.MsgIncorrectCredentials)
	}

	token, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &SignInResult{User: user, Token: token, IsAdmin: user.IsAdmin}, nil
}

// createSession issues a fresh token, persists its digest with a 30-day
// expiry and returns the raw token. Each sign-in gets its own session row,
// so multi-device login works without any session merging.
func (s *AuthService) createSession(ctx context.Context, userID uint) (string, error) {
	token, err := auth.NewToken()
	if err != nil {
		return "", domain.Internal(err)
	}

	session := &domain.Session{
		ID:        auth.TokenDigest(token),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(auth.SessionLifetime),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		// Includes the cryptographically negligible digest collision;
		// surfaced rather than swallowed.
		return "", domain.Internal(err)
	}

	return token, nil
}

// ValidateSession resolves a raw bearer token to its session row. Missing
// and deleted sessions are indistinguishable to the caller. An expired
// session is deleted on this read and then reported as unauthenticated.
func (s *AuthService) ValidateSession(ctx context.Context, rawToken string) (*domain.Session, error) {
	if rawToken == "" {
		return nil, domain.Authentication(domain.MsgUnauthenticated)
	}

	id := auth.TokenDigest(rawToken)
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.Authentication(domain.MsgUnauthenticated)
		}
		return nil, domain.Internal(err)
	}

	if time.Now().UTC().After(session.ExpiresAt) {
		if err := s.sessionRepo.Delete(ctx, id); err != nil {
			return nil, domain.Internal(err)
		}
		return nil, domain.Authentication(domain.MsgUnauthenticated)
	}

	return session, nil
}

// RequireAdmin validates the session and checks the owning user's admin
// flag in one joined lookup. Invalid session and insufficient privilege
// collapse to the same error so the response does not reveal which check
// failed.
func (s *AuthService) RequireAdmin(ctx context.Context, rawToken string) (*domain.Session, error) {
	if rawToken == "" {
		return nil, domain.Authorization(domain.MsgUnauthenticated)
	}

	id := auth.TokenDigest(rawToken)
	session, isAdmin, err := s.sessionRepo.GetWithAdmin(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.Authorization(domain.MsgUnauthenticated)
		}
		return nil, domain.Internal(err)
	}

	if time.Now().UTC().After(session.ExpiresAt) {
		if err := s.sessionRepo.Delete(ctx, id); err != nil {
			return nil, domain.Internal(err)
		}
		return nil, domain.Authorization(domain.MsgUnauthenticated)
	}

	if !isAdmin {
		return nil, domain.Authorization(domain.MsgUnauthenticated)
	}

	return session, nil
}

// SignOut deletes the session behind rawToken. It must be authenticated:
// an invalid or expired token fails instead of blind-deleting.
func (s *AuthService) SignOut(ctx context.Context, rawToken string) error {
	session, err := s.ValidateSession(ctx, rawToken)
	if err != nil {
		return err
	}

	if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
		return domain.Internal(err)
	}

	log.Debug().Uint("user_id", session.UserID).Msg("session revoked")
	return nil
}

// GetUser loads the user owning a validated session.
func (s *AuthService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.Authentication(domain.MsgUnauthenticated)
		}
		return nil, domain.Internal(err)
	}
	return user, nil
}
