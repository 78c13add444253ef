package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
	"github.com/Harshitk-cp/tenantdesk/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionService signs operators in and out. At most one session exists at a
// time; signing in replaces whatever session was current.
type SessionService struct {
	identities domain.IdentityStore
	sessions   domain.SessionStore
	logger     *zap.Logger

	now      func() time.Time
	newToken func() string
}

func NewSessionService(identities domain.IdentityStore, sessions domain.SessionStore, logger *zap.Logger) *SessionService {
	return &SessionService{
		identities: identities,
		sessions:   sessions,
		logger:     logger,
		now:        time.Now,
		newToken:   uuid.NewString,
	}
}

func (s *SessionService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	identity, err := s.identities.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Info("sign-in rejected", zap.String("email", email), zap.String("reason", "unknown email"))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup identity: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(identity.PasswordHash, []byte(password)); err != nil {
		s.logger.Info("sign-in rejected", zap.String("email", email), zap.String("reason", "bad password"))
		return nil, ErrInvalidCredentials
	}

	sess := &domain.Session{
		Token:       s.newToken(),
		ID:          identity.ID,
		Email:       identity.Email,
		Name:        identity.Name,
		Role:        identity.Role,
		TenantID:    identity.TenantID,
		Permissions: identity.Permissions.Clone(),
		SignedInAt:  s.now(),
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.logger.Info("signed in",
		zap.String("user_id", sess.ID),
		zap.String("role", string(sess.Role)),
		zap.String("tenant_id", sess.TenantID))
	return sess, nil
}

// SignOut clears the current session. Calling it with no session is a no-op.
func (s *SessionService) SignOut(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.Info("signed out")
	return nil
}

// Current returns the current session, or nil when nobody is signed in.
func (s *SessionService) Current(ctx context.Context) (*domain.Session, error) {
	sess, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sess, nil
}

// Authenticate resolves a bearer token to the current session.
func (s *SessionService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	sess, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil || subtle.ConstantTimeCompare([]byte(sess.Token), []byte(token)) != 1 {
		return nil, ErrUnauthenticated
	}
	return sess, nil
}
