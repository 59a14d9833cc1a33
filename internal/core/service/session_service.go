package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

// SessionService implements login, logout, and session resolution. It is the
// single writer of session state: Login and Logout are the only mutators, and
// a mutex serializes them the way the original event loop serialized the
// browser's store.
type SessionService struct {
	auth     ports.AuthAPI
	repo     ports.SessionRepository
	recorder ports.ActivityRecorder
	log      zerolog.Logger

	mu sync.Mutex
}

func NewSessionService(auth ports.AuthAPI, repo ports.SessionRepository, recorder ports.ActivityRecorder, log zerolog.Logger) *SessionService {
	return &SessionService{auth: auth, repo: repo, recorder: recorder, log: log}
}

// Login authenticates against the backend and durably stores the resulting
// session under sid. The backend's AuthenticationError propagates untouched.
func (s *SessionService) Login(ctx context.Context, sid, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	roles := make([]domain.Role, 0, len(result.Roles))
	for _, r := range result.Roles {
		roles = append(roles, domain.ParseRole(r))
	}

	session := &domain.Session{
		Username:  result.Username,
		Roles:     roles,
		Token:     result.Token,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Save(ctx, sid, session); err != nil {
		s.log.Error().Err(err).Msg("failed to persist session")
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionStore, err)
	}

	s.log.Info().Str("username", session.Username).Msg("signed in")
	s.recorder.Record(domain.Activity{
		Kind:      domain.ActivityLogin,
		Username:  session.Username,
		Timestamp: time.Now().UTC(),
	})
	return session, nil
}

// Register passes a new-account request through to the backend.
func (s *SessionService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	return s.auth.Register(ctx, in)
}

// Logout clears the stored session unconditionally. Logging out an already
// signed-out sid succeeds.
func (s *SessionService) Logout(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.Load(ctx, sid)
	if err == nil && session != nil {
		s.recorder.Record(domain.Activity{
			Kind:      domain.ActivityLogout,
			Username:  session.Username,
			Timestamp: time.Now().UTC(),
		})
	}

	if err := s.repo.Delete(ctx, sid); err != nil {
		s.log.Error().Err(err).Msg("failed to clear session")
		return fmt.Errorf("%w: %v", domain.ErrSessionStore, err)
	}
	return nil
}

// Resolve loads the session for sid. A store failure yields StateResolving:
// the gate shows a placeholder rather than misreading an outage as a
// sign-out.
func (s *SessionService) Resolve(ctx context.Context, sid string) (domain.SessionState, *domain.Session, error) {
	if sid == "" {
		return domain.StateAnonymous, nil, nil
	}
	session, err := s.repo.Load(ctx, sid)
	if err != nil {
		s.log.Warn().Err(err).Msg("session store unavailable")
		return domain.StateResolving, nil, err
	}
	if session == nil || !session.IsAuthenticated() {
		return domain.StateAnonymous, nil, nil
	}
	return domain.StateAuthenticated, session, nil
}
