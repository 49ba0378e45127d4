package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/platform/observability"
	"github.com/nikolayk812/storefront/internal/port"
)

// SessionStore holds the session and mirrors it to local storage.
// Storage is written first, memory follows only when storage succeeded.
type SessionStore struct {
	storage port.KeyValueStore
	logger  *zap.Logger

	writeMu sync.Mutex

	mu      sync.RWMutex
	session domain.Session

	subs subscribers[domain.Session]
}

func NewSessionStore(storage port.KeyValueStore, logger *zap.Logger) (*SessionStore, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}

	return &SessionStore{
		storage: storage,
		logger:  observability.OrNop(logger),
	}, nil
}

// Initialize restores a persisted session. It never fails: unreadable
// storage leaves the session signed out.
func (s *SessionStore) Initialize(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	session, err := s.readStored(ctx)
	if err != nil {
		s.logger.Warn("restore session", zap.Error(err))
		return
	}

	s.setLocked(session)
}

func (s *SessionStore) readStored(ctx context.Context) (domain.Session, error) {
	profile, hasProfile, err := s.storage.Get(ctx, domain.SessionProfileKey)
	if err != nil {
		return domain.Session{}, fmt.Errorf("storage.Get[%s]: %w", domain.SessionProfileKey, err)
	}

	token, hasToken, err := s.storage.Get(ctx, domain.SessionTokenKey)
	if err != nil {
		return domain.Session{}, fmt.Errorf("storage.Get[%s]: %w", domain.SessionTokenKey, err)
	}

	if !hasProfile && !hasToken {
		return domain.Session{}, nil
	}
	if !hasProfile || !hasToken || token == "" {
		return domain.Session{}, fmt.Errorf("stored session is incomplete")
	}

	var user domain.User
	if err := json.Unmarshal([]byte(profile), &user); err != nil {
		return domain.Session{}, fmt.Errorf("json.Unmarshal profile: %w", err)
	}
	if user.ID == "" {
		return domain.Session{}, fmt.Errorf("stored profile has no id")
	}

	return domain.Session{Authenticated: true, User: &user, Token: token}, nil
}

func (s *SessionStore) Login(ctx context.Context, user domain.User, token string) error {
	if user.ID == "" {
		return fmt.Errorf("user ID is empty")
	}
	if token == "" {
		return fmt.Errorf("token is empty")
	}

	profile, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("json.Marshal profile: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// profile and token are not written atomically
	if err := s.storage.Set(ctx, domain.SessionProfileKey, string(profile)); err != nil {
		s.logger.Error("persist profile", zap.String("user_id", user.ID), zap.Error(err))
		return fmt.Errorf("storage.Set[%s]: %w", domain.SessionProfileKey, err)
	}
	if err := s.storage.Set(ctx, domain.SessionTokenKey, token); err != nil {
		s.logger.Error("persist token", zap.String("user_id", user.ID), zap.Error(err))
		return fmt.Errorf("storage.Set[%s]: %w", domain.SessionTokenKey, err)
	}

	s.setLocked(domain.Session{Authenticated: true, User: &user, Token: token})
	return nil
}

// Logout wipes storage, then memory. On storage failure memory is left as is.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.storage.Delete(ctx, domain.SessionProfileKey, domain.SessionTokenKey); err != nil {
		s.logger.Error("clear stored session", zap.Error(err))
		return fmt.Errorf("storage.Delete: %w", err)
	}

	s.setLocked(domain.Session{})
	return nil
}

// ClearSession drops a session the API no longer accepts.
func (s *SessionStore) ClearSession(ctx context.Context) error {
	return s.Logout(ctx)
}

// ContinueAsGuest signs in without an identity. Nothing is persisted.
func (s *SessionStore) ContinueAsGuest() {
	s.set(domain.Session{Authenticated: true})
}

func (s *SessionStore) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.session)
}

func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

func (s *SessionStore) Subscribe(fn func(domain.Session)) (unsubscribe func()) {
	return s.subs.add(fn)
}

func (s *SessionStore) set(session domain.Session) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.setLocked(session)
}

// setLocked requires writeMu.
func (s *SessionStore) setLocked(session domain.Session) {
	s.mu.Lock()
	s.session = session
	snapshot := cloneSession(session)
	s.mu.Unlock()

	s.subs.notify(snapshot)
}

func cloneSession(session domain.Session) domain.Session {
	if session.User != nil {
		user := *session.User
		session.User = &user
	}
	return session
}
