package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
	"github.com/louisbranch/tableside/internal/services/admin/apiclient"
	"github.com/louisbranch/tableside/internal/services/admin/storage"
)

// Authenticator talks to the remote API on behalf of the session.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (apiclient.LoginResult, error)
	CurrentUser(ctx context.Context, token string) (apiclient.User, error)
}

// Session is a point-in-time copy of the operator state.
type Session struct {
	Credential string
	Identity   *apiclient.User
}

// Authenticated reports whether both a credential and a confirmed identity
// are present.
func (s Session) Authenticated() bool {
	return s.Credential != "" && s.Identity != nil
}

// Store is the process-wide operator session.
type Store struct {
	persist storage.CredentialStore
	auth    Authenticator
	now     func() time.Time

	mu         sync.RWMutex
	credential string
	identity   *apiclient.User
}

// NewStore builds a session store. Both dependencies are required.
func NewStore(persist storage.CredentialStore, auth Authenticator) (*Store, error) {
	if persist == nil {
		return nil, errors.New("credential store is required")
	}
	if auth == nil {
		return nil, errors.New("authenticator is required")
	}
	return &Store{persist: persist, auth: auth, now: time.Now}, nil
}

// Restore loads the persisted credential. Identity stays absent until
// Validate or Login succeeds.
func (s *Store) Restore(ctx context.Context) (Session, error) {
	token, err := s.persist.GetCredential(ctx, storage.CredentialKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return s.Snapshot(), fmt.Errorf("restore credential: %w", err)
	}

	s.mu.Lock()
	s.credential = strings.TrimSpace(token)
	s.identity = nil
	s.mu.Unlock()

	return s.Snapshot(), nil
}

// Login exchanges email and password for a credential. Prior state is kept
// on any failure.
func (s *Store) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return s.Snapshot(), apperrors.New(apperrors.CodeValidation, "email and password are required")
	}

	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return s.Snapshot(), err
	}
	if err := s.persist.PutCredential(ctx, storage.CredentialKey, result.Token); err != nil {
		return s.Snapshot(), fmt.Errorf("persist credential: %w", err)
	}

	user := result.User
	s.mu.Lock()
	s.credential = result.Token
	s.identity = &user
	s.mu.Unlock()

	return s.Snapshot(), nil
}

// Validate confirms the current credential with the server. Any failure
// clears the session and returns a SESSION_INVALID error.
func (s *Store) Validate(ctx context.Context) error {
	token := s.Credential()
	if token == "" {
		return nil
	}

	if expired(token, s.now()) {
		return s.invalidate(ctx, token, errors.New("credential expired"))
	}

	user, err := s.auth.CurrentUser(ctx, token)
	if err != nil {
		return s.invalidate(ctx, token, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.credential != token {
		// Replaced by a concurrent login or logout.
		return nil
	}
	s.identity = &user
	return nil
}

// Logout clears the session in memory, then removes the persisted credential.
// It is safe to call when already signed out.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.credential = ""
	s.identity = nil
	s.mu.Unlock()

	if err := s.persist.DeleteCredential(ctx, storage.CredentialKey); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

// Credential returns the current bearer credential, or "" when absent.
func (s *Store) Credential() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := Session{Credential: s.credential}
	if s.identity != nil {
		user := *s.identity
		snapshot.Identity = &user
	}
	return snapshot
}

// Authenticated reports whether credential and identity are both present.
func (s *Store) Authenticated() bool {
	return s.Snapshot().Authenticated()
}

// invalidate fails closed for token. A credential replaced during the check
// is left alone.
func (s *Store) invalidate(ctx context.Context, token string, cause error) error {
	s.mu.Lock()
	replaced := s.credential != token
	if !replaced {
		s.credential = ""
		s.identity = nil
	}
	s.mu.Unlock()

	if !replaced {
		if err := s.persist.DeleteCredential(ctx, storage.CredentialKey); err != nil {
			cause = errors.Join(cause, fmt.Errorf("delete credential: %w", err))
		}
	}
	return apperrors.Wrap(apperrors.CodeSessionInvalid, "session is no longer valid", cause)
}

// expired reports whether token is a JWT whose exp claim is before now.
// Opaque tokens and tokens without exp are left to the server.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}
