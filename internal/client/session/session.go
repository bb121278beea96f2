// Package session owns the client's authentication state for the lifetime of
// the application: the current user, the bearer token, and the transitions
// between anonymous and authenticated.
//
// The state machine is
//
//	StateInit → StateChecking → {StateAuthenticated, StateAnonymous}
//
// with StateAuthenticated → StateAnonymous on logout or verification failure
// and StateAnonymous → StateAuthenticated on successful login/register.
// Login while already authenticated simply re-runs the flow.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"phonestock/internal/client/api"
	"phonestock/internal/client/models"
	"phonestock/internal/client/repositories/creds"
	"phonestock/internal/common"
	"phonestock/internal/logging"
)

// State is the session lifecycle phase.
type State string

const (
	StateInit          State = "init"
	StateChecking      State = "checking"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Manager coordinates authentication against the API and mirrors the result
// into durable credential storage. Construct one per application instance;
// there is no ambient singleton, so tests build isolated managers.
type Manager struct {
	client api.Client
	creds  creds.Repository
	log    logging.Logger

	mu      sync.Mutex
	busy    bool
	state   State
	user    *models.User
	lastErr string
}

func NewManager(client api.Client, credsRepo creds.Repository, log logging.Logger) *Manager {
	return &Manager{
		client: client,
		creds:  credsRepo,
		log:    log,
		state:  StateInit,
	}
}

// State returns the current lifecycle phase.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns a copy of the current user, or nil when anonymous.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// LastError returns the human-readable message of the last failed auth call,
// or "" when the last call succeeded.
func (m *Manager) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// ClearError dismisses the stored error message.
func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastErr = ""
}

// Guard gates access to a view. While the initial verification is still
// running it returns common.ErrSessionLoading so the caller renders nothing
// (no flash of protected content). Once settled, an unmet requirement yields
// common.ErrLoginRequired or common.ErrAlreadyAuthenticated; otherwise nil.
func (m *Manager) Guard(requireAuth bool) error {
	switch m.State() {
	case StateInit, StateChecking:
		return common.ErrSessionLoading
	case StateAuthenticated:
		if !requireAuth {
			return common.ErrAlreadyAuthenticated
		}
	default:
		if requireAuth {
			return common.ErrLoginRequired
		}
	}
	return nil
}

// acquire marks an auth call in flight. A second concurrent call is rejected
// with common.ErrBusy instead of interleaving against the same session state.
func (m *Manager) acquire() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return common.ErrBusy
	}
	m.busy = true
	return nil
}

func (m *Manager) release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = false
}

// Login authenticates against the server and, on success, persists the token
// and user profile so a restart can restore the session. On failure the
// session stays anonymous, nothing is written, and the server's message is
// kept in LastError.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return common.NewValidationError("email and password are required")
	}

	if err := m.acquire(); err != nil {
		return err
	}
	defer m.release()

	ar, err := m.client.Login(ctx, email, password)
	if err != nil {
		m.setError(err)
		return err
	}

	return m.establish(ctx, ar)
}

// Register creates an account and signs the user in. Required-field and
// password-confirmation checks fail fast with a ValidationError before any
// network call.
func (m *Manager) Register(ctx context.Context, name, email, password, confirm, role string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" || role == "" {
		return common.NewValidationError("name, email, password and role are required")
	}
	if password != confirm {
		return common.NewValidationError("passwords do not match")
	}

	if err := m.acquire(); err != nil {
		return err
	}
	defer m.release()

	ar, err := m.client.Register(ctx, name, email, password, role)
	if err != nil {
		m.setError(err)
		return err
	}

	return m.establish(ctx, ar)
}

// VerifyOnLoad restores a persisted session at startup. When stored
// credentials exist their token is checked against the server and the user
// profile is refreshed from the server's response, not the stale stored
// copy. Any failure — expired token, 401, network error, malformed response —
// silently clears the stored credentials and lands in StateAnonymous: an
// invalid token must never leave a false "authenticated" state, and an
// expired one is expected rather than exceptional, so no error surfaces.
func (m *Manager) VerifyOnLoad(ctx context.Context) error {
	m.setState(StateChecking)

	token, storedUser, err := m.loadStored(ctx)
	if err != nil {
		return m.reset(ctx, fmt.Errorf("reading stored credentials: %w", err))
	}
	if token == "" || storedUser == nil {
		return m.reset(ctx, nil)
	}

	// A token that is already expired by its own claims cannot pass remote
	// verification; skip the round trip.
	if tokenExpired(token) {
		m.log.Info(ctx, "stored token expired, clearing credentials")
		return m.reset(ctx, nil)
	}

	m.client.SetToken(token)
	user, err := m.client.VerifyToken(ctx)
	if err != nil {
		m.log.Info(ctx, "stored token failed verification, clearing credentials", "reason", err.Error())
		return m.reset(ctx, nil)
	}

	if err := m.persist(ctx, token, user); err != nil {
		return m.reset(ctx, err)
	}

	m.mu.Lock()
	m.user = user
	m.state = StateAuthenticated
	m.lastErr = ""
	m.mu.Unlock()
	return nil
}

// Logout invalidates the server-side session on a best-effort basis — a
// network failure is logged, never blocking — and unconditionally clears
// local credentials and session state.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.client.Logout(ctx); err != nil {
		m.log.Warn(ctx, "server logout failed, clearing local session anyway", "reason", err.Error())
	}
	return m.reset(ctx, nil)
}

// establish persists credentials and flips the session to authenticated.
// Persistence failures roll everything back so the invariant "both entries
// stored or neither" holds.
func (m *Manager) establish(ctx context.Context, ar *api.AuthResponse) error {
	if err := m.persist(ctx, ar.Token, &ar.User); err != nil {
		_ = m.reset(ctx, nil)
		m.setError(err)
		return err
	}

	m.client.SetToken(ar.Token)

	m.mu.Lock()
	user := ar.User
	m.user = &user
	m.state = StateAuthenticated
	m.lastErr = ""
	m.mu.Unlock()
	return nil
}

func (m *Manager) setError(err error) {
	m.mu.Lock()
	m.lastErr = err.Error()
	if m.state == StateInit || m.state == StateChecking {
		m.state = StateAnonymous
	}
	m.mu.Unlock()
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// reset clears both durable entries, the transport token, and the in-memory
// session, landing in StateAnonymous. cause, when non-nil, is returned after
// cleanup completes.
func (m *Manager) reset(ctx context.Context, cause error) error {
	if err := m.creds.Delete(ctx, common.TokenStorageKey); err != nil {
		m.log.Error(ctx, "failed to remove stored token", "reason", err.Error())
	}
	if err := m.creds.Delete(ctx, common.UserStorageKey); err != nil {
		m.log.Error(ctx, "failed to remove stored user", "reason", err.Error())
	}

	m.client.ClearToken()

	m.mu.Lock()
	m.user = nil
	m.state = StateAnonymous
	m.mu.Unlock()
	return cause
}

// persist writes the two durable credential entries. A failure on the second
// write removes the first so no partial state survives.
func (m *Manager) persist(ctx context.Context, token string, user *models.User) error {
	if err := m.creds.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
		return fmt.Errorf("storing token: %w", err)
	}

	data, err := json.Marshal(user)
	if err == nil {
		err = m.creds.Set(ctx, common.UserStorageKey, data)
	}
	if err != nil {
		_ = m.creds.Delete(ctx, common.TokenStorageKey)
		return fmt.Errorf("storing user profile: %w", err)
	}
	return nil
}

func (m *Manager) loadStored(ctx context.Context) (string, *models.User, error) {
	tokenBytes, err := m.creds.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", nil, err
	}
	userBytes, err := m.creds.Get(ctx, common.UserStorageKey)
	if err != nil {
		return "", nil, err
	}
	if len(tokenBytes) == 0 || len(userBytes) == 0 {
		return "", nil, nil
	}

	var user models.User
	if err := json.Unmarshal(userBytes, &user); err != nil {
		// A corrupt profile entry is treated like missing credentials.
		return "", nil, nil
	}
	return string(tokenBytes), &user, nil
}

// tokenExpired inspects the token's own exp claim without verifying the
// signature (verification is the server's job). Opaque or claim-less tokens
// report false and go through the remote check.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
