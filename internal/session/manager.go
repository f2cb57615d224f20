package session

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

// Navigator receives route changes driven by auth state (login page after
// sign-out, role-based landing page after sign-in).
type Navigator func(route string)

// Routes the manager navigates to.
const (
	RouteLogin           = "/login"
	RouteAdminDashboard  = "/admin/dashboard"
	RouteClienteProjetos = "/cliente/projetos"
)

// Manager is the single source of truth for "who is logged in". It keeps
// the loaded profile, reacts to auth events and revalidates the session
// when the client regains focus, while avoiding redundant profile fetches:
// a SIGNED_IN event with a user already loaded is ignored, TOKEN_REFRESHED
// never triggers a fetch, and revalidation only does a cheap session check.
type Manager struct {
	auth     ports.AuthService
	userRepo ports.UserRepository
	navigate Navigator
	log      *zap.Logger

	mu      sync.RWMutex
	user    *domain.User
	session *domain.Session
	loading bool

	// Reentrancy guard: at most one profile load at a time.
	isLoadingUser atomic.Bool
}

func NewManager(auth ports.AuthService, userRepo ports.UserRepository, navigate Navigator, log *zap.Logger) *Manager {
	if navigate == nil {
		navigate = func(string) {}
	}
	return &Manager{
		auth:     auth,
		userRepo: userRepo,
		navigate: navigate,
		log:      log,
	}
}

// SignIn authenticates, loads the profile and navigates by role. Errors
// propagate typed to the caller, unlike background loads.
func (m *Manager) SignIn(ctx context.Context, email, senha string) (*domain.User, error) {
	m.setLoading(true)
	defer m.setLoading(false)

	session, user, err := m.auth.Login(ctx, email, senha)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.session = session
	m.user = user
	m.mu.Unlock()

	if user.IsAdmin() {
		m.navigate(RouteAdminDashboard)
	} else {
		m.navigate(RouteClienteProjetos)
	}
	return user, nil
}

// SignOut clears state and navigates to login. Backend errors are logged,
// never surfaced.
func (m *Manager) SignOut(ctx context.Context) {
	m.mu.Lock()
	session := m.session
	m.user = nil
	m.session = nil
	m.mu.Unlock()

	if session != nil {
		if err := m.auth.SignOut(ctx, session.AccessToken); err != nil {
			m.log.Warn("Sign-out call failed", zap.Error(err))
		}
	}
	m.navigate(RouteLogin)
}

// HandleEvent processes an auth state change emitted by the backend.
func (m *Manager) HandleEvent(ctx context.Context, event domain.AuthEvent, session *domain.Session) {
	switch event {
	case domain.AuthEventSignedOut:
		// Authoritative: clear immediately.
		m.mu.Lock()
		m.user = nil
		m.session = nil
		m.mu.Unlock()
		m.navigate(RouteLogin)

	case domain.AuthEventSignedIn:
		m.mu.Lock()
		m.session = session
		alreadyLoaded := m.user != nil
		m.mu.Unlock()
		// A signed-in event with a profile already loaded is a refresh
		// artifact, not a new login. Do not fetch again.
		if alreadyLoaded || session == nil {
			return
		}
		m.loadUser(ctx, session.UserID)

	case domain.AuthEventTokenRefreshed:
		// Token rotation only. The profile did not change.
		if session != nil {
			m.mu.Lock()
			m.session = session
			m.mu.Unlock()
		}
	}
}

// RefreshUser re-fetches the profile for the current session without
// touching the loading flag, used after profile edits.
func (m *Manager) RefreshUser(ctx context.Context) {
	m.mu.RLock()
	session := m.session
	m.mu.RUnlock()
	if session == nil {
		return
	}

	user, err := m.userRepo.GetByID(ctx, session.UserID)
	if err != nil || user == nil {
		m.log.Warn("Profile refresh failed", zap.Error(err))
		return
	}
	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
}

// Revalidate runs when the client regains foreground with a user loaded.
// It performs only a cheap session-existence check, never a profile fetch;
// an invalid session clears state and redirects to login.
func (m *Manager) Revalidate(ctx context.Context) {
	m.mu.RLock()
	session := m.session
	loaded := m.user != nil
	m.mu.RUnlock()
	if !loaded || session == nil {
		return
	}

	if _, err := m.auth.GetSession(ctx, session.AccessToken); err != nil {
		m.log.Info("Session no longer valid, signing out")
		m.mu.Lock()
		m.user = nil
		m.session = nil
		m.mu.Unlock()
		m.navigate(RouteLogin)
	}
}

// loadUser fetches the profile, guarded against overlapping loads. A fetch
// failure is treated as "not logged in" and logged, not thrown.
func (m *Manager) loadUser(ctx context.Context, userID string) {
	if !m.isLoadingUser.CompareAndSwap(false, true) {
		return
	}
	defer m.isLoadingUser.Store(false)

	m.setLoading(true)
	defer m.setLoading(false)

	user, err := m.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		m.log.Warn("Profile load failed, clearing session", zap.Error(err))
		m.mu.Lock()
		m.user = nil
		m.session = nil
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
}

// CurrentUser returns the loaded profile, or nil when logged out.
func (m *Manager) CurrentUser() *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Session returns the active session, or nil.
func (m *Manager) Session() *domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
