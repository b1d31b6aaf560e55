package store

import (
	"context"
	"sync"

	"github.com/bookvite/storefront/internal/client/api"
	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/logging"
)

// State is the session lifecycle position. The machine cycles for the
// lifetime of the process; there is no terminal state.
type State int

const (
	// StateIdentityPending is the initial state: an identity probe is
	// dispatched immediately at process start and the outcome is unknown.
	StateIdentityPending State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateIdentityPending:
		return "identity-pending"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Snapshot is a read-only copy of the session at one instant. Views and
// the access gate consume snapshots, never the live Session.
type Snapshot struct {
	State State
	User  models.User
	// FetchInProgress is true while the identity probe is unresolved;
	// guarded pages render a loading placeholder instead of flashing a
	// denied/allowed state.
	FetchInProgress bool
	// Busy is true while a sign-in/up/out or password change is in flight.
	Busy bool
	// Err is the message from the last failed session operation, or "".
	Err string
}

// LoggedIn reports whether the session holds an authenticated identity.
func (s Snapshot) LoggedIn() bool {
	return s.State == StateAuthenticated
}

// Session is the process-wide authentication state. Exactly one instance
// exists; it is handed to views explicitly rather than imported as a
// singleton.
type Session struct {
	mu    sync.Mutex
	state State
	user  models.User
	busy  bool
	err   string

	client api.Client
	log    logging.Logger

	// onAuthenticated fires once per transition into StateAuthenticated
	// (the cart fetch: a cart is only meaningful for an identity).
	onAuthenticated func(ctx context.Context)
}

// NewSession builds the session in StateIdentityPending. Call Probe
// immediately after construction; onAuthenticated may be nil.
func NewSession(client api.Client, log logging.Logger, onAuthenticated func(ctx context.Context)) *Session {
	return &Session{
		state:           StateIdentityPending,
		client:          client,
		log:             log.With("store", "session"),
		onAuthenticated: onAuthenticated,
	}
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		State:           s.state,
		User:            s.user,
		FetchInProgress: s.state == StateIdentityPending,
		Busy:            s.busy,
		Err:             s.err,
	}
}

func (s *Session) setBusy(busy bool) {
	s.mu.Lock()
	s.busy = busy
	if busy {
		s.err = ""
	}
	s.mu.Unlock()
}

func (s *Session) recordErr(err error) {
	s.mu.Lock()
	s.busy = false
	s.err = err.Error()
	s.mu.Unlock()
}

func (s *Session) authenticate(ctx context.Context, user models.User) {
	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = user
	s.busy = false
	s.err = ""
	s.mu.Unlock()

	if s.onAuthenticated != nil {
		s.onAuthenticated(ctx)
	}
}

func (s *Session) reset() {
	s.mu.Lock()
	s.state = StateAnonymous
	s.user = models.User{}
	s.busy = false
	s.mu.Unlock()
}

// Probe resolves the initial identity: IDENTITY_PENDING -> AUTHENTICATED
// if a valid ambient credential is present, IDENTITY_PENDING -> ANONYMOUS
// otherwise. A probe failure is not an error to surface; it simply means
// nobody is signed in.
func (s *Session) Probe(ctx context.Context) {
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.log.Debug(ctx, "identity probe resolved anonymous", "reason", err.Error())
		s.reset()
		return
	}
	s.log.Info(ctx, "identity probe resolved", "email", user.Email, "role", user.Role)
	s.authenticate(ctx, *user)
}

// SignIn authenticates with the API. On success the session transitions to
// StateAuthenticated and the authenticated side effect fires.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	s.setBusy(true)
	user, err := s.client.SignIn(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		s.recordErr(err)
		return err
	}
	s.authenticate(ctx, *user)
	return nil
}

// SignUp registers a new account and signs it in.
func (s *Session) SignUp(ctx context.Context, email, password string) error {
	s.setBusy(true)
	user, err := s.client.SignUp(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		s.recordErr(err)
		return err
	}
	s.authenticate(ctx, *user)
	return nil
}

// SignOut clears the identity: AUTHENTICATED -> ANONYMOUS. The server
// invalidates the ambient credential; the local state resets only on
// success.
func (s *Session) SignOut(ctx context.Context) error {
	s.setBusy(true)
	if err := s.client.SignOut(ctx); err != nil {
		s.recordErr(err)
		return err
	}
	s.reset()
	return nil
}

// ChangePassword updates the password and, as its terminal step, signs the
// user out so the next action re-authenticates with the new credential.
func (s *Session) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	s.setBusy(true)
	err := s.client.UpdatePassword(ctx, models.PasswordChange{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	if err != nil {
		s.recordErr(err)
		return err
	}
	s.setBusy(false)
	return s.SignOut(ctx)
}
