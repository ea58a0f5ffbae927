package auth

import (
	"context"
	"errors"
	"regexp"
	"sync"

	"github.com/sirupsen/logrus"

	"vendorhub/internal/domain"
	"vendorhub/internal/store"
)

// State is the session manager's position in the login state machine.
// LoggedOut and LoggedIn are the only stable states.
type State int

const (
	LoggedOut State = iota
	Authenticating
	LoggedIn
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged-out"
	case Authenticating:
		return "authenticating"
	case LoggedIn:
		return "logged-in"
	}
	return "unknown"
}

// FailureKind classifies login failures for programmatic handling.
type FailureKind int

const (
	// NoFailure: the login succeeded.
	NoFailure FailureKind = iota
	// FieldErrors: local input validation failed; the collaborator was
	// never contacted.
	FieldErrors
	// InvalidCredentials: the collaborator rejected the credentials.
	InvalidCredentials
	// ServiceError: the collaborator could not be reached or faulted.
	ServiceError
	// InProgress: another login attempt is still authenticating.
	InProgress
)

// Result is the outcome of one login attempt.
type Result struct {
	Success     bool
	Kind        FailureKind
	FieldErrors map[string]string
	// Message is the user-facing reason on failure; the collaborator's
	// own wording is preferred when it supplied one.
	Message string
}

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	genericAuthFailure    = "Invalid credentials or server error. Please try again."
	genericServiceFailure = "Authentication service is unavailable. Please try again later."
)

// Service is the session authentication manager. One instance exists per
// running application and it is the sole writer of the remember-me slot.
type Service struct {
	authenticator domain.Authenticator
	prefs         domain.PrefStore
	log           *logrus.Entry

	mu      sync.Mutex
	state   State
	session domain.Session
}

func New(authenticator domain.Authenticator, prefs domain.PrefStore, log *logrus.Entry) *Service {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{authenticator: authenticator, prefs: prefs, log: log}
}

// Login validates the credentials locally, then delegates to the
// collaborator. On success the remember-me flag is persisted (or an old
// one removed) before the session flips to logged in.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) Result {
	if errs := checkCredentials(creds); len(errs) > 0 {
		return Result{Kind: FieldErrors, FieldErrors: errs, Message: "Please correct the highlighted fields."}
	}

	s.mu.Lock()
	if s.state == Authenticating {
		s.mu.Unlock()
		return Result{Kind: InProgress, Message: "A login attempt is already in progress."}
	}
	s.state = Authenticating
	s.mu.Unlock()

	log := s.log.WithField("email", creds.Email)
	log.Info("authenticating")

	auth, err := s.authenticator.Authenticate(ctx, creds.Email, creds.Password)
	if err != nil {
		s.setState(LoggedOut, domain.Session{})
		return loginFailure(log, err)
	}

	if creds.RememberMe {
		if err := s.prefs.Set(store.RememberMeKey, "true"); err != nil {
			log.WithError(err).Warn("could not persist remember-me flag")
		}
	} else {
		if err := s.prefs.Remove(store.RememberMeKey); err != nil {
			log.WithError(err).Warn("could not clear remember-me flag")
		}
	}

	s.setState(LoggedIn, domain.Session{
		Authenticated: true,
		User:          auth.User,
		RememberMe:    creds.RememberMe,
	})
	log.Info("logged in")
	return Result{Success: true}
}

// Logout clears the in-memory session. The persisted remember-me flag is
// left untouched; it governs future auto-resume, which belongs to the
// bootstrap layer.
func (s *Service) Logout() {
	s.setState(LoggedOut, domain.Session{})
	s.log.Info("logged out")
}

// Session returns a snapshot of the current session.
func (s *Service) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// State reports the current state machine position.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Remembered reports whether a persisted remember-me flag is present.
func (s *Service) Remembered() (bool, error) {
	v, ok, err := s.prefs.Get(store.RememberMeKey)
	if err != nil {
		return false, err
	}
	return ok && v == "true", nil
}

func (s *Service) setState(state State, session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.session = session
}

func checkCredentials(creds domain.Credentials) map[string]string {
	errs := make(map[string]string)
	if creds.Email == "" {
		errs["email"] = "Email address is required"
	} else if !emailPattern.MatchString(creds.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if creds.Password == "" {
		errs["password"] = "Password is required"
	} else if len(creds.Password) < minPasswordLength {
		errs["password"] = "Password must be at least 6 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func loginFailure(log *logrus.Entry, err error) Result {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) && reqErr.Kind == domain.KindRejected {
		msg := reqErr.Detail
		if msg == "" {
			msg = genericAuthFailure
		}
		log.WithField("detail", reqErr.Detail).Warn("credentials rejected")
		return Result{Kind: InvalidCredentials, Message: msg}
	}
	log.WithError(err).Warn("authentication service error")
	return Result{Kind: ServiceError, Message: genericServiceFailure}
}
