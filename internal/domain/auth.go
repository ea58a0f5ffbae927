package domain

// Credentials are transient login inputs; never persisted in raw form.
type Credentials struct {
	Email      string
	Password   string
	RememberMe bool
}

// AuthResult is what the authentication collaborator returns on success.
// The user profile is opaque to this client; it is surfaced unchanged.
type AuthResult struct {
	Token string
	User  map[string]any
}

// Session is the session manager's externally visible state. RememberMe
// is the only durably persisted part; the token stays with the
// collaborator layer.
type Session struct {
	Authenticated bool
	User          map[string]any
	RememberMe    bool
}

// RecoveryIntent is a composed administrator notification asking for a
// manual credential reset. It is handed to a notification channel and
// never stored.
type RecoveryIntent struct {
	// To is the administrator contact the request is addressed to.
	To string
	// Requester is the account email the reset is being asked for.
	Requester string
	Subject   string
	Body      string
}
