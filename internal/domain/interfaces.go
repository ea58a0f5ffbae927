package domain

import "context"

// RegistrationSubmitter sends a serialized registration payload to the
// backend. A non-2xx answer or transport failure surfaces as a
// *RequestError.
type RegistrationSubmitter interface {
	SubmitRegistration(ctx context.Context, payload map[string]any) (map[string]any, error)
}

// Authenticator checks credentials against whatever backs logins: the
// remote API, a token service, or a local mock in tests. Invalid
// credentials and service faults both surface as *RequestError so the
// session manager can tell them apart by Kind.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (AuthResult, error)
}

// PrefStore is a durable key-value slot, the localStorage analogue. A
// missing key is (value "", ok false), not an error.
type PrefStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// DraftStore persists the in-progress registration form between runs.
type DraftStore interface {
	Save(form *Form) error
	Load() (*Form, bool, error)
	Clear() error
}

// Notifier delivers a recovery intent to the administrator channel.
type Notifier interface {
	Send(intent RecoveryIntent) error
}
