// Package domain holds the core types shared across vendorhub: the
// registration form state, submission results, the session model, the
// recovery intent, and the capability interfaces the services depend on.
//
// Nothing in this package performs I/O. Concrete implementations of the
// capability interfaces live in internal/api, internal/store and
// internal/notify.
package domain
