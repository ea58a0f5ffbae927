// Package recovery composes administrator-notification intents for
// password resets. There is no self-service reset: this workflow only
// asks a human administrator to act, and performs no credential
// operation itself.
package recovery
