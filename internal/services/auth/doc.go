// Package auth owns the login state machine: logged out, authenticating,
// logged in. Credential checks are delegated to an Authenticator
// collaborator; the only thing persisted here is the remember-me flag.
package auth
