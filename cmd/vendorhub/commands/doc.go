// Package commands defines the vendorhub CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - fields     Print the registration field schema
//   - validate   Check the draft (or a form file) against the schema
//   - register   Validate and submit the registration form
//   - login      Authenticate against the VendorHub API
//   - logout     Clear the local session state
//   - recover    Ask the administrator for a password reset
//   - health     Probe the API liveness endpoint
//
// # Implementation
//
// The root command loads configuration from the environment (.env
// honoured), applies flag overrides, and builds the dependency graph
// (stores, services, API client) before any subcommand runs, so handlers
// share one app context with timeouts and connection pooling.
package commands
