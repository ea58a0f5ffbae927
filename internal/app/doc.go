// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment (with .env support) and builds
// the concrete stores, API client and high-level services, exposing them
// via the Wire struct for commands to use.
package app
