// Package store provides file-based persistence for vendorhub's small
// durable state: the remember-me preference slot and the in-progress
// registration draft. Data is serialised as JSON under the configured
// home directory; writes go through a temp file and rename so a crash
// never leaves a half-written file. All methods are concurrency-safe via
// internal locking.
package store
