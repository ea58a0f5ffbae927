// Package registration orchestrates a registration attempt: validate,
// serialize, dispatch, interpret. It guarantees at most one in-flight
// submission and that no code path leaves the pipeline stuck in the
// submitting state.
package registration
