package domain

import (
	"errors"
	"fmt"
)

// RequestError is returned by the API client when the server answered
// outside 2xx or the request never completed. Kind follows the same
// taxonomy the submission pipeline exposes: KindRejected for 4xx,
// KindUnavailable for 5xx and transport failures.
type RequestError struct {
	Kind   FailureKind
	Status int // 0 when no response was received
	Detail string
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request failed: %s", e.Detail)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
}

// Recovery workflow preconditions.
var (
	ErrMissingEmail     = errors.New("email address is required")
	ErrAlreadyRequested = errors.New("a recovery request for this address was already sent")
)
