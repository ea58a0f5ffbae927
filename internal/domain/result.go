package domain

// SubmissionState tracks a registration attempt through its lifecycle.
type SubmissionState int

const (
	Idle SubmissionState = iota
	Submitting
	Succeeded
	Failed
)

func (s SubmissionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// FailureKind classifies why a submission did not succeed, so callers can
// decide programmatically whether the user can correct and retry.
type FailureKind int

const (
	// KindValidation: client-detected field errors; the network was never
	// contacted.
	KindValidation FailureKind = iota
	// KindBusy: another submission is still in flight.
	KindBusy
	// KindRejected: the server answered 4xx; user-correctable.
	KindRejected
	// KindUnavailable: 5xx or transport failure; not user-correctable.
	KindUnavailable
)

func (k FailureKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBusy:
		return "busy"
	case KindRejected:
		return "rejected"
	case KindUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// SubmissionResult is the outcome of one registration attempt.
type SubmissionResult struct {
	State SubmissionState
	// Ref identifies the attempt in logs and receipts.
	Ref string
	// Body is the parsed server response on success.
	Body map[string]any
	// Kind and Detail describe a failure; FieldErrors carries the
	// per-field map when Kind is KindValidation.
	Kind        FailureKind
	Detail      string
	FieldErrors map[string]string
}

func SucceededResult(ref string, body map[string]any) SubmissionResult {
	return SubmissionResult{State: Succeeded, Ref: ref, Body: body}
}

func ValidationFailure(errs map[string]string) SubmissionResult {
	return SubmissionResult{State: Failed, Kind: KindValidation, Detail: "form has validation errors", FieldErrors: errs}
}

func BusyFailure() SubmissionResult {
	return SubmissionResult{State: Failed, Kind: KindBusy, Detail: "a submission is already in progress"}
}

func RejectedFailure(ref, detail string) SubmissionResult {
	return SubmissionResult{State: Failed, Ref: ref, Kind: KindRejected, Detail: detail}
}

func UnavailableFailure(ref, detail string) SubmissionResult {
	return SubmissionResult{State: Failed, Ref: ref, Kind: KindUnavailable, Detail: detail}
}
