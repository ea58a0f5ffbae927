package registration

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vendorhub/internal/domain"
	"vendorhub/internal/schema"
	"vendorhub/internal/validate"
)

// Service is the submission pipeline. One instance owns one
// SubmissionResult lifecycle; concurrent Submit calls beyond the first
// are rejected without touching the network.
type Service struct {
	api domain.RegistrationSubmitter
	log *logrus.Entry

	mu         sync.Mutex
	submitting bool
	// gen guards against late completions: Discard bumps it, and a
	// completion holding an older generation is dropped instead of
	// being applied to observable state.
	gen  uint64
	last domain.SubmissionResult
}

func New(api domain.RegistrationSubmitter, log *logrus.Entry) *Service {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{api: api, log: log}
}

// Submit runs one registration attempt to completion. The form is
// snapshotted up front, so edits made while the request is in flight do
// not affect the payload.
func (s *Service) Submit(ctx context.Context, form *domain.Form) domain.SubmissionResult {
	if errs := validate.Validate(form); len(errs) > 0 {
		res := domain.ValidationFailure(errs)
		s.store(res)
		return res
	}

	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return domain.BusyFailure()
	}
	s.submitting = true
	gen := s.gen
	s.last = domain.SubmissionResult{State: domain.Submitting}
	s.mu.Unlock()

	ref := uuid.NewString()
	payload := Payload(form.Clone())
	log := s.log.WithFields(logrus.Fields{"ref": ref, "fields": len(payload)})
	log.Info("submitting registration")

	body, err := s.api.SubmitRegistration(ctx, payload)
	res := interpret(ref, body, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// Discard already released the busy flag, and it may be held
		// again by a newer attempt. Drop the late result untouched.
		log.Debug("submission result discarded")
		return res
	}
	s.submitting = false
	s.last = res

	switch res.State {
	case domain.Succeeded:
		log.Info("registration accepted")
	default:
		log.WithFields(logrus.Fields{"kind": res.Kind.String(), "detail": res.Detail}).
			Warn("registration failed")
	}
	return res
}

// SubmitAsync runs Submit on its own goroutine and delivers the result
// on the returned channel.
func (s *Service) SubmitAsync(ctx context.Context, form *domain.Form) <-chan domain.SubmissionResult {
	out := make(chan domain.SubmissionResult, 1)
	snapshot := form.Clone()
	go func() {
		out <- s.Submit(ctx, snapshot)
		close(out)
	}()
	return out
}

// Discard abandons the current attempt's effect on observable state. Any
// in-flight request still completes on the wire, but its result is
// dropped rather than applied. A new submission may start immediately.
func (s *Service) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.submitting = false
	s.last = domain.SubmissionResult{State: domain.Idle}
}

// State reports where the pipeline currently is.
func (s *Service) State() domain.SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return domain.Submitting
	}
	return s.last.State
}

// Last returns the most recent applied result.
func (s *Service) Last() domain.SubmissionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Service) store(res domain.SubmissionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.submitting {
		s.last = res
	}
}

func interpret(ref string, body map[string]any, err error) domain.SubmissionResult {
	if err == nil {
		return domain.SucceededResult(ref, body)
	}
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) && reqErr.Kind == domain.KindRejected {
		return domain.RejectedFailure(ref, reqErr.Detail)
	}
	if reqErr != nil {
		return domain.UnavailableFailure(ref, reqErr.Detail)
	}
	return domain.UnavailableFailure(ref, err.Error())
}

// Payload serializes a validated form for the wire: field names map 1:1
// to payload keys, numeric kinds go as numbers, booleans as booleans,
// everything else as strings. Absent optional fields are omitted.
func Payload(form *domain.Form) map[string]any {
	payload := make(map[string]any, form.Len())
	for _, field := range schema.Fields() {
		value, ok := form.Get(field.Name)
		if !ok || value.Empty() {
			continue
		}
		switch field.Kind {
		case schema.Number:
			payload[field.Name] = asNumber(value)
		case schema.Boolean:
			payload[field.Name] = value.Kind == domain.BoolValue && value.Bool
		default:
			payload[field.Name] = value.String()
		}
	}
	return payload
}

func asNumber(v domain.Value) float64 {
	switch v.Kind {
	case domain.NumberValue:
		return v.Num
	case domain.TextValue:
		// Validation already guaranteed the text parses.
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		if err != nil {
			return math.NaN()
		}
		return n
	default:
		return 0
	}
}
