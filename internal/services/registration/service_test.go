package registration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorhub/internal/api"
	"vendorhub/internal/domain"
	"vendorhub/internal/services/registration"
)

func sampleForm() *domain.Form {
	f := domain.NewForm()
	for name, value := range map[string]string{
		"business_vertical":   "amber-enterprises",
		"company_name":        "Acme Components Pvt Ltd",
		"country_origin":      "IN",
		"contact_person_name": "Priya Sharma",
		"email":               "priya@acmecomponents.in",
		"phone_number":        "+91 98765 43210",
		"registered_address":  "Plot 14, MIDC Industrial Area",
		"registered_city":     "Pune",
		"registered_state":    "Maharashtra",
		"registered_country":  "IN",
		"registered_pincode":  "411019",
		"supply_address":      "Plot 14, MIDC Industrial Area",
		"supply_city":         "Pune",
		"supply_state":        "Maharashtra",
		"supply_country":      "IN",
		"supply_pincode":      "411019",
		"bank_name":           "HDFC Bank",
		"account_number":      "50100123456789",
		"ifsc_code":           "HDFC0001234",
	} {
		f.Set(name, domain.Text(value))
	}
	f.Set("year_established", domain.Number(2010))
	for _, flag := range []string{"nda", "sqa", "four_m", "code_of_conduct", "compliance_agreement", "self_declaration"} {
		f.Set(flag, domain.Bool(true))
	}
	return f
}

// newService wires a pipeline against a test server and counts the
// requests it actually receives.
func newService(t *testing.T, handler http.HandlerFunc) (*registration.Service, *atomic.Int32) {
	t.Helper()
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return registration.New(api.New(srv.URL, srv.Client()), nil), &requests
}

func TestSubmit_Success(t *testing.T) {
	svc, requests := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"vendor_code": "VR-20260831", "status": "pending"}`))
	})

	res := svc.Submit(context.Background(), sampleForm())

	require.Equal(t, domain.Succeeded, res.State)
	assert.NotEmpty(t, res.Ref)
	assert.Equal(t, "VR-20260831", res.Body["vendor_code"])
	assert.Equal(t, int32(1), requests.Load())
	assert.Equal(t, domain.Succeeded, svc.State())
}

func TestSubmit_ValidationFailureSkipsNetwork(t *testing.T) {
	svc, requests := newService(t, func(w http.ResponseWriter, r *http.Request) {})

	form := sampleForm()
	form.Delete("company_name")
	form.Set("nda", domain.Bool(false))

	res := svc.Submit(context.Background(), form)

	require.Equal(t, domain.Failed, res.State)
	assert.Equal(t, domain.KindValidation, res.Kind)
	assert.Equal(t, "company_name is required", res.FieldErrors["company_name"])
	assert.Equal(t, "must be accepted", res.FieldErrors["nda"])
	assert.Equal(t, int32(0), requests.Load(), "validation failures must not reach the network")
}

func TestSubmit_PayloadShape(t *testing.T) {
	var payload map[string]any
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	})

	form := sampleForm()
	form.Set("annual_turnover", domain.Text("52000000"))

	res := svc.Submit(context.Background(), form)
	require.Equal(t, domain.Succeeded, res.State)

	// Numeric kinds travel as numbers even when entered as text.
	assert.Equal(t, 2010.0, payload["year_established"])
	assert.Equal(t, 52000000.0, payload["annual_turnover"])
	// Booleans as booleans, strings as strings.
	assert.Equal(t, true, payload["nda"])
	assert.Equal(t, "Acme Components Pvt Ltd", payload["company_name"])
	// Absent optional fields are omitted, not nulled.
	assert.NotContains(t, payload, "registration_number")
	assert.NotContains(t, payload, "website")
}

func TestSubmit_RejectedByServer(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "duplicate registration"}`))
	})

	res := svc.Submit(context.Background(), sampleForm())

	require.Equal(t, domain.Failed, res.State)
	assert.Equal(t, domain.KindRejected, res.Kind)
	assert.Equal(t, "duplicate registration", res.Detail)
	assert.Equal(t, domain.Failed, svc.State(), "pipeline must leave the submitting state")
}

func TestSubmit_ServiceUnavailable(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	})

	res := svc.Submit(context.Background(), sampleForm())

	require.Equal(t, domain.Failed, res.State)
	assert.Equal(t, domain.KindUnavailable, res.Kind)
}

func TestSubmit_BusyGuard(t *testing.T) {
	release := make(chan struct{})
	svc, requests := newService(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	})

	first := svc.SubmitAsync(context.Background(), sampleForm())
	require.Eventually(t, func() bool {
		return svc.State() == domain.Submitting
	}, time.Second, time.Millisecond)

	second := svc.Submit(context.Background(), sampleForm())
	require.Equal(t, domain.Failed, second.State)
	assert.Equal(t, domain.KindBusy, second.Kind)

	close(release)
	res := <-first
	assert.Equal(t, domain.Succeeded, res.State)
	assert.Equal(t, int32(1), requests.Load(), "the busy submission must not reach the network")
}

func TestDiscard_DropsLateResult(t *testing.T) {
	release := make(chan struct{})
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"vendor_code": "VR-1"}`))
	})

	pending := svc.SubmitAsync(context.Background(), sampleForm())
	require.Eventually(t, func() bool {
		return svc.State() == domain.Submitting
	}, time.Second, time.Millisecond)

	// Navigating away from the registration surface.
	svc.Discard()
	assert.Equal(t, domain.Idle, svc.State())

	close(release)
	res := <-pending

	// The request itself completed, but its effect on observable state
	// was dropped.
	assert.Equal(t, domain.Succeeded, res.State)
	assert.Equal(t, domain.Idle, svc.State())
	assert.Equal(t, domain.Idle, svc.Last().State)
}

func TestDiscard_StaleCompletionLeavesNewAttemptBusy(t *testing.T) {
	releaseA := make(chan struct{})
	releaseB := make(chan struct{})
	var order atomic.Int32
	svc, requests := newService(t, func(w http.ResponseWriter, r *http.Request) {
		switch order.Add(1) {
		case 1:
			<-releaseA
		default:
			<-releaseB
		}
		w.WriteHeader(http.StatusOK)
	})

	first := svc.SubmitAsync(context.Background(), sampleForm())
	require.Eventually(t, func() bool {
		return svc.State() == domain.Submitting
	}, time.Second, time.Millisecond)

	svc.Discard()

	second := svc.SubmitAsync(context.Background(), sampleForm())
	require.Eventually(t, func() bool {
		return svc.State() == domain.Submitting
	}, time.Second, time.Millisecond)

	// The abandoned attempt completes while the new one is still on the
	// wire. Its stale result must not release the busy guard.
	close(releaseA)
	<-first
	assert.Equal(t, domain.Submitting, svc.State())

	third := svc.Submit(context.Background(), sampleForm())
	require.Equal(t, domain.Failed, third.State)
	assert.Equal(t, domain.KindBusy, third.Kind)
	assert.Equal(t, int32(2), requests.Load(), "only the two attempted submissions may reach the network")

	close(releaseB)
	res := <-second
	assert.Equal(t, domain.Succeeded, res.State)
	assert.Equal(t, domain.Succeeded, svc.State())
}

func TestSubmit_SnapshotUnaffectedByLaterEdits(t *testing.T) {
	var payload map[string]any
	release := make(chan struct{})
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	})

	form := sampleForm()
	pending := svc.SubmitAsync(context.Background(), form)
	require.Eventually(t, func() bool {
		return svc.State() == domain.Submitting
	}, time.Second, time.Millisecond)

	// Edits racing the in-flight request must not change the payload.
	form.Set("company_name", domain.Text("Renamed Ltd"))
	close(release)
	<-pending

	assert.Equal(t, "Acme Components Pvt Ltd", payload["company_name"])
}

func TestSubmit_NoAutomaticRetry(t *testing.T) {
	svc, requests := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_ = svc.Submit(context.Background(), sampleForm())
	assert.Equal(t, int32(1), requests.Load())

	// Explicit re-invocation is the only retry path.
	_ = svc.Submit(context.Background(), sampleForm())
	assert.Equal(t, int32(2), requests.Load())
}
