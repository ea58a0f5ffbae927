package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"vendorhub/internal/domain"
)

const (
	registrationPath = "/vendors/public-registration"
	loginPath        = "/auth/login"
	healthPath       = "/health"
)

// Client talks to the VendorHub API. Base is the versioned API root,
// e.g. http://localhost:8000/api/v1.
type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

var (
	_ domain.RegistrationSubmitter = (*Client)(nil)
	_ domain.Authenticator         = (*Client)(nil)
)

// SubmitRegistration posts the serialized form to the public
// registration endpoint and returns the parsed response body.
func (c *Client) SubmitRegistration(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return c.postJSON(ctx, registrationPath, payload)
}

// Authenticate checks credentials against the login endpoint. Invalid
// credentials come back as a KindRejected *domain.RequestError carrying
// the server's reason.
func (c *Client) Authenticate(ctx context.Context, email, password string) (domain.AuthResult, error) {
	body, err := c.postJSON(ctx, loginPath, map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return domain.AuthResult{}, err
	}

	res := domain.AuthResult{User: map[string]any{}}
	if token, ok := body["access_token"].(string); ok {
		res.Token = token
	}
	if user, ok := body["user"].(map[string]any); ok {
		res.User = user
	}
	return res, nil
}

// HealthStatus is the liveness probe's answer.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health probes GET {base}/health. The health endpoint lives beside the
// API root, not under the versioned prefix.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	base := strings.TrimSuffix(c.Base, "/api/v1")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+healthPath, nil)
	if err != nil {
		return HealthStatus{}, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return HealthStatus{}, &domain.RequestError{Kind: domain.KindUnavailable, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return HealthStatus{}, responseError(resp)
	}
	var out HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return HealthStatus{}, fmt.Errorf("decode health response: %w", err)
	}
	return out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, in map[string]any) (map[string]any, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	log.WithFields(log.Fields{"path": path}).Debug("POST")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &domain.RequestError{Kind: domain.KindUnavailable, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, responseError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	out := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// responseError turns a non-2xx response into a *domain.RequestError,
// pulling a human-readable detail out of the body when possible.
func responseError(resp *http.Response) error {
	kind := domain.KindUnavailable
	if resp.StatusCode/100 == 4 {
		kind = domain.KindRejected
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	detail := extractDetail(raw)
	if detail == "" {
		detail = resp.Status
	}
	return &domain.RequestError{Kind: kind, Status: resp.StatusCode, Detail: detail}
}

// extractDetail reads the backend's error shape: {"detail": "..."} or,
// for 422 responses, {"detail": [{"loc": [...], "msg": "..."}, ...]}.
// Plain-text bodies are returned trimmed.
func extractDetail(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return trimmed
	}

	var msg string
	if err := json.Unmarshal(body.Detail, &msg); err == nil {
		return msg
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			loc := make([]string, 0, len(item.Loc))
			for _, l := range item.Loc {
				loc = append(loc, fmt.Sprint(l))
			}
			if len(loc) > 0 {
				parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(loc, "."), item.Msg))
			} else {
				parts = append(parts, item.Msg)
			}
		}
		return strings.Join(parts, "; ")
	}
	return trimmed
}
