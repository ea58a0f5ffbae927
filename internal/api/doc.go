// Package api is the HTTP client for the VendorHub backend. It covers
// the three endpoints this client uses: the public registration POST,
// the login POST, and the health probe.
//
// All requests are JSON over HTTP and accept a context for cancellation
// and deadlines. Non-2xx statuses map onto the domain error taxonomy:
// 4xx becomes a *domain.RequestError with KindRejected (the server's
// "detail" field is surfaced verbatim when present), 5xx and transport
// failures become KindUnavailable.
package api
