// Package client talks to the ecocollect REST backend.
//
// # Overview
//
// The package provides:
//  1. The Client interface, one method per backend operation: auth and
//     profile, phone and document verification, waste declarations,
//     collector missions and schedules.
//  2. HTTPClient, the JSON/multipart implementation. Its transport reads
//     the credential from storage before every request, sets the
//     "Authorization: Token <credential>" header when one is stored, tags the
//     request with an X-Request-ID and logs every failed response.
//
// # Error Handling
//
// Non-2xx responses come back as *APIError, which keeps the backend payload
// untouched. Callers match classes of failures with errors.Is:
// ErrUnauthorized (401, 403) and ErrUnavailable (transport errors, 502, 503,
// 504). Nothing is retried.
//
// See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient
//   - Errors:     APIError, ErrUnavailable, ErrUnauthorized, ErrScheduleIDRequired
package client
