// Package common contains shared constants and sentinel errors used across
// ecocollect client components.
package common

const (
	// CredentialKey is the storage key holding the bearer credential.
	CredentialKey = "auth_token"

	// AuthorizationHeaderName carries the credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// AuthScheme is the scheme prefix the backend expects: "Token <credential>".
	AuthScheme = "Token"

	// RequestIDHeaderName tags every outbound request for log correlation.
	RequestIDHeaderName = "X-Request-ID"
)
