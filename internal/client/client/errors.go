package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrScheduleIDRequired = errors.New("schedule ID is required for update")
)

// APIError is a non-2xx backend response.
type APIError struct {
	StatusCode int
	RequestID  string
	// Payload is the decoded JSON body, nil when the body is not JSON.
	Payload any
	Body    []byte
}

func newAPIError(status int, requestID string, body []byte) *APIError {
	e := &APIError{StatusCode: status, RequestID: requestID, Body: body}
	var payload any
	if err := json.Unmarshal(body, &payload); err == nil {
		e.Payload = payload
	}
	return e
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > 256 {
		body = body[:256]
	}
	if body == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), body)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrUnavailable:
		switch e.StatusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
	}
	return false
}

// FieldMessage renders a field-error payload such as
// {"email": ["this field is required"]} as "email: this field is required".
// Keys are sorted and list values flattened; pairs are joined by ", ".
// It returns "" when the payload carries no message.
func (e *APIError) FieldMessage() string {
	switch p := e.Payload.(type) {
	case map[string]any:
		keys := make([]string, 0, len(p))
		for k := range p {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var pairs []string
		for _, k := range keys {
			for _, msg := range flatten(p[k]) {
				pairs = append(pairs, k+": "+msg)
			}
		}
		return strings.Join(pairs, ", ")
	case nil:
		return ""
	default:
		return strings.Join(flatten(p), ", ")
	}
}

func flatten(v any) []string {
	switch value := v.(type) {
	case nil:
		return nil
	case string:
		if value == "" {
			return nil
		}
		return []string{value}
	case []any:
		var out []string
		for _, item := range value {
			out = append(out, flatten(item)...)
		}
		return out
	case map[string]any:
		nested := (&APIError{Payload: value}).FieldMessage()
		if nested == "" {
			return nil
		}
		return []string{nested}
	default:
		return []string{fmt.Sprint(value)}
	}
}

// Message extracts a human message from err: the field payload of an
// *APIError when it has one, otherwise err's own text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.FieldMessage(); msg != "" {
			return msg
		}
	}
	return err.Error()
}
