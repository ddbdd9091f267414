package officernd

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ConfigError reports every missing credential at once, raised before any
// network call is attempted.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf(
		"missing required configuration: %s",
		strings.Join(e.Missing, ", "),
	)
}

// AuthError is a failed or malformed response from the token endpoint.
type AuthError struct {
	Status   int
	Endpoint string
	Message  string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed (%d) at %s: %s", e.Status, e.Endpoint, e.Message)
}

// APIError is a non-success response from a resource endpoint, or a success
// response whose body is not valid JSON.
type APIError struct {
	Status   int
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed (%d) at %s: %s", e.Status, e.Endpoint, e.Message)
}

// errorBodyMessage pulls a human-readable message out of a JSON error body,
// falling back to a generic message when the body is not parseable.
func errorBodyMessage(body []byte, fallback string) string {
	var payload struct {
		ErrorDescription string `json:"error_description"`
		ErrorCode        string `json:"error"`
		Message          string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}
	switch {
	case payload.ErrorDescription != "":
		return payload.ErrorDescription
	case payload.Message != "":
		return payload.Message
	case payload.ErrorCode != "":
		return payload.ErrorCode
	}
	return fallback
}
