package domain

import (
	"errors"
	"fmt"
	"net/url"
)

// ConfigurationError means a required input was not supplied. Fatal for a run.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Key, e.Reason)
}

// ParseError means the resource list could not be decoded or contains an
// entry that violates the ResourceSpec invariants. Fatal for a run.
// Index is the offending entry, or -1 when the document itself is malformed.
type ParseError struct {
	Index int
	Cause error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return e.Cause.Error()
	}
	return fmt.Sprintf("resource %d: %v", e.Index, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// ResourceCheckFailure is a resource that did not answer with the expected code.
// StatusCode is 0 and Cause is set when the request failed at transport level.
type ResourceCheckFailure struct {
	URL          string
	StatusCode   int
	ExpectedCode int
	Cause        error
}

func (e *ResourceCheckFailure) Error() string {
	if e.StatusCode == 0 && e.Cause != nil {
		return TransportMessage(e.URL, e.Cause)
	}
	return StatusMessage(e.URL, e.StatusCode, e.ExpectedCode)
}

func (e *ResourceCheckFailure) Unwrap() error { return e.Cause }

// NotifyError means the notification endpoint was unreachable or rejected the payload.
type NotifyError struct {
	Endpoint   string
	StatusCode int
	Cause      error
}

func (e *NotifyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("notify %s: %v", e.Endpoint, e.Cause)
	}
	return fmt.Sprintf("notify %s: unexpected status code %d", e.Endpoint, e.StatusCode)
}

func (e *NotifyError) Unwrap() error { return e.Cause }

// StatusMessage formats a status mismatch the same way for HTTP error
// responses and unexpected success codes.
func StatusMessage(url string, got, expected int) string {
	return fmt.Sprintf("%s returned status code %d. %d was expected", url, got, expected)
}

// TransportMessage formats a request that got no response. The URL is only
// named once: *url.Error already carries it, so its inner error is used.
func TransportMessage(rawURL string, cause error) string {
	var ue *url.Error
	if errors.As(cause, &ue) && ue.Err != nil {
		cause = ue.Err
	}
	return fmt.Sprintf("%s: %v", rawURL, cause)
}
