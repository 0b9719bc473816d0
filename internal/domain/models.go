package domain

import "time"

// ResourceSpec is one entry of the monitored resource list, as supplied in
// RESOURCE_MONITOR_RESOURCES: [{"url": "http://example.com", "expectedCode": 200}]
type ResourceSpec struct {
	URL          string `json:"url"`
	ExpectedCode int    `json:"expectedCode"`
}

// Outcome is the result of checking a single ResourceSpec.
//
// StatusCode is the observed HTTP status; 0 when the request never got a response.
// Failure is nil when the resource answered with the expected code.
type Outcome struct {
	Spec       ResourceSpec          `json:"spec"`
	StatusCode int                   `json:"status_code,omitempty"`
	LatencyMS  float64               `json:"latency_ms"`
	Failure    *ResourceCheckFailure `json:"-"`
	CheckedAt  time.Time             `json:"checked_at"`
}

func (o Outcome) Success() bool { return o.Failure == nil }

// Reason is the human-readable failure message, or "" on success.
func (o Outcome) Reason() string {
	if o.Failure == nil {
		return ""
	}
	return o.Failure.Error()
}
