package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ParseResources decodes the JSON resource list. The whole list is rejected
// if any entry is invalid, so a run never starts on a partial list.
// Keys are matched exactly ("url", "expectedCode"); extra keys are ignored.
func ParseResources(raw string) ([]ResourceSpec, error) {
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, &ParseError{Index: -1, Cause: err}
	}
	if entries == nil {
		return nil, &ParseError{Index: -1, Cause: errors.New("resource list must be a JSON array")}
	}
	specs := make([]ResourceSpec, 0, len(entries))
	for i, e := range entries {
		s, err := decodeEntry(e)
		if err == nil {
			err = s.Validate()
		}
		if err != nil {
			return nil, &ParseError{Index: i, Cause: err}
		}
		specs = append(specs, s)
	}
	return specs, nil
}

func decodeEntry(e map[string]json.RawMessage) (ResourceSpec, error) {
	var s ResourceSpec
	rawURL, ok := e["url"]
	if !ok {
		return s, errors.New(`missing key "url"`)
	}
	rawCode, ok := e["expectedCode"]
	if !ok {
		return s, errors.New(`missing key "expectedCode"`)
	}
	if err := json.Unmarshal(rawURL, &s.URL); err != nil {
		return s, fmt.Errorf("url: %w", err)
	}
	if err := json.Unmarshal(rawCode, &s.ExpectedCode); err != nil {
		return s, fmt.Errorf("expectedCode: %w", err)
	}
	return s, nil
}

func (s ResourceSpec) Validate() error {
	if !IsHTTPURL(s.URL) {
		return fmt.Errorf("url %q is not an http(s) URL", s.URL)
	}
	if s.ExpectedCode < 100 || s.ExpectedCode > 599 {
		return fmt.Errorf("expectedCode %d is not a valid HTTP status code", s.ExpectedCode)
	}
	return nil
}

// IsHTTPURL reports whether raw is an absolute http or https URL with a host.
func IsHTTPURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}
