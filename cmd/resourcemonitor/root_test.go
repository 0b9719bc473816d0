package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCmd_ResourcesFlag(t *testing.T) {
	var hits int32
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer s.Close()

	out, err := execute(t, "check", "--log-level", "error", "--resources", `[{"url":"`+s.URL+`","expectedCode":200}]`)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, s.URL+" is working properly") {
		t.Fatalf("unexpected output: %q", out)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("want one request, got %d", hits)
	}
}

func TestCheckCmd_MissingResources(t *testing.T) {
	t.Setenv("RESOURCE_MONITOR_RESOURCES", "")
	os.Unsetenv("RESOURCE_MONITOR_RESOURCES")

	out, err := execute(t, "check", "--log-level", "error")
	if !errors.Is(err, errFatal) {
		t.Fatalf("want errFatal, got %v", err)
	}
	if !strings.Contains(out, "ConfigurationError: no resources were supplied") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCheckCmd_MalformedEnv(t *testing.T) {
	t.Setenv("RESOURCE_MONITOR_RESOURCES", "not json")

	out, err := execute(t, "check", "--log-level", "error")
	if !errors.Is(err, errFatal) {
		t.Fatalf("want errFatal, got %v", err)
	}
	if !strings.HasPrefix(out, "JSONDecodeError: ") {
		t.Fatalf("unexpected output: %q", out)
	}
}
