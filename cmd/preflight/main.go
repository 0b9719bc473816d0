// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"

	"github.com/hamed0406/resourcemonitor/internal/config"
	"github.com/hamed0406/resourcemonitor/internal/domain"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	cfg := config.FromEnv()

	if !cfg.HasResources {
		fail("RESOURCE_MONITOR_RESOURCES is not set (check runs will abort with ConfigurationError).")
	}
	specs, err := domain.ParseResources(cfg.Resources)
	if err != nil {
		fail("RESOURCE_MONITOR_RESOURCES is invalid: " + err.Error())
	}
	if len(specs) == 0 {
		warn("RESOURCE_MONITOR_RESOURCES is an empty list; runs will check nothing.")
	} else {
		ok(fmt.Sprintf("%d resource(s) configured", len(specs)))
	}

	switch {
	case !cfg.NotifyEnabled():
		warn("RESOURCE_MONITOR_NOTIFICATION_URL empty — failures will only be logged.")
	case !domain.IsHTTPURL(cfg.NotificationURL):
		fail("RESOURCE_MONITOR_NOTIFICATION_URL is not an http(s) URL.")
	default:
		ok("RESOURCE_MONITOR_NOTIFICATION_URL present")
	}

	if cfg.LogDir == "" {
		warn("RESOURCE_MONITOR_LOG_DIR empty — logs go to stderr only.")
	} else {
		ok("RESOURCE_MONITOR_LOG_DIR=" + cfg.LogDir)
	}

	if len(cfg.APIKeys) == 0 {
		warn("RESOURCE_MONITOR_API_KEYS empty — `serve` accepts unauthenticated requests.")
	}

	ok("preflight passed")
}
