package config

import (
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "RESOURCE_MONITOR"

// DefaultUserAgent is sent with every resource check; some servers reject
// requests that look like they come from a script.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_9_3) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/35.0.1916.47 Safari/537.36"

// Keys, also the env var suffixes after RESOURCE_MONITOR_.
const (
	KeyResources       = "resources"
	KeyNotificationURL = "notification_url"
	KeyUserAgent       = "user_agent"
	KeyLogDir          = "log_dir"
	KeyLogLevel        = "log_level"
	KeyDNSDiagnostics  = "dns_diagnostics"
	KeyAddr            = "addr"
	KeyAPIKeys         = "api_keys"
	KeyAllowedOrigins  = "allowed_origins"
)

// Config is resolved once per process and never mutated afterwards.
type Config struct {
	Resources       string // raw JSON list
	HasResources    bool   // false when the list was not supplied at all
	NotificationURL string // empty disables notifications
	UserAgent       string
	LogDir          string // empty logs to stderr only
	LogLevel        string
	DNSDiagnostics  bool
	Addr            string // API bind address for `serve`
	APIKeys         []string
	AllowedOrigins  []string
}

// NewViper returns a viper instance reading RESOURCE_MONITOR_* env vars.
// Empty env values count as set so an empty resource list is a parse error,
// not a missing one.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	v.SetDefault(KeyUserAgent, DefaultUserAgent)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyAddr, "127.0.0.1:8080")
	return v
}

func FromEnv() Config {
	return Load(NewViper())
}

// Load builds a Config from v; flags bound into v take precedence over env.
func Load(v *viper.Viper) Config {
	ua := strings.TrimSpace(v.GetString(KeyUserAgent))
	if ua == "" {
		ua = DefaultUserAgent
	}
	return Config{
		Resources:       v.GetString(KeyResources),
		HasResources:    v.IsSet(KeyResources),
		NotificationURL: strings.TrimSpace(v.GetString(KeyNotificationURL)),
		UserAgent:       ua,
		LogDir:          strings.TrimSpace(v.GetString(KeyLogDir)),
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		DNSDiagnostics:  v.GetBool(KeyDNSDiagnostics),
		Addr:            v.GetString(KeyAddr),
		APIKeys:         splitList(v.GetString(KeyAPIKeys)),
		AllowedOrigins:  splitList(v.GetString(KeyAllowedOrigins)),
	}
}

// NotifyEnabled reports whether failures should be forwarded.
func (c Config) NotifyEnabled() bool { return c.NotificationURL != "" }

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
