package monitor

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hamed0406/resourcemonitor/internal/config"
	"github.com/hamed0406/resourcemonitor/internal/domain"
	"github.com/hamed0406/resourcemonitor/internal/notify"
	"github.com/hamed0406/resourcemonitor/internal/probe"
)

// Runner evaluates a resource list one entry at a time, in the given order.
// A failing resource or notification never stops the remaining checks.
type Runner struct {
	Logger   *zap.Logger
	Checker  probe.Checker
	Notifier notify.Notifier // nil disables notifications
	Out      io.Writer       // human-readable lines, one per outcome

	// DNSDiagnostics adds a DNS classification to the log entry of
	// transport-level failures.
	DNSDiagnostics bool
}

// NewRunner wires the HTTP checker and, if an endpoint is configured, the
// webhook notifier from cfg.
func NewRunner(cfg config.Config, logger *zap.Logger, out io.Writer) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runner{
		Logger:         logger,
		Checker:        probe.NewHTTPChecker(cfg.UserAgent),
		Out:            out,
		DNSDiagnostics: cfg.DNSDiagnostics,
	}
	if cfg.NotifyEnabled() {
		r.Notifier = notify.NewWebhook(cfg.NotificationURL)
	} else {
		logger.Warn("notifications_disabled", zap.String("reason", "no notification url configured"))
	}
	return r
}

// RunConfigured runs the resource list carried by cfg.
func (r *Runner) RunConfigured(ctx context.Context, cfg config.Config) (*Report, error) {
	return r.RunJSON(ctx, cfg.Resources, cfg.HasResources)
}

// RunJSON decodes raw and runs it. A missing or malformed list is returned as
// an error before any resource is checked.
func (r *Runner) RunJSON(ctx context.Context, raw string, supplied bool) (*Report, error) {
	if !supplied {
		return nil, &domain.ConfigurationError{
			Key:    config.EnvPrefix + "_RESOURCES",
			Reason: "no resources were supplied",
		}
	}
	specs, err := domain.ParseResources(raw)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, specs), nil
}

// Run checks every spec sequentially.
func (r *Runner) Run(ctx context.Context, specs []domain.ResourceSpec) *Report {
	log := r.logger()
	rep := &Report{Outcomes: make([]domain.Outcome, 0, len(specs))}

	log.Info("run_started",
		zap.Int("resources", len(specs)),
		zap.Bool("notify_enabled", r.Notifier != nil),
	)

	for _, spec := range specs {
		out := r.Checker.Check(ctx, spec)
		rep.Outcomes = append(rep.Outcomes, out)

		if out.Success() {
			r.printf("%s is working properly\n", spec.URL)
			log.Info("resource_ok",
				zap.String("url", spec.URL),
				zap.Int("status", out.StatusCode),
				zap.Float64("latency_ms", out.LatencyMS),
			)
			continue
		}

		reason := out.Reason()
		r.printf("HTTPError: %s\n", reason)
		fields := []zap.Field{
			zap.String("url", spec.URL),
			zap.Int("status", out.StatusCode),
			zap.Int("expected", spec.ExpectedCode),
			zap.Float64("latency_ms", out.LatencyMS),
			zap.String("reason", reason),
		}
		if r.DNSDiagnostics && out.StatusCode == 0 {
			dns := probe.CheckDNS(ctx, probe.Host(spec.URL))
			fields = append(fields,
				zap.String("dns_class", dns.Class),
				zap.Strings("nameservers", dns.Nameservers),
				zap.String("cname", dns.CNAME),
				zap.String("resolver_error", dns.ResolverError),
			)
		}
		log.Warn("resource_failed", fields...)

		if r.Notifier == nil {
			continue
		}
		if err := r.Notifier.Notify(ctx, NotificationMessage(out)); err != nil {
			rep.NotifyErrors = append(rep.NotifyErrors, err)
			r.printf("NotifyError: %v\n", err)
			log.Warn("notify_failed", zap.String("url", spec.URL), zap.Error(err))
			continue
		}
		rep.Notified++
		r.printf("notification sent for %s\n", spec.URL)
		log.Info("notify_sent", zap.String("url", spec.URL))
	}

	log.Info("run_finished",
		zap.Int("resources", len(rep.Outcomes)),
		zap.Int("failed", rep.Failed()),
		zap.Int("notified", rep.Notified),
		zap.Int("notify_errors", len(rep.NotifyErrors)),
		zap.Error(rep.Err()),
	)
	return rep
}

// NotificationMessage is the text forwarded for a failed outcome.
func NotificationMessage(out domain.Outcome) string {
	return "HTTPError: " + out.Reason()
}

func (r *Runner) printf(format string, args ...any) {
	if r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, format, args...)
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
