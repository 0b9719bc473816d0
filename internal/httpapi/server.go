package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/resourcemonitor/internal/config"
	apimw "github.com/hamed0406/resourcemonitor/internal/httpapi/middleware"
	"github.com/hamed0406/resourcemonitor/internal/monitor"
)

const maxBodyBytes = 1 << 20

// Server triggers runs over HTTP. Runs are serialized: a second request
// waits until the current run has checked all of its resources.
type Server struct {
	Logger *zap.Logger
	Runner *monitor.Runner
	Config config.Config

	mu sync.Mutex
}

func NewServer(l *zap.Logger, runner *monitor.Runner, cfg config.Config) *Server {
	return &Server{Logger: l, Runner: runner, Config: cfg}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(corsHandler(s.Config.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RequireKey(s.Config.APIKeys))
		r.Post("/api/checks", s.handleChecks)
		r.Post("/api/run", s.handleRun)
	})

	return r
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return cors.AllowAll().Handler
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-API-Key"},
		MaxAge:         300,
	})
}

type outcomeView struct {
	URL          string    `json:"url"`
	ExpectedCode int       `json:"expected_code"`
	StatusCode   int       `json:"status_code,omitempty"`
	OK           bool      `json:"ok"`
	Reason       string    `json:"reason,omitempty"`
	LatencyMS    float64   `json:"latency_ms"`
	CheckedAt    time.Time `json:"checked_at"`
}

type reportView struct {
	Outcomes     []outcomeView `json:"outcomes"`
	Failed       int           `json:"failed"`
	Errors       []string      `json:"errors,omitempty"`
	Notified     int           `json:"notified"`
	NotifyErrors []string      `json:"notify_errors,omitempty"`
}

func newReportView(rep *monitor.Report) reportView {
	v := reportView{
		Outcomes: make([]outcomeView, 0, len(rep.Outcomes)),
		Failed:   rep.Failed(),
		Notified: rep.Notified,
	}
	for _, o := range rep.Outcomes {
		v.Outcomes = append(v.Outcomes, outcomeView{
			URL:          o.Spec.URL,
			ExpectedCode: o.Spec.ExpectedCode,
			StatusCode:   o.StatusCode,
			OK:           o.Success(),
			Reason:       o.Reason(),
			LatencyMS:    o.LatencyMS,
			CheckedAt:    o.CheckedAt,
		})
	}
	for _, err := range multierr.Errors(rep.Err()) {
		v.Errors = append(v.Errors, err.Error())
	}
	for _, err := range rep.NotifyErrors {
		v.NotifyErrors = append(v.NotifyErrors, err.Error())
	}
	return v
}

// handleChecks runs the resource list posted as the request body.
func (s *Server) handleChecks(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "body too large"})
		return
	}

	s.mu.Lock()
	rep, err := s.Runner.RunJSON(r.Context(), string(body), true)
	s.mu.Unlock()
	if err != nil {
		s.Logger.Warn("api_checks_rejected", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": monitor.Describe(err)})
		return
	}
	writeJSON(w, http.StatusOK, newReportView(rep))
}

// handleRun runs the configured resource list. A configuration error is
// returned as a plain string, like a function handler's return value.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rep, err := s.Runner.RunConfigured(r.Context(), s.Config)
	s.mu.Unlock()
	if err != nil {
		s.Logger.Error("api_run_config_error", zap.Error(err))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(monitor.Describe(err)))
		return
	}
	writeJSON(w, http.StatusOK, newReportView(rep))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
