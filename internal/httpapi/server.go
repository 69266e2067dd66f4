// Package httpapi exposes the guard pipeline over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/piigate/piigate/internal/audit"
	"github.com/piigate/piigate/internal/config"
	"github.com/piigate/piigate/internal/detectors"
	"github.com/piigate/piigate/internal/guard"
	"github.com/piigate/piigate/internal/observability"
	"github.com/piigate/piigate/internal/reconcile"
	"github.com/piigate/piigate/internal/score"
	"github.com/piigate/piigate/internal/types"
)

type Server struct {
	cfg     config.Config
	svc     *guard.Service
	metrics *observability.Metrics
	audit   *audit.AuditLog
}

// New builds the HTTP server. auditLog may be nil when auditing is disabled.
func New(cfg config.Config, svc *guard.Service, metrics *observability.Metrics, auditLog *audit.AuditLog) *Server {
	return &Server{cfg: cfg, svc: svc, metrics: metrics, audit: auditLog}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/info", http.StatusTemporaryRedirect)
	})

	r.Get("/health", s.handleHealth)
	r.Get("/info", s.handleInfo)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		observability.MetricsHandler().ServeHTTP(w, r)
	})

	r.Post("/guard", s.handleGuard)
	r.Post("/ingest/scrub", s.handleScrub)

	return r
}

type textRequest struct {
	Text string `json:"text"`
}

type guardResponse struct {
	Answer    string                  `json:"answer"`
	PIIScore  int                     `json:"pii_score"`
	Blocked   bool                    `json:"blocked"`
	Matches   []types.Match           `json:"matches"`
	Injection *types.InjectionVerdict `json:"prompt_injection,omitempty"`
}

type scrubResponse struct {
	Scrubbed string        `json:"scrubbed"`
	Matches  []types.Match `json:"matches"`
}

func (s *Server) handleGuard(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}

	start := time.Now()
	res := s.svc.Guard(r.Context(), req.Text)

	outcome := "pass"
	if res.Blocked {
		outcome = "block"
		s.metrics.Blocked.Inc()
	}
	s.metrics.Requests.WithLabelValues("guard", outcome).Inc()
	s.metrics.RiskScore.Observe(float64(res.Score))
	s.countMatches(res.Matches)
	s.record("guard", req.Text, res.Matches, res.Score, res.Blocked,
		res.Injection != nil && res.Injection.Detected, time.Since(start))

	respondJSON(w, http.StatusOK, guardResponse{
		Answer:    res.Answer,
		PIIScore:  res.Score,
		Blocked:   res.Blocked,
		Matches:   matchesOrEmpty(res.Matches),
		Injection: res.Injection,
	})
}

func (s *Server) handleScrub(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}

	start := time.Now()
	res := s.svc.Scrub(r.Context(), req.Text)

	s.metrics.Requests.WithLabelValues("scrub", "pass").Inc()
	s.countMatches(res.Matches)
	s.record("scrub", req.Text, res.Matches, 0, false, false, time.Since(start))

	respondJSON(w, http.StatusOK, scrubResponse{
		Scrubbed: res.Scrubbed,
		Matches:  matchesOrEmpty(res.Matches),
	})
}

// handleHealth runs a detector self-test so a green health check means the
// pattern pipeline actually finds a known phone number. The probe goes
// through the reconciler like a real request; raw extraction can propose the
// same span under several shapes.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	probe := reconcile.Reconcile(detectors.Extract("010-1234-5678", s.svc.Whitelist))
	healthy := len(probe) == 1 && probe[0].Category == types.CatPhone

	status := "ok"
	code := http.StatusOK
	if !healthy {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, map[string]any{
		"status":        status,
		"detector_ok":   healthy,
		"llm_enabled":   s.llmEnabled(),
		"audit_enabled": s.audit != nil,
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	cats := make([]string, 0, len(types.Categories))
	for _, c := range types.Categories {
		cats = append(cats, string(c))
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"service":         "piigate",
		"categories":      cats,
		"block_threshold": score.BlockThreshold,
		"llm_enabled":     s.llmEnabled(),
		"llm_model":       s.cfg.LLMModel,
	})
}

// llmEnabled reports the effective detector state. The startup probe may
// leave the service pattern-only even when the config asked for the semantic
// detector, so the config flag alone would lie here.
func (s *Server) llmEnabled() bool {
	return s.svc.External != nil
}

func (s *Server) decodeText(w http.ResponseWriter, r *http.Request) (textRequest, bool) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, errEmptyBody) {
			respondError(w, http.StatusBadRequest, "empty_body", "request body is required")
		} else {
			respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		}
		return textRequest{}, false
	}
	if strings.TrimSpace(req.Text) == "" {
		respondError(w, http.StatusBadRequest, "missing_text", "field \"text\" is required")
		return textRequest{}, false
	}
	return req, true
}

func (s *Server) countMatches(matches []types.Match) {
	for _, m := range matches {
		s.metrics.Matches.WithLabelValues(string(m.Category), string(m.Source)).Inc()
	}
}

func (s *Server) record(flow, text string, matches []types.Match, sc int, blocked, injection bool, took time.Duration) {
	if s.audit == nil {
		return
	}
	rec := audit.NewRecord(flow, text, matches, sc, blocked, injection, took)
	if err := s.audit.Append(rec); err != nil {
		log.Warn().Err(err).Msg("failed to write audit record")
	}
}

// matchesOrEmpty keeps the JSON field an array even with no matches.
func matchesOrEmpty(ms []types.Match) []types.Match {
	if ms == nil {
		return []types.Match{}
	}
	return ms
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var errEmptyBody = errors.New("empty body")

func decodeJSON(r *http.Request, out any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: message, Code: code})
}
