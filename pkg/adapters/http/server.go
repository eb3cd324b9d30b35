package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"

	"github.com/aretw0/algotrace"
	"github.com/aretw0/algotrace/pkg/complexity"
	"github.com/aretw0/algotrace/pkg/domain"
)

// maxBodyBytes bounds request bodies before they are decoded.
const maxBodyBytes = 1 << 20

// Service is the engine surface exposed over HTTP.
type Service interface {
	Execute(ctx context.Context, req algotrace.ExecuteRequest) (*domain.Execution, error)
	Analyze(ctx context.Context, algorithm string, n int) (*domain.Analysis, error)
	Ask(ctx context.Context, query, algorithmContext string) (*domain.Answer, error)
	History(ctx context.Context, filter domain.HistoryFilter) (*domain.HistoryPage, error)
	HistoryEntry(ctx context.Context, id string) (*domain.ExecutionRecord, error)
	Algorithms() []complexity.Info
}

// Server holds the HTTP handlers.
type Server struct {
	Service Service

	logger  *slog.Logger
	origins []string
	metrics http.Handler
	now     func() time.Time
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the logger for request failures. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithCORSOrigins sets the allowed origins. "*" allows any origin and a
// single "*" inside a pattern matches any subdomain (https://*.vercel.app).
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// WithMetricsHandler serves h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithClock overrides the clock used by the health endpoint.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(svc Service, opts ...Option) http.Handler {
	server := &Server{
		Service: svc,
		logger:  slog.Default(),
		origins: []string{"*"},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", server.GetRoot)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if server.metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", server.GetHealth)
		r.Get("/algorithms", server.ListAlgorithms)
		r.Post("/execute-algorithm", server.ExecuteAlgorithm)
		r.Post("/analyze-complexity", server.AnalyzeComplexity)
		r.Post("/ai/query", server.QueryAssistant)
		r.Get("/history", server.ListHistory)
		r.Get("/history/{id}", server.GetHistoryEntry)
	})

	return server.enableCORS(r)
}

func (s *Server) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			if allowed, wildcard := s.allowOrigin(origin); allowed {
				if wildcard {
					w.Header().Set("Access-Control-Allow-Origin", "*")
				} else {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Add("Vary", "Origin")
				}
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			}
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) allowOrigin(origin string) (allowed, wildcard bool) {
	for _, pattern := range s.origins {
		if pattern == "*" {
			return true, true
		}
		if matchOrigin(pattern, origin) {
			return true, false
		}
	}
	return false, false
}

func matchOrigin(pattern, origin string) bool {
	prefix, suffix, ok := strings.Cut(pattern, "*")
	if !ok {
		return pattern == origin
	}
	return len(origin) > len(prefix)+len(suffix) &&
		strings.HasPrefix(origin, prefix) &&
		strings.HasSuffix(origin, suffix)
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>algotrace API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetRoot handles the GET / request.
func (s *Server) GetRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "algotrace API",
		"version": strings.TrimSpace(algotrace.Version),
		"docs":    "/api/docs",
	})
}

// GetHealth handles the GET /api/health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: s.now().UTC(),
		Version:   strings.TrimSpace(algotrace.Version),
	})
}

// ListAlgorithms handles the GET /api/algorithms request.
func (s *Server) ListAlgorithms(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, AlgorithmsResponse{Algorithms: s.Service.Algorithms()})
}

// ExecuteAlgorithm handles the POST /api/execute-algorithm request.
func (s *Server) ExecuteAlgorithm(w http.ResponseWriter, r *http.Request) {
	var body ExecuteAlgorithmRequest
	if !s.decode(w, r, "ExecuteAlgorithmRequest", &body) {
		return
	}

	exec, err := s.Service.Execute(r.Context(), algotrace.ExecuteRequest{
		Algorithm: body.AlgorithmType,
		Array:     body.Array,
		Target:    body.SearchTarget,
	})
	if err != nil {
		s.fail(w, "ExecuteAlgorithm", err)
		return
	}
	s.writeJSON(w, http.StatusOK, exec)
}

// AnalyzeComplexity handles the POST /api/analyze-complexity request.
func (s *Server) AnalyzeComplexity(w http.ResponseWriter, r *http.Request) {
	var body AnalyzeComplexityRequest
	if !s.decode(w, r, "AnalyzeComplexityRequest", &body) {
		return
	}

	analysis, err := s.Service.Analyze(r.Context(), body.AlgorithmType, body.ArraySize)
	if err != nil {
		s.fail(w, "AnalyzeComplexity", err)
		return
	}
	s.writeJSON(w, http.StatusOK, analysis)
}

// QueryAssistant handles the POST /api/ai/query request.
func (s *Server) QueryAssistant(w http.ResponseWriter, r *http.Request) {
	var body AIQueryRequest
	if !s.decode(w, r, "AIQueryRequest", &body) {
		return
	}

	var algorithmContext string
	if body.Context != nil {
		algorithmContext = *body.Context
	}
	answer, err := s.Service.Ask(r.Context(), body.UserQuery, algorithmContext)
	if err != nil {
		s.fail(w, "QueryAssistant", err)
		return
	}
	s.writeJSON(w, http.StatusOK, answer)
}

// ListHistory handles the GET /api/history request.
func (s *Server) ListHistory(w http.ResponseWriter, r *http.Request) {
	var params ListHistoryParams

	if err := runtime.BindQueryParameter("form", true, false, "algorithm_type", r.URL.Query(), &params.AlgorithmType); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter algorithm_type: %v", err))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %v", err))
		return
	}

	var filter domain.HistoryFilter
	if params.AlgorithmType != nil {
		filter.AlgorithmType = domain.AlgorithmID(*params.AlgorithmType)
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
		if filter.Limit == 0 {
			// Zero would silently select the default page size.
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("%v: 0 (must be 1..%d)", domain.ErrInvalidLimit, domain.MaxHistoryLimit))
			return
		}
	}

	page, err := s.Service.History(r.Context(), filter)
	if err != nil {
		s.fail(w, "ListHistory", err)
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

// GetHistoryEntry handles the GET /api/history/{id} request.
func (s *Server) GetHistoryEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.Service.HistoryEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, "GetHistoryEntry", err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

// -- Helpers --

// decode reads the body, validates it against the named schema and
// unmarshals it into dst. It writes the error response itself.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, schemaName string, dst any) bool {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		s.logger.Warn("Invalid request body", "path", r.URL.Path, "err", err)
		return false
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		s.logger.Warn("Invalid request body", "path", r.URL.Path, "err", err)
		return false
	}
	if err := validateBody(schemaName, raw); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		s.logger.Warn("Request rejected by schema", "path", r.URL.Path, "schema", schemaName, "err", err)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownAlgorithm),
		errors.Is(err, domain.ErrMissingSearchTarget),
		errors.Is(err, domain.ErrInvalidArraySize),
		errors.Is(err, domain.ErrInvalidLimit),
		errors.Is(err, domain.ErrEmptyQuery),
		errors.Is(err, domain.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrExecutionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAssistantUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		s.logger.Error(op+" failed", "err", err)
		s.writeError(w, status, fmt.Sprintf("Internal server error: %v", err))
		return
	}
	s.logger.Warn(op+" rejected", "status", status, "err", err)
	s.writeError(w, status, err.Error())
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, ErrorResponse{Detail: detail})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
