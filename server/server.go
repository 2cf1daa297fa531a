package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/poiesic/semlayer/core"
)

// defaultTopK is used when a query request omits top_k.
const defaultTopK = 5

// maxTopK bounds top_k at the service boundary; the pipeline itself only
// requires top_k >= 1.
const maxTopK = 20

// Querier is the slice of the engine the server needs.
type Querier interface {
	Query(ctx context.Context, text string, topK int) ([]*core.RankedResult, error)
}

// Server exposes the retrieval pipeline over HTTP.
type Server struct {
	querier Querier
	router  chi.Router
	logger  *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// New creates an HTTP server over the given querier.
func New(querier Querier, opts ...Option) (*Server, error) {
	if querier == nil {
		return nil, ErrQuerierRequired
	}

	s := &Server{
		querier: querier,
		logger:  slog.Default().With("component", "server"),
	}
	for _, opt := range opts {
		opt(s)
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(s.requestLogger)

	router.Get("/health", s.handleHealth)
	router.Post("/query", s.handleQuery)

	s.router = router
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server on addr and blocks until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}

// queryRequest is the body of POST /query.
type queryRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

// errorResponse is the body of any non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "semlayer",
	})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.TopK == 0 {
		req.TopK = defaultTopK
	}
	if req.TopK < 1 || req.TopK > maxTopK {
		s.respondError(w, http.StatusBadRequest, "top_k must be between 1 and 20")
		return
	}

	results, err := s.querier.Query(r.Context(), req.Query, req.TopK)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrEmptyQuery) || errors.Is(err, core.ErrInvalidTopK) {
			status = http.StatusBadRequest
		}
		s.logger.Error("query failed", "err", err)
		s.respondError(w, status, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, results)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("error encoding response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Error: message})
}
