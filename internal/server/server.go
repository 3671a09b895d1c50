// Package server provides the HTTP REST API for the resume studio.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/engine"
	"github.com/jonathan/resume-studio/internal/fetch"
	"github.com/jonathan/resume-studio/internal/keystore"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/scheduler"
	"github.com/jonathan/resume-studio/internal/server/ratelimit"
	"github.com/jonathan/resume-studio/internal/storage"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       *storage.Store
	sched       *scheduler.Scheduler
	renderer    *render.Renderer
	keys        *keystore.Keystore
	fetcher     *fetch.PostingFetcher
	rateLimiter *ratelimit.Limiter
	validate    *validator.Validate

	provider string
	model    string
	apiKey   string

	mu    sync.Mutex
	pages int // page count of the last compiled document

	// newClient is swapped out in tests to avoid real provider calls
	newClient func(ctx context.Context, cfg *llm.Config, apiKey string) (llm.Client, error)
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabasePath string
	LatexBinary  string
	Debounce     time.Duration
	Provider     string
	Model        string
	APIKey       string
	UseBrowser   bool
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newServer(cfg, store, engine.NewPDFLaTeX(cfg.LatexBinary))
}

// newServer wires the server over explicit dependencies
func newServer(cfg Config, store *storage.Store, eng engine.Engine) (*Server, error) {
	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	s := &Server{
		store:     store,
		sched:     scheduler.New(eng, cfg.Debounce),
		renderer:  renderer,
		keys:      keystore.New(store),
		validate:  validator.New(),
		provider:  cfg.Provider,
		model:     cfg.Model,
		apiKey:    cfg.APIKey,
		newClient: llm.NewClient,
	}

	s.fetcher = fetch.NewPostingFetcher(store)
	s.fetcher.UseBrowser = cfg.UseBrowser

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for tailoring runs
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request multiplexer
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Compilation and preview
	mux.HandleFunc("POST /api/compile", s.handleCompile)
	mux.HandleFunc("GET /api/preview/pages", s.handlePageCount)
	mux.HandleFunc("GET /api/preview/pages/{n}", s.handlePreviewPage)

	// Tailoring
	mux.HandleFunc("POST /api/tailor", s.handleTailor)
	mux.HandleFunc("POST /api/tailor/stream", s.handleTailorStream)

	// Working state
	mux.HandleFunc("GET /api/state", s.handleGetState)
	mux.HandleFunc("PUT /api/state", s.handlePutState)

	// Saved copies
	mux.HandleFunc("GET /api/copies", s.handleListCopies)
	mux.HandleFunc("POST /api/copies", s.handleCreateCopy)
	mux.HandleFunc("GET /api/copies/{id}", s.handleGetCopy)
	mux.HandleFunc("PUT /api/copies/{id}", s.handleUpdateCopy)
	mux.HandleFunc("PUT /api/copies/{id}/name", s.handleRenameCopy)
	mux.HandleFunc("DELETE /api/copies/{id}", s.handleDeleteCopy)

	// API keys
	mux.HandleFunc("PUT /api/keys/{provider}", s.handlePutAPIKey)
	mux.HandleFunc("GET /api/keys/{provider}", s.handleGetAPIKey)
	mux.HandleFunc("DELETE /api/keys/{provider}", s.handleDeleteAPIKey)

	return mux
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.sched.Run(ctx)
	})

	g.Go(func() error {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	err := g.Wait()

	s.sched.Close()
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if closeErr := s.store.Close(); closeErr != nil {
		log.Printf("Error closing database: %v", closeErr)
	}
	log.Println("Server stopped")

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, X-Keystore-Passphrase")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
