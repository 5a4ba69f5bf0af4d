// Package server provides the HTTP REST API for ChalkBox skill matching.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/chalkbox/internal/config"
	"github.com/jonathan/chalkbox/internal/db"
	"github.com/jonathan/chalkbox/internal/ranking"
	"github.com/jonathan/chalkbox/internal/recommend"
	"github.com/jonathan/chalkbox/internal/server/middleware"
	"github.com/jonathan/chalkbox/internal/server/ratelimit"
	"github.com/jonathan/chalkbox/internal/skills"
	"github.com/jonathan/chalkbox/internal/types"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// MarketplaceStore covers the job and workshop writes exposed by the API.
type MarketplaceStore interface {
	GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error)
	GetWorkshop(ctx context.Context, id uuid.UUID) (*types.Workshop, error)
	CreateJob(ctx context.Context, input db.JobInput) (*types.Job, error)
	CreateWorkshop(ctx context.Context, input db.WorkshopInput) (*types.Workshop, error)
	ApplyToJob(ctx context.Context, jobID, userID uuid.UUID) error
	AttendWorkshop(ctx context.Context, workshopID, userID uuid.UUID) error
}

// Store is everything the server reads and writes. *db.DB implements it.
type Store interface {
	DBClient
	recommend.Store
	MarketplaceStore
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	logger      *slog.Logger
	store       Store
	closeStore  func()
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	recommender *recommend.Service
	validator   *validator.Validate
	maxLimit    int
}

// Config holds server configuration
type Config struct {
	Port                int
	DatabaseURL         string
	Taxonomy            *skills.Taxonomy // nil means skills.Default()
	RecommendationLimit int              // default page size for ranked lists
	Logger              *slog.Logger
}

// New connects to the database and creates a new server instance.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	database, err := db.Connect(context.Background(), cfg.DatabaseURL, db.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := newServer(cfg, database, NewJWTService(jwtConfig), passwordConfig, ratelimit.NewLimiter(ratelimit.LoadConfig()))
	s.closeStore = database.Close
	return s, nil
}

// newServer wires handlers around already-built dependencies.
func newServer(cfg Config, store Store, jwtService *JWTService, passwordConfig *config.PasswordConfig, limiter *ratelimit.Limiter) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		logger:      logger,
		store:       store,
		closeStore:  func() {},
		rateLimiter: limiter,
		jwtService:  jwtService,
		userService: NewUserService(store, passwordConfig),
		recommender: recommend.NewService(store, ranking.NewScorer(cfg.Taxonomy),
			recommend.WithLogger(logger),
			recommend.WithDefaultLimit(cfg.RecommendationLimit)),
		validator: validator.New(),
		maxLimit:  config.MaxRecommendationLimit,
	}
	s.authHandler = NewAuthHandler(s.userService, jwtService, logger)

	auth := middleware.AuthMiddleware(jwtService.AsTokenValidator())
	students := middleware.RequireRole(string(types.RoleStudent))
	employers := middleware.RequireRole(string(types.RoleEmployer))

	mux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /taxonomy", s.handleTaxonomy)
	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Authenticated profile endpoints
	mux.Handle("GET /me", auth(http.HandlerFunc(s.handleGetMe)))
	mux.Handle("PUT /me/skills", auth(http.HandlerFunc(s.handleUpdateSkills)))
	mux.Handle("GET /me/recommendations/jobs", auth(http.HandlerFunc(s.handleRecommendJobs)))
	mux.Handle("GET /me/recommendations/workshops", auth(http.HandlerFunc(s.handleRecommendWorkshops)))

	// Marketplace endpoints
	mux.Handle("POST /jobs", auth(employers(http.HandlerFunc(s.handleCreateJob))))
	mux.Handle("GET /jobs/{id}/candidates", auth(employers(http.HandlerFunc(s.handleJobCandidates))))
	mux.Handle("POST /jobs/{id}/applications", auth(students(http.HandlerFunc(s.handleApplyToJob))))
	mux.Handle("POST /workshops", auth(employers(http.HandlerFunc(s.handleCreateWorkshop))))
	mux.Handle("POST /workshops/{id}/attendances", auth(students(http.HandlerFunc(s.handleAttendWorkshop))))

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM,
// then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			s.shutdownDeps()
			return fmt.Errorf("server error: %w", err)
		}
	case <-stop:
	}

	s.logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.shutdownDeps()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) shutdownDeps() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	s.closeStore()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.rateLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote", r.RemoteAddr,
			"duration", time.Since(start),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps err to a status and writes it. 5xx causes are logged, not returned.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	errorResponse(w, status, clientMessage(err))
}

// decodeJSON reads a bounded JSON body into v and validates its struct tags.
func decodeJSON(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	if err := v.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// validationError converts the first validator failure into an ErrValidation.
func validationError(err error) *ErrValidation {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "request", Message: "invalid request"}
}

// parseLimit reads the optional ?limit= parameter. Missing means 0 (service default);
// values above the server maximum are capped.
func (s *Server) parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, &ErrValidation{Field: "limit", Message: "must be a positive integer"}
	}
	return min(limit, s.maxLimit), nil
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is not trusted.
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
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded",
		"client", s.extractClientID(r),
		"path", r.URL.Path,
		"limit", info.Limit,
		"reset_at", info.ResetTime.Format(time.RFC3339),
	)

	jsonResponse(w, http.StatusTooManyRequests, response)
}
