package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newshub/pkg/aggregator"
	"github.com/umputun/newshub/pkg/db"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/aggregator.go -pkg mocks -skip-ensure -fmt goimports . Aggregator

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	store      Store
	aggregator Aggregator
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store interface for server data access
type Store interface {
	ListArticles(ctx context.Context, req db.ArticlesRequest) ([]db.ArticleDetail, int64, error)
	GetArticle(ctx context.Context, id int64) (*db.ArticleDetail, error)
	GetEnabledCategories(ctx context.Context) ([]db.Category, error)
	GetEnabledSources(ctx context.Context) ([]db.Source, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*db.Category, error)
	GetSourceBySlug(ctx context.Context, slug string) (*db.Source, error)
	GetPreference(ctx context.Context, userID string) (*db.UserPreference, error)
	UpsertPreference(ctx context.Context, pref *db.UserPreference) error
}

// Aggregator interface for manual aggregation triggers
type Aggregator interface {
	RunAll(ctx context.Context) ([]aggregator.FetchResult, error)
	RunOne(ctx context.Context, slug string, force bool) (aggregator.FetchResult, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, agg Aggregator, version string, debug bool) *Server {
	s := &Server{
		config:     cfg,
		store:      store,
		aggregator: agg,
		version:    version,
		debug:      debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newshub", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /news", s.newsListHandler)
		r.HandleFunc("GET /news/trending", s.trendingHandler)
		r.HandleFunc("GET /news/{id}", s.newsHandler)

		r.HandleFunc("GET /categories", s.categoriesHandler)
		r.HandleFunc("GET /sources", s.sourcesHandler)

		r.HandleFunc("GET /preferences/{userID}", s.getPreferencesHandler)
		r.HandleFunc("PUT /preferences/{userID}", s.updatePreferencesHandler)

		r.HandleFunc("POST /aggregate", s.aggregateHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
