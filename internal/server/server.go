// Package server serves the counter's host page and WASM build artifacts.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vcrobe/nojs-counter/web"
)

// Assets the server is willing to read from the assets directory, with their
// content types.
var assetTypes = map[string]string{
	"wasm_exec.js": "text/javascript; charset=utf-8",
	"main.wasm":    "application/wasm",
}

// ErrAssetNotFound is returned when an asset is unknown or missing on disk.
var ErrAssetNotFound = errors.New("asset not found")

type Config struct {
	Addr      string
	AssetsDir string
	// CacheTTL bounds how long asset bytes are served from memory, so a
	// rebuilt main.wasm shows up without a restart.
	CacheTTL        time.Duration
	ShutdownTimeout time.Duration
}

type Server struct {
	cfg      Config
	logger   *zap.SugaredLogger
	assets   *cache.Cache
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	router   chi.Router
}

// New checks that the assets directory exists and builds the router.
func New(cfg Config, logger *zap.Logger) (*Server, error) {
	fi, err := os.Stat(cfg.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("assets dir: %s is not a directory", cfg.AssetsDir)
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 2 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}

	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		logger:   logger.Sugar(),
		assets:   cache.New(cfg.CacheTTL, 4*cfg.CacheTTL),
		registry: reg,
		requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "counter_server_requests_total",
			Help: "HTTP requests served, by route pattern and status code.",
		}, []string{"route", "code"}),
	}
	s.router = s.routes()

	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/{asset}", s.handleAsset)

	return r
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s.logger.Infof("listening on %s, assets from %s", s.cfg.Addr, s.cfg.AssetsDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("srv.Shutdown: %w", err)
		}
		s.logger.Info("server stopped")
		return nil
	})

	return eg.Wait()
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		s.requests.WithLabelValues(route, fmt.Sprint(status)).Inc()

		s.logger.Debugw("request",
			zap.String("id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.String("size", humanize.Bytes(uint64(ww.BytesWritten()))),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(web.IndexHTML)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "asset")

	data, err := s.readAsset(name)
	if errors.Is(err, ErrAssetNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Errorf("read asset %s: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", assetTypes[name])
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}

// readAsset returns the bytes of a known asset, from cache when fresh.
func (s *Server) readAsset(name string) ([]byte, error) {
	if _, ok := assetTypes[name]; !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrAssetNotFound)
	}
	if v, ok := s.assets.Get(name); ok {
		return v.([]byte), nil
	}

	data, err := os.ReadFile(filepath.Join(s.cfg.AssetsDir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrAssetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	s.assets.SetDefault(name, data)
	s.logger.Debugf("loaded %s (%s)", name, humanize.Bytes(uint64(len(data))))

	return data, nil
}
