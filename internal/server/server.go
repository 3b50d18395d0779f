package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Domje/Arc-Looterputer/internal/handler"
	"github.com/Domje/Arc-Looterputer/internal/hideout"
	"github.com/Domje/Arc-Looterputer/internal/info"
	"github.com/Domje/Arc-Looterputer/internal/locale"
	"github.com/Domje/Arc-Looterputer/internal/logger"
	"github.com/Domje/Arc-Looterputer/internal/metrics"
	"github.com/Domje/Arc-Looterputer/internal/search"
	"github.com/Domje/Arc-Looterputer/internal/shoppinglist"
	"github.com/Domje/Arc-Looterputer/internal/sse"
)

// Options configures the HTTP layer.
type Options struct {
	Port              int
	APIKey            string
	TrustedProxies    []string
	MaxBodyBytes      int64
	RequestsPerWindow int
}

// Services are the dependencies the routes are wired to.
type Services struct {
	Storage      handler.Pinger
	Search       search.Service
	Hideout      hideout.Service
	ShoppingList shoppinglist.Service
	Translator   *locale.Translator
	Info         *info.Loader
	Hub          *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Exposed for tests that drive the API
// through httptest.
func NewRouter(opts Options, svc Services) http.Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.RequestsPerWindow, RateWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Storage))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))

		r.Get("/info", handler.HandleGetInfo(svc.Info))
		r.Get("/events", sse.Handler(svc.Hub))

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleSearchItems(svc.Search, svc.Translator))
			r.Get("/keywords", handler.HandleListKeywords())
			r.Get("/{id}", handler.HandleGetItem(svc.Search))
		})

		r.Route("/hideout", func(r chi.Router) {
			r.Get("/", handler.HandleListModules(svc.Hideout))
			r.Get("/{id}", handler.HandleGetModule(svc.Hideout))
			r.Get("/{id}/levels/{level}", handler.HandleGetLevel(svc.Hideout))
			r.Get("/{id}/craftables", handler.HandleGetCraftables(svc.Hideout))
		})

		r.Route("/shopping-list", func(r chi.Router) {
			r.Get("/", handler.HandleGetShoppingList(svc.ShoppingList, svc.Translator))
			r.Post("/", handler.HandleAddToShoppingList(svc.ShoppingList))
			r.Delete("/", handler.HandleClearShoppingList(svc.ShoppingList))
			r.Post("/recipe", handler.HandleAddRecipe(svc.ShoppingList))
			r.Post("/upgrade", handler.HandleAddUpgrade(svc.ShoppingList))
			r.Delete("/{key}", handler.HandleRemoveFromShoppingList(svc.ShoppingList))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the SSE stream working through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
