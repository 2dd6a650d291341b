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

	"github.com/osse101/CardBinder_Go/internal/card"
	"github.com/osse101/CardBinder_Go/internal/collection"
	"github.com/osse101/CardBinder_Go/internal/deck"
	"github.com/osse101/CardBinder_Go/internal/handler"
	"github.com/osse101/CardBinder_Go/internal/importsource"
	"github.com/osse101/CardBinder_Go/internal/logger"
	"github.com/osse101/CardBinder_Go/internal/metrics"
	"github.com/osse101/CardBinder_Go/internal/price"
	"github.com/osse101/CardBinder_Go/internal/user"
	"github.com/osse101/CardBinder_Go/internal/wishlist"
)

// Services bundles everything the router needs.
type Services struct {
	User         user.Service
	Card         card.Service
	Collection   collection.Service
	Wishlist     wishlist.Service
	Price        price.Service
	Deck         deck.Service
	ImportSource importsource.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     handler.Pinger
	services   Services
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool handler.Pinger, services Services) *Server {
	r := chi.NewRouter()

	// Middleware stack, outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Unversioned operational endpoints
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Catalog routes
		r.Route("/cards", func(r chi.Router) {
			r.Get("/", handler.HandleSearchCards(services.Card))
			r.Get("/{id}", handler.HandleGetCard(services.Card))
			r.Get("/{id}/printings", handler.HandleListPrintings(services.Card))
		})
		r.Get("/printings/{id}", handler.HandleGetPrinting(services.Card))

		// Collection routes
		r.Route("/collection/cards", func(r chi.Router) {
			r.Get("/", handler.HandleGetCollection(services.Collection))
			r.Put("/", handler.HandleSetQuantities(services.Collection))
			r.Post("/delta", handler.HandleApplyDelta(services.Collection))
			r.Post("/quick-add", handler.HandleQuickAdd(services.Collection))
			r.Post("/bulk", handler.HandleBulkApply(services.Collection))
		})

		// Wishlist routes
		r.Route("/wishlist/cards", func(r chi.Router) {
			r.Get("/", handler.HandleGetWishlist(services.Wishlist))
			r.Put("/", handler.HandleSetWanted(services.Wishlist))
			r.Post("/delta", handler.HandleWantedDelta(services.Wishlist))
			r.Post("/quick-add", handler.HandleWishlistQuickAdd(services.Wishlist))
			r.Post("/move-to-collection", handler.HandleMoveToCollection(services.Wishlist))
		})

		// Price routes
		r.Get("/prices/{printingId}/history", handler.HandleGetPriceHistory(services.Price))

		// Deck routes
		r.Route("/decks", func(r chi.Router) {
			r.Get("/", handler.HandleListDecks(services.Deck))
			r.Post("/", handler.HandleCreateDeck(services.Deck))
			r.Get("/{id}", handler.HandleGetDeck(services.Deck))
			r.Put("/{id}", handler.HandleUpdateDeck(services.Deck))
			r.Delete("/{id}", handler.HandleDeleteDeck(services.Deck))
			r.Put("/{id}/cards", handler.HandleSetDeckCards(services.Deck))
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Route("/users", func(r chi.Router) {
				r.Get("/", handler.HandleListUsers(services.User))
				r.Post("/", handler.HandleRegisterUser(services.User))
				r.Get("/{id}", handler.HandleGetUser(services.User))
				r.Put("/{id}/admin", handler.HandleSetAdmin(services.User))
				r.Delete("/{id}", handler.HandleDeleteUser(services.User))
			})

			r.Route("/import-sources", func(r chi.Router) {
				r.Get("/", handler.HandleListImportSources(services.ImportSource))
				r.Post("/", handler.HandleCreateImportSource(services.ImportSource))
				r.Put("/{id}", handler.HandleUpdateImportSource(services.ImportSource))
				r.Delete("/{id}", handler.HandleDeleteImportSource(services.ImportSource))
			})

			r.Get("/cache-stats", handler.HandleCacheStats(services.Card))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:   dbPool,
		services: services,
	}
}

// Handler exposes the configured router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health and metrics probes would drown out real traffic.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
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
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
