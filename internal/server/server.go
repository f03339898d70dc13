package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/GielinorRush_Go/internal/database"
	"github.com/osse101/GielinorRush_Go/internal/handler"
	"github.com/osse101/GielinorRush_Go/internal/metrics"
	"github.com/osse101/GielinorRush_Go/internal/treasure"
)

// Options configure the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
	Detector       DetectorConfig
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svc treasure.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the full route tree
func NewRouter(opts Options, dbPool database.Pool, svc treasure.Service) http.Handler {
	r := chi.NewRouter()

	// Outermost first
	detector := NewActivityDetector(opts.Detector)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	h := handler.NewTreasureHandler(svc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/objectives", handler.HandleGetObjectiveCatalog())
			r.Get("/buffs", handler.HandleGetBuffCatalog())
		})

		r.Post("/events", h.HandleCreateEvent)
		r.Route("/events/{eventID}", func(r chi.Router) {
			r.Get("/", h.HandleGetEvent)
			r.Get("/map", h.HandleGetMap)
			r.Post("/map/generate", h.HandleGenerateMap)
			r.Post("/close", h.HandleCloseEvent)
			r.Get("/leaderboard", h.HandleLeaderboard)

			r.Post("/teams", h.HandleCreateTeam)
			r.Route("/teams/{teamID}", func(r chi.Router) {
				r.Get("/", h.HandleGetTeam)
				r.Post("/complete", h.HandleCompleteNode)
				r.Post("/uncomplete", h.HandleUncompleteNode)
				r.Post("/buffs/apply", h.HandleApplyBuff)
				r.Post("/inn/purchase", h.HandlePurchaseInnReward)

				r.Route("/admin", func(r chi.Router) {
					r.Post("/grant-buff", h.HandleGrantBuff)
					r.Post("/adjust-pot", h.HandleAdjustPot)
					r.Post("/adjust-keys", h.HandleAdjustKeys)
				})
			})
		})
	})

	return r
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start listens and serves until Stop is called
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.httpServer.Addr, err)
	}

	slog.Default().Info(LogMsgServerStarting, "addr", ln.Addr().String())
	err = s.httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		slog.Default().Info(LogMsgServerStopped)
		return nil
	}
	return err
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
