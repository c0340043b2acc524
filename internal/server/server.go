package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tsdice/emojisummary/internal/config"
	"github.com/tsdice/emojisummary/internal/glyph"
	"github.com/tsdice/emojisummary/internal/handler"
	"github.com/tsdice/emojisummary/internal/infrastructure/sources"
	_ "github.com/tsdice/emojisummary/internal/infrastructure/sources/formsource"
	_ "github.com/tsdice/emojisummary/internal/infrastructure/sources/jsonsource"
	"github.com/tsdice/emojisummary/internal/observability"
	"github.com/tsdice/emojisummary/internal/response"
)

const (
	newRelicShutdownTimeout = 5 * time.Second
	// maxConfigBody caps POST /api/v1/emojis bodies; larger ones get a 413.
	maxConfigBody = "64K"
)

// Server holds the Echo app and dependencies.
type Server struct {
	Echo     *echo.Echo
	Config   *config.Config
	Logger   zerolog.Logger
	metrics  *observability.Metrics
	newRelic *newrelic.Application
}

// Option adjusts server dependencies, mainly for tests.
type Option func(*options)

type options struct {
	selector *glyph.Selector
	registry *sources.Registry
}

// WithSelector replaces the default selector, e.g. to pin the fallback draws.
func WithSelector(s *glyph.Selector) Option {
	return func(o *options) { o.selector = s }
}

// WithSources replaces sources.GlobalRegistry.
func WithSources(r *sources.Registry) Option {
	return func(o *options) { o.registry = r }
}

// New builds the Echo server and registers routes.
func New(cfg *config.Config, log zerolog.Logger, opts ...Option) *Server {
	o := &options{selector: glyph.NewSelector(), registry: sources.GlobalRegistry}
	for _, opt := range opts {
		opt(o)
	}
	obs := cfg.Observability
	if obs == nil {
		obs = config.DefaultObservabilityConfig()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.HTTPErrorHandler = response.HTTPErrorHandler
	e.Server.ReadTimeout = time.Duration(cfg.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.Server.WriteTimeout) * time.Second
	e.Server.IdleTimeout = time.Duration(cfg.Server.IdleTimeout) * time.Second

	e.Use(
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		requestLogger(log),
		middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.Server.CORSAllowedOrigins}),
	)

	nrApp, err := observability.NewNewRelic(obs)
	if err != nil {
		log.Warn().Err(err).Msg("new relic disabled")
		nrApp = nil
	}
	if nrApp != nil {
		e.Use(observability.NewRelicMiddleware(nrApp))
		log.Info().Str("app", obs.ServiceName).Msg("new relic enabled")
	}

	var metrics *observability.Metrics
	if obs.Metrics.Enabled {
		metrics = observability.NewMetrics("emojisummary")
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	e.GET("/healthz", func(c echo.Context) error {
		return response.OK(c, map[string]any{"status": "ok"}, "")
	})

	emojiHandler := &handler.EmojiHandler{
		Selector: o.selector,
		Sources:  o.registry,
		Metrics:  metrics,
		NewRelic: nrApp,
		Logger:   log,
	}

	api := e.Group("/api/v1")
	if cfg.Server.RateLimit > 0 {
		api.Use(rateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst))
	}
	api.GET("/emojis", emojiHandler.SelectFromQuery)
	api.POST("/emojis", emojiHandler.Select, middleware.BodyLimit(maxConfigBody))
	api.GET("/fields", emojiHandler.ListFields)
	api.GET("/fields/:name", emojiHandler.GetField)
	api.GET("/sources", emojiHandler.ListSources)
	api.GET("/sources/:name", emojiHandler.GetSource)

	log.Info().Strs("sources", o.registry.ListRegistered()).Msg("registered config sources")

	return &Server{Echo: e, Config: cfg, Logger: log, metrics: metrics, newRelic: nrApp}
}

// Start serves HTTP until ctx is cancelled or the listener fails. On
// cancellation the server is shut down gracefully.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			s.Logger.Error().Err(err).Msg("shutdown")
		}
	}()
	addr := ":" + s.Config.Server.Port
	s.Logger.Info().Str("addr", addr).Msg("http server listening")
	if err := s.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server and flushes New Relic.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.Echo.Shutdown(ctx)
	observability.ShutdownNewRelic(s.newRelic, newRelicShutdownTimeout)
	return err
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

func rateLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, http.StatusForbidden, "could not identify client", err.Error())
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.TooManyRequests(c)
		},
	})
}
