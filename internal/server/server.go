package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/config"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
	apperrors "github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/errors"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/report"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/stream"
)

// streamController drives the synthetic feed lifecycle.
type streamController interface {
	Start(interval time.Duration) string
	Stop() string
	Pause() string
	Reset() string
	State() stream.State
	Running() bool
}

// jobManager accepts bulk-ingestion batches and reports job state.
type jobManager interface {
	Submit(batch domain.Batch) (uuid.UUID, error)
	GetStatus(id uuid.UUID) (domain.Job, error)
}

// reporter builds the aggregate views served on the dashboard endpoints.
type reporter interface {
	Dashboard(ctx context.Context) (report.Dashboard, error)
	Summary(ctx context.Context) (report.Summary, error)
}

// broadcaster is the hub surface the WebSocket handler needs.
type broadcaster interface {
	Register(conn *websocket.Conn, welcome func(clients int) []byte) error
	Unregister(conn *websocket.Conn)
	Send(conn *websocket.Conn, data []byte)
	Count() int
}

// postgresPinger is the minimal interface for readiness checks.
type postgresPinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo       *echo.Echo
	config     *config.Config
	analyzer   domain.Analyzer
	controller streamController
	jobs       jobManager
	reports    reporter
	hub        broadcaster
	db         postgresPinger

	uploadLimiter *rate.Limiter
	startTime     time.Time
}

func NewServer(cfg *config.Config, analyzer domain.Analyzer, controller streamController, jobs jobManager, reports reporter, hub broadcaster, db postgresPinger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	perSecond := rate.Limit(float64(cfg.UploadRatePerMinute) / 60.0)

	srv := &Server{
		echo:          e,
		config:        cfg,
		analyzer:      analyzer,
		controller:    controller,
		jobs:          jobs,
		reports:       reports,
		hub:           hub,
		db:            db,
		uploadLimiter: rate.NewLimiter(perSecond, cfg.UploadBurst),
		startTime:     time.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
