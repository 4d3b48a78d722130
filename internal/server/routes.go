package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Stream lifecycle
	s.echo.POST("/api/stream/start", s.handleStreamStart)
	s.echo.POST("/api/stream/pause", s.handleStreamPause)
	s.echo.POST("/api/stream/stop", s.handleStreamStop)
	s.echo.POST("/api/stream/reset", s.handleStreamReset)
	s.echo.GET("/api/stream/status", s.handleStreamStatus)

	// Bulk ingestion
	s.echo.POST("/api/upload", s.handleUpload)
	s.echo.GET("/api/jobs/:id", s.handleJobStatus)

	// One-off analysis
	s.echo.POST("/api/analyze/single", s.handleAnalyzeSingle)

	// Aggregates
	s.echo.GET("/api/dashboard", s.handleDashboard)
	s.echo.GET("/api/insights/summary", s.handleSummary)

	// Live feed
	s.echo.GET("/ws/live", s.handleLiveWebSocket)
}
