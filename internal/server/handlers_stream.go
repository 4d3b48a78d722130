package server

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/config"
	apperrors "github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/errors"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/stream"
)

type streamLifecycleResponse struct {
	Status          string  `json:"status"`
	IntervalSeconds float64 `json:"interval_seconds,omitempty"`
}

type streamStatusResponse struct {
	stream.State
	Clients int `json:"clients"`
}

func (s *Server) handleStreamStart(c echo.Context) error {
	interval := s.config.StreamInterval

	if raw := c.QueryParam("interval"); raw != "" {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil || seconds <= 0 {
			return apperrors.ValidationError("interval must be a positive number of seconds").
				WithContext("interval", raw)
		}
		interval = clampInterval(time.Duration(seconds * float64(time.Second)))
	}

	status := s.controller.Start(interval)
	return c.JSON(200, streamLifecycleResponse{
		Status:          status,
		IntervalSeconds: interval.Seconds(),
	})
}

func (s *Server) handleStreamPause(c echo.Context) error {
	return c.JSON(200, streamLifecycleResponse{Status: s.controller.Pause()})
}

func (s *Server) handleStreamStop(c echo.Context) error {
	return c.JSON(200, streamLifecycleResponse{Status: s.controller.Stop()})
}

func (s *Server) handleStreamReset(c echo.Context) error {
	return c.JSON(200, streamLifecycleResponse{Status: s.controller.Reset()})
}

func (s *Server) handleStreamStatus(c echo.Context) error {
	return c.JSON(200, streamStatusResponse{
		State:   s.controller.State(),
		Clients: s.hub.Count(),
	})
}

// clampInterval bounds a requested tick interval to the supported range.
func clampInterval(d time.Duration) time.Duration {
	if d < config.MinStreamInterval {
		return config.MinStreamInterval
	}
	if d > config.MaxStreamInterval {
		return config.MaxStreamInterval
	}
	return d
}
