package server

import (
	"github.com/labstack/echo/v4"

	apperrors "github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/errors"
)

func (s *Server) handleDashboard(c echo.Context) error {
	dashboard, err := s.reports.Dashboard(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to build dashboard", err)
	}
	return c.JSON(200, dashboard)
}

func (s *Server) handleSummary(c echo.Context) error {
	summary, err := s.reports.Summary(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to build summary", err)
	}
	return c.JSON(200, summary)
}
