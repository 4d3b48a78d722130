package server

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
	apperrors "github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/errors"
)

func (s *Server) handleJobStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid job id").WithContext("id", c.Param("id"))
	}

	job, err := s.jobs.GetStatus(id)
	if errors.Is(err, domain.ErrJobNotFound) {
		return apperrors.NotFoundError("job not found").WithContext("id", id.String())
	}
	if err != nil {
		return apperrors.InternalError("failed to load job", err)
	}

	return c.JSON(200, job)
}
