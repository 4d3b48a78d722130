package server

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/errors"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Emotion    string  `json:"emotion"`
}

func (s *Server) handleAnalyzeSingle(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("request body must be JSON with a 'text' field")
	}
	if strings.TrimSpace(req.Text) == "" {
		return apperrors.ValidationError("text is required")
	}

	result, err := s.analyzer.Analyze(req.Text)
	if err != nil {
		return apperrors.InternalError("analysis failed", err)
	}

	return c.JSON(200, analyzeResponse{
		Sentiment:  result.Sentiment,
		Confidence: result.Confidence,
		Emotion:    result.Emotion,
	})
}
