package server

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
	apperrors "github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/errors"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/jobs"
)

type uploadAccepted struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type jsonUploadRequest struct {
	Texts []string `json:"texts"`
}

// handleUpload accepts either a multipart CSV upload or a JSON body with a
// "texts" array and submits the extracted batch for asynchronous ingestion.
func (s *Server) handleUpload(c echo.Context) error {
	if !s.uploadLimiter.Allow() {
		return apperrors.RateLimitedError("upload rate exceeded, try again later")
	}

	var batch domain.Batch
	var err error

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		batch, err = s.batchFromCSV(c)
	} else {
		batch, err = batchFromJSON(c)
	}
	if err != nil {
		return err
	}

	jobID, err := s.jobs.Submit(batch)
	switch {
	case errors.Is(err, domain.ErrEmptyBatch):
		return apperrors.ValidationError("upload contains no texts")
	case errors.Is(err, domain.ErrQueueFull):
		return apperrors.ConflictError("ingestion queue is full, try again later")
	case err != nil:
		return apperrors.InternalError("failed to submit ingestion job", err)
	}

	return c.JSON(202, uploadAccepted{JobID: jobID.String(), Status: "accepted"})
}

func (s *Server) batchFromCSV(c echo.Context) (domain.Batch, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.Batch{}, apperrors.ValidationError("multipart upload requires a 'file' field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.Batch{}, apperrors.InternalError("failed to open uploaded file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return domain.Batch{}, apperrors.ValidationError("uploaded file is empty")
	}
	if err != nil {
		return domain.Batch{}, apperrors.ValidationError("uploaded file is not valid CSV").
			WithContext("filename", fileHeader.Filename)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.Batch{}, apperrors.ValidationError("uploaded file is not valid CSV").
			WithContext("filename", fileHeader.Filename)
	}

	columnIdx, columnName, err := jobs.DetectTextColumn(header, rows)
	if err != nil {
		return domain.Batch{}, apperrors.ValidationError("could not detect a text column").
			WithContext("filename", fileHeader.Filename)
	}

	texts := make([]string, 0, len(rows))
	for _, row := range rows {
		if columnIdx < len(row) {
			texts = append(texts, row[columnIdx])
		}
	}

	return domain.Batch{Texts: texts, TextColumn: columnName}, nil
}

func batchFromJSON(c echo.Context) (domain.Batch, error) {
	var req jsonUploadRequest
	if err := c.Bind(&req); err != nil {
		return domain.Batch{}, apperrors.ValidationError("request body must be JSON with a 'texts' array")
	}
	return domain.Batch{Texts: req.Texts}, nil
}
