package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle state of one bulk-ingestion job.
// Transitions: queued -> processing -> done | error. Terminal once done or error.
type JobStatus string

const (
	JobQueued     JobStatus = "queued"
	JobProcessing JobStatus = "processing"
	JobDone       JobStatus = "done"
	JobError      JobStatus = "error"
)

// Terminal reports whether the status is final.
func (s JobStatus) Terminal() bool {
	return s == JobDone || s == JobError
}

// JobSummary is attached to a job when it completes successfully.
type JobSummary struct {
	Total           int            `json:"total"`
	Analyzed        int            `json:"analyzed"`
	ErrorRows       int            `json:"error_rows"`
	SentimentCounts map[string]int `json:"sentiment_distribution"`
	EmotionCounts   map[string]int `json:"emotion_distribution"`
	DominantEmotion string         `json:"dominant_emotion"`
	TextColumn      string         `json:"text_column,omitempty"`
}

// Job is one asynchronous bulk-ingestion unit of work. Progress is a 0-100
// integer, monotonically non-decreasing, reaching 100 only on done.
type Job struct {
	ID          uuid.UUID   `json:"id"`
	Status      JobStatus   `json:"status"`
	Progress    int         `json:"progress"`
	Result      *JobSummary `json:"result,omitempty"`
	Error       string      `json:"error,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

// Batch is one submitted set of raw texts. TextColumn records which column
// the texts were extracted from when the upload was tabular.
type Batch struct {
	Texts      []string
	TextColumn string
}
