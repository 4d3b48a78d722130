package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/metrics"
)

const initialProgress = 5

// Options sizes the worker pool and the in-memory job table.
type Options struct {
	Workers   int
	QueueSize int
	ChunkSize int
	Retention time.Duration
}

type queuedJob struct {
	id    uuid.UUID
	batch domain.Batch
}

// Manager owns the job table and the worker pool. Submission is non-blocking;
// a full queue is reported to the caller instead of applying backpressure on
// the upload request.
type Manager struct {
	analyzer domain.Analyzer
	store    domain.RecordStore
	clock    clockwork.Clock
	opts     Options

	mu   sync.Mutex
	jobs map[uuid.UUID]*domain.Job

	queue    chan queuedJob
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewManager starts the worker pool and the retention sweeper.
func NewManager(analyzer domain.Analyzer, store domain.RecordStore, clock clockwork.Clock, opts Options) *Manager {
	m := &Manager{
		analyzer: analyzer,
		store:    store,
		clock:    clock,
		opts:     opts,
		jobs:     make(map[uuid.UUID]*domain.Job),
		queue:    make(chan queuedJob, opts.QueueSize),
		stopCh:   make(chan struct{}),
	}

	for i := 0; i < opts.Workers; i++ {
		m.wg.Add(1)
		go m.worker()
	}
	if opts.Retention > 0 {
		m.wg.Add(1)
		go m.sweeper()
	}
	return m
}

// Submit accepts a batch and returns the job ID for polling. Rejects empty
// batches and reports ErrQueueFull when every worker is busy and the queue
// has no room.
func (m *Manager) Submit(batch domain.Batch) (uuid.UUID, error) {
	if len(batch.Texts) == 0 {
		return uuid.Nil, domain.ErrEmptyBatch
	}

	id := uuid.New()
	job := &domain.Job{
		ID:        id,
		Status:    domain.JobQueued,
		CreatedAt: m.clock.Now().UTC(),
	}

	m.mu.Lock()
	m.jobs[id] = job
	m.mu.Unlock()

	select {
	case m.queue <- queuedJob{id: id, batch: batch}:
		metrics.JobsSubmittedTotal.Inc()
		metrics.JobQueueDepth.Set(float64(len(m.queue)))
		slog.Info("Ingestion job accepted", "job_id", id.String(), "texts", len(batch.Texts))
		return id, nil
	default:
		m.mu.Lock()
		delete(m.jobs, id)
		m.mu.Unlock()
		slog.Warn("Ingestion queue full, rejecting job", "queue_size", m.opts.QueueSize)
		return uuid.Nil, domain.ErrQueueFull
	}
}

// GetStatus returns a snapshot of the job, or ErrJobNotFound for unknown or
// already evicted IDs.
func (m *Manager) GetStatus(id uuid.UUID) (domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[id]
	if !exists {
		return domain.Job{}, domain.ErrJobNotFound
	}
	return snapshotJob(job), nil
}

// Stop drains shutdown: workers finish their current job, the sweeper exits.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
	m.wg.Wait()
	slog.Info("Job manager stopped")
}

// snapshotJob deep-copies so callers never observe later mutations.
func snapshotJob(job *domain.Job) domain.Job {
	snapshot := *job
	if job.Result != nil {
		result := *job.Result
		result.SentimentCounts = copyCounts(job.Result.SentimentCounts)
		result.EmotionCounts = copyCounts(job.Result.EmotionCounts)
		snapshot.Result = &result
	}
	if job.CompletedAt != nil {
		completed := *job.CompletedAt
		snapshot.CompletedAt = &completed
	}
	return snapshot
}

func copyCounts(counts map[string]int) map[string]int {
	out := make(map[string]int, len(counts))
	for k, v := range counts {
		out[k] = v
	}
	return out
}

func (m *Manager) worker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.stopCh:
			return
		case qj := <-m.queue:
			metrics.JobQueueDepth.Set(float64(len(m.queue)))
			m.process(qj.id, qj.batch)
		}
	}
}

func (m *Manager) sweeper() {
	defer m.wg.Done()

	interval := m.opts.Retention / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := m.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.Chan():
			m.sweep()
		}
	}
}

// sweep evicts terminal jobs past the retention window; polling them again
// returns not found, which clients must treat as expired.
func (m *Manager) sweep() {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, job := range m.jobs {
		if !job.Status.Terminal() || job.CompletedAt == nil {
			continue
		}
		if now.Sub(*job.CompletedAt) >= m.opts.Retention {
			delete(m.jobs, id)
			slog.Debug("Evicted expired job", "job_id", id.String())
		}
	}
}

func (m *Manager) process(id uuid.UUID, batch domain.Batch) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Job processing panic recovered", "job_id", id.String(), "panic", r)
			m.fail(id, fmt.Sprintf("internal failure: %v", r))
		}
	}()

	m.update(id, func(job *domain.Job) {
		job.Status = domain.JobProcessing
	})
	slog.Info("Job processing started", "job_id", id.String(), "texts", len(batch.Texts))

	ctx := context.Background()

	// The new dataset replaces whatever was stored before.
	if err := m.store.DeleteAll(ctx); err != nil {
		slog.Error("Job failed to clear record store", "job_id", id.String(), "error", err)
		m.fail(id, domain.ErrStoreUnavailable.Error())
		return
	}
	m.setProgress(id, initialProgress)

	total := len(batch.Texts)
	analyzed := 0
	errorRows := 0
	sentimentCounts := map[string]int{
		domain.SentimentPositive: 0,
		domain.SentimentNegative: 0,
		domain.SentimentNeutral:  0,
	}
	emotionCounts := make(map[string]int)

	chunk := make([]domain.Record, 0, m.opts.ChunkSize)
	done := 0

	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		persisted, failed, err := m.flushChunk(ctx, chunk)
		if err != nil {
			return err
		}
		errorRows += failed
		for _, record := range persisted {
			analyzed++
			sentimentCounts[record.Sentiment]++
			emotionCounts[record.Emotion]++
		}
		chunk = chunk[:0]
		return nil
	}

	for _, raw := range batch.Texts {
		done++
		metrics.JobItemsProcessedTotal.Inc()

		trimmed := strings.TrimSpace(raw)
		lowered := strings.ToLower(trimmed)
		if lowered == "" || lowered == "nan" || lowered == "none" {
			errorRows++
			continue
		}

		result, failed := m.analyzeItem(trimmed)
		if failed {
			errorRows++
		}

		chunk = append(chunk, domain.Record{
			Text:       trimmed,
			CleanText:  result.CleanText,
			Sentiment:  result.Sentiment,
			Emotion:    result.Emotion,
			Confidence: result.Confidence,
			CreatedAt:  m.clock.Now().UTC(),
		})

		if len(chunk) >= m.opts.ChunkSize {
			if err := flush(); err != nil {
				slog.Error("Job chunk persistence failed", "job_id", id.String(), "error", err)
				m.fail(id, domain.ErrStoreUnavailable.Error())
				return
			}
			m.setProgress(id, scaleProgress(done, total))
		}
	}

	if err := flush(); err != nil {
		slog.Error("Job final chunk persistence failed", "job_id", id.String(), "error", err)
		m.fail(id, domain.ErrStoreUnavailable.Error())
		return
	}

	summary := &domain.JobSummary{
		Total:           total,
		Analyzed:        analyzed,
		ErrorRows:       errorRows,
		SentimentCounts: sentimentCounts,
		EmotionCounts:   emotionCounts,
		DominantEmotion: dominantEmotion(emotionCounts),
		TextColumn:      batch.TextColumn,
	}

	completed := m.clock.Now().UTC()
	m.update(id, func(job *domain.Job) {
		job.Status = domain.JobDone
		job.Progress = 100
		job.Result = summary
		job.CompletedAt = &completed
	})

	metrics.JobsCompletedTotal.WithLabelValues(string(domain.JobDone)).Inc()
	metrics.JobErrorRowsTotal.Add(float64(errorRows))
	slog.Info("Job done",
		"job_id", id.String(),
		"total", total,
		"analyzed", analyzed,
		"error_rows", errorRows,
	)
}

// analyzeItem recovers panics and errors from the pipeline; the item is
// persisted with the neutral default and counted as an error row.
func (m *Manager) analyzeItem(text string) (result domain.AnalysisResult, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Item analysis panic recovered", "panic", r)
			metrics.AnalysisFailuresTotal.Inc()
			result, failed = domain.NeutralResult(), true
		}
	}()

	analyzed, err := m.analyzer.Analyze(text)
	if err != nil {
		slog.Warn("Item analysis failed, using neutral default", "error", err)
		metrics.AnalysisFailuresTotal.Inc()
		return domain.NeutralResult(), true
	}
	return analyzed, false
}

// flushChunk bulk-saves, falling back to per-record saves when the bulk write
// fails. Only a chunk with zero persisted records aborts the job.
func (m *Manager) flushChunk(ctx context.Context, chunk []domain.Record) (persisted []domain.Record, failed int, err error) {
	bulkErr := m.store.BulkSave(ctx, chunk)
	if bulkErr == nil {
		return chunk, 0, nil
	}
	slog.Warn("Bulk save failed, retrying records individually", "chunk_size", len(chunk), "error", bulkErr)

	for _, record := range chunk {
		if _, err := m.store.Save(ctx, record); err != nil {
			failed++
			continue
		}
		persisted = append(persisted, record)
	}
	if len(persisted) == 0 {
		return nil, failed, domain.ErrStoreUnavailable
	}
	return persisted, failed, nil
}

// scaleProgress maps processed items onto 5-99; 100 is reserved for done.
func scaleProgress(done, total int) int {
	pct := initialProgress + done*90/total
	if pct > 99 {
		pct = 99
	}
	return pct
}

func dominantEmotion(counts map[string]int) string {
	dominant := "N/A"
	best := 0
	for emotion, count := range counts {
		if count > best {
			dominant = emotion
			best = count
		}
	}
	return dominant
}

func (m *Manager) setProgress(id uuid.UUID, pct int) {
	m.update(id, func(job *domain.Job) {
		if pct > job.Progress {
			job.Progress = pct
		}
	})
}

func (m *Manager) fail(id uuid.UUID, message string) {
	completed := m.clock.Now().UTC()
	m.update(id, func(job *domain.Job) {
		if job.Status.Terminal() {
			return
		}
		job.Status = domain.JobError
		job.Error = message
		job.CompletedAt = &completed
	})
	metrics.JobsCompletedTotal.WithLabelValues(string(domain.JobError)).Inc()
}

func (m *Manager) update(id uuid.UUID, fn func(job *domain.Job)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job, exists := m.jobs[id]; exists {
		fn(job)
	}
}
