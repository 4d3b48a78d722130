package stream

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sony/gobreaker"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/metrics"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/stats"
)

// Status strings reported by lifecycle operations. Repeated starts and stops
// are not errors; callers learn what actually happened.
const (
	StatusStarted        = "started"
	StatusAlreadyRunning = "already_running"
	StatusStopped        = "stopped"
	StatusNotRunning     = "not_running"
)

const (
	saveTimeout        = 2 * time.Second
	breakerMaxFailures = 5
	breakerOpenFor     = 30 * time.Second
	wireTextLimit      = 120
)

// State describes the controller for status reporting.
type State struct {
	Running         bool                 `json:"running"`
	IntervalSeconds float64              `json:"interval_seconds"`
	Stats           domain.StatsSnapshot `json:"stats"`
}

// Controller owns the generation loop. At most one loop goroutine exists at
// a time; lifecycle calls are safe from any goroutine.
type Controller struct {
	analyzer  domain.Analyzer
	store     domain.RecordStore
	publisher domain.Publisher
	stats     *stats.SessionStats
	clock     clockwork.Clock
	pool      *textPool
	breaker   *gobreaker.CircuitBreaker

	lifecycle chan lifecycleRequest
}

type lifecycleOp int

const (
	opStart lifecycleOp = iota
	opStop
	opState
)

type lifecycleRequest struct {
	op       lifecycleOp
	interval time.Duration
	reply    chan lifecycleReply
}

type lifecycleReply struct {
	status string
	state  State
}

// NewController wires the loop's collaborators. The persistence breaker opens
// after consecutive save failures so a store outage does not hammer the pool
// on every tick; the loop itself keeps running.
func NewController(analyzer domain.Analyzer, store domain.RecordStore, publisher domain.Publisher, sessionStats *stats.SessionStats, clock clockwork.Clock) *Controller {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "record_store",
		Timeout: breakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerMaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Persistence circuit breaker state changed", "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			metrics.CircuitBreakerStateChanges.WithLabelValues(name, to.String()).Inc()
		},
	})

	c := &Controller{
		analyzer:  analyzer,
		store:     store,
		publisher: publisher,
		stats:     sessionStats,
		clock:     clock,
		pool:      newDefaultPool(),
		breaker:   breaker,
		lifecycle: make(chan lifecycleRequest),
	}
	go c.supervise()
	return c
}

// Start launches the loop with the given tick interval. Returns
// StatusAlreadyRunning if a loop is active; its interval is left unchanged.
func (c *Controller) Start(interval time.Duration) string {
	return c.request(lifecycleRequest{op: opStart, interval: interval}).status
}

// Stop cancels the loop and waits for the current tick to finish. Returns
// StatusNotRunning if no loop was active.
func (c *Controller) Stop() string {
	return c.request(lifecycleRequest{op: opStop}).status
}

// Pause is an alias of Stop; the loop has no suspended state to resume from.
func (c *Controller) Pause() string {
	return c.Stop()
}

// Reset stops the loop and zeroes the session aggregate.
func (c *Controller) Reset() string {
	status := c.Stop()
	c.stats.Reset()
	return status
}

// State reports whether the loop is running, its interval, and the current
// session aggregate.
func (c *Controller) State() State {
	return c.request(lifecycleRequest{op: opState}).state
}

// Running reports whether the loop is active.
func (c *Controller) Running() bool {
	return c.State().Running
}

func (c *Controller) request(req lifecycleRequest) lifecycleReply {
	req.reply = make(chan lifecycleReply, 1)
	c.lifecycle <- req
	return <-req.reply
}

// supervise serializes lifecycle transitions so concurrent start/stop calls
// cannot race on the loop goroutine.
func (c *Controller) supervise() {
	var (
		running  bool
		interval time.Duration
		cancel   context.CancelFunc
		done     chan struct{}
	)

	for req := range c.lifecycle {
		switch req.op {
		case opStart:
			if running {
				req.reply <- lifecycleReply{status: StatusAlreadyRunning}
				continue
			}
			running = true
			interval = req.interval

			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			done = make(chan struct{})
			c.stats.MarkStarted(c.clock.Now().UTC())
			go c.loop(ctx, interval, done)

			metrics.StreamRunning.Set(1)
			slog.Info("Stream started", "interval", interval)
			c.publisher.Publish(domain.NewStreamStartedEvent(interval.Seconds()))
			req.reply <- lifecycleReply{status: StatusStarted}

		case opStop:
			if !running {
				req.reply <- lifecycleReply{status: StatusNotRunning}
				continue
			}
			running = false
			cancel()
			<-done
			cancel, done = nil, nil

			metrics.StreamRunning.Set(0)
			slog.Info("Stream stopped")
			c.publisher.Publish(domain.NewStreamStoppedEvent())
			req.reply <- lifecycleReply{status: StatusStopped}

		case opState:
			req.reply <- lifecycleReply{state: State{
				Running:         running,
				IntervalSeconds: interval.Seconds(),
				Stats:           c.stats.Snapshot(),
			}}
		}
	}
}

// loop emits one record per tick until the context is cancelled. The first
// record appears one full interval after start, so a start followed by an
// immediate stop produces nothing.
func (c *Controller) loop(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := c.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		// Cancellation wins over a pending tick once the current one finished.
		select {
		case <-ctx.Done():
			slog.Debug("Stream loop exited")
			return
		default:
		}

		select {
		case <-ctx.Done():
			slog.Debug("Stream loop exited")
			return
		case <-ticker.Chan():
			c.tick(ctx)
		}
	}
}

func (c *Controller) tick(ctx context.Context) {
	text := c.pool.Next()

	result, err := c.analyzer.Analyze(text)
	if err != nil {
		slog.Error("Stream analysis failed, skipping tick", "error", err)
		metrics.AnalysisFailuresTotal.Inc()
		metrics.StreamSkippedTicksTotal.WithLabelValues("analysis").Inc()
		return
	}

	record := domain.Record{
		Text:       text,
		CleanText:  result.CleanText,
		Sentiment:  result.Sentiment,
		Emotion:    result.Emotion,
		Confidence: result.Confidence,
		CreatedAt:  c.clock.Now().UTC(),
	}

	// Stop() cancels the loop context between iterations only; an in-flight
	// save is allowed to finish so the current tick's record is not lost.
	saved, err := c.breaker.Execute(func() (any, error) {
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
		defer cancel()
		return c.store.Save(saveCtx, record)
	})
	if err != nil {
		slog.Error("Stream persistence failed, skipping tick", "error", err)
		metrics.StreamSkippedTicksTotal.WithLabelValues("persistence").Inc()
		return
	}
	id := saved.(int64)

	c.stats.Update(result.Sentiment, result.Emotion)
	snapshot := c.stats.Snapshot()

	c.publisher.Publish(domain.NewRecordEvent{
		Type:       domain.EventTypeNewRecord,
		ID:         id,
		Text:       truncate(text, wireTextLimit),
		CleanText:  truncate(result.CleanText, wireTextLimit),
		Sentiment:  result.Sentiment,
		Confidence: result.Confidence,
		Emotion:    result.Emotion,
		Timestamp:  c.clock.Now().UTC().Format(time.RFC3339),
		Stats:      snapshot,
	})

	metrics.StreamTicksTotal.Inc()
	slog.Info("Stream record published",
		"total", snapshot.Total,
		"sentiment", result.Sentiment,
		"confidence", result.Confidence,
		"emotion", result.Emotion,
	)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
