package stream

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/domain"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/stats"
)

type stubAnalyzer struct {
	err error
}

func (a stubAnalyzer) Analyze(text string) (domain.AnalysisResult, error) {
	if a.err != nil {
		return domain.AnalysisResult{}, a.err
	}
	return domain.AnalysisResult{
		CleanText:  text,
		Sentiment:  domain.SentimentPositive,
		Confidence: 0.9,
		Emotion:    "Happy",
	}, nil
}

type fakeStore struct {
	mu      sync.Mutex
	saveErr error
	nextID  int64
	saved   []domain.Record
}

func (s *fakeStore) Save(_ context.Context, record domain.Record) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	s.nextID++
	record.ID = s.nextID
	s.saved = append(s.saved, record)
	return record.ID, nil
}

func (s *fakeStore) BulkSave(_ context.Context, records []domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, records...)
	return nil
}

func (s *fakeStore) DeleteAll(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = nil
	return nil
}

func (s *fakeStore) savedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *fakePublisher) Publish(event domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *fakePublisher) countByType(eventType string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	for _, e := range p.events {
		if e.EventType() == eventType {
			count++
		}
	}
	return count
}

func testController(t *testing.T, analyzer domain.Analyzer, store domain.RecordStore) (*Controller, *fakePublisher, *stats.SessionStats) {
	t.Helper()
	publisher := &fakePublisher{}
	sessionStats := stats.New()
	controller := NewController(analyzer, store, publisher, sessionStats, clockwork.NewRealClock())
	t.Cleanup(func() { controller.Stop() })
	return controller, publisher, sessionStats
}

func TestController_StartIdempotent(t *testing.T) {
	controller, publisher, _ := testController(t, stubAnalyzer{}, &fakeStore{})

	assert.Equal(t, StatusStarted, controller.Start(time.Second))
	assert.Equal(t, StatusAlreadyRunning, controller.Start(time.Second))
	assert.Equal(t, StatusAlreadyRunning, controller.Start(50*time.Millisecond))

	// Only the first start announces itself.
	assert.Equal(t, 1, publisher.countByType(domain.EventTypeStreamStarted))
	assert.True(t, controller.Running())
}

func TestController_StopIdempotent(t *testing.T) {
	controller, publisher, _ := testController(t, stubAnalyzer{}, &fakeStore{})

	assert.Equal(t, StatusNotRunning, controller.Stop())

	require.Equal(t, StatusStarted, controller.Start(time.Second))
	assert.Equal(t, StatusStopped, controller.Stop())
	assert.Equal(t, StatusNotRunning, controller.Stop())

	assert.Equal(t, 1, publisher.countByType(domain.EventTypeStreamStopped))
	assert.False(t, controller.Running())
}

// slowStore blocks in Save long enough for a Stop to race the tick, and
// records whether the save context was cancelled under it.
type slowStore struct {
	fakeStore
	began    chan struct{}
	delay    time.Duration
	canceled atomic.Bool
}

func (s *slowStore) Save(ctx context.Context, record domain.Record) (int64, error) {
	select {
	case s.began <- struct{}{}:
	default:
	}

	select {
	case <-ctx.Done():
		s.canceled.Store(true)
		return 0, ctx.Err()
	case <-time.After(s.delay):
	}
	return s.fakeStore.Save(ctx, record)
}

func TestController_StopLetsInFlightSaveFinish(t *testing.T) {
	store := &slowStore{began: make(chan struct{}, 1), delay: 150 * time.Millisecond}
	controller, publisher, _ := testController(t, stubAnalyzer{}, store)

	require.Equal(t, StatusStarted, controller.Start(10*time.Millisecond))

	select {
	case <-store.began:
	case <-time.After(2 * time.Second):
		t.Fatal("save never started")
	}

	require.Equal(t, StatusStopped, controller.Stop())

	assert.False(t, store.canceled.Load(), "stop cancelled an in-flight save")
	assert.Equal(t, 1, store.savedCount())
	assert.Equal(t, 1, publisher.countByType(domain.EventTypeNewRecord))
}

func TestController_EmitsRecords(t *testing.T) {
	store := &fakeStore{}
	controller, publisher, sessionStats := testController(t, stubAnalyzer{}, store)

	require.Equal(t, StatusStarted, controller.Start(10*time.Millisecond))

	require.Eventually(t, func() bool {
		return publisher.countByType(domain.EventTypeNewRecord) >= 3
	}, 2*time.Second, 5*time.Millisecond)

	require.Equal(t, StatusStopped, controller.Stop())

	// Every published record was persisted and counted.
	published := publisher.countByType(domain.EventTypeNewRecord)
	assert.Equal(t, published, store.savedCount())
	snapshot := sessionStats.Snapshot()
	assert.Equal(t, uint64(published), snapshot.Total)
	assert.Equal(t, snapshot.Total, snapshot.Sentiment[domain.SentimentPositive])
}

func TestController_ImmediateStopEmitsNothing(t *testing.T) {
	store := &fakeStore{}
	controller, publisher, sessionStats := testController(t, stubAnalyzer{}, store)

	require.Equal(t, StatusStarted, controller.Start(time.Second))
	require.Equal(t, StatusStopped, controller.Stop())

	// The first tick only fires after a full interval.
	assert.Equal(t, 0, publisher.countByType(domain.EventTypeNewRecord))
	assert.Equal(t, 0, store.savedCount())
	assert.Equal(t, uint64(0), sessionStats.Snapshot().Total)
}

func TestController_AnalysisFailureKeepsLoopAlive(t *testing.T) {
	store := &fakeStore{}
	controller, publisher, _ := testController(t, stubAnalyzer{err: errors.New("analysis broke")}, store)

	require.Equal(t, StatusStarted, controller.Start(5*time.Millisecond))
	time.Sleep(100 * time.Millisecond)

	assert.True(t, controller.Running(), "loop must survive per-item failures")
	assert.Equal(t, 0, publisher.countByType(domain.EventTypeNewRecord))
	assert.Equal(t, 0, store.savedCount())
	assert.Equal(t, StatusStopped, controller.Stop())
}

func TestController_PersistenceFailureSkipsBroadcast(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("connection refused")}
	controller, publisher, sessionStats := testController(t, stubAnalyzer{}, store)

	require.Equal(t, StatusStarted, controller.Start(5*time.Millisecond))
	time.Sleep(100 * time.Millisecond)

	assert.True(t, controller.Running(), "loop must survive store failures")
	assert.Equal(t, 0, publisher.countByType(domain.EventTypeNewRecord))
	assert.Equal(t, uint64(0), sessionStats.Snapshot().Total)
	assert.Equal(t, StatusStopped, controller.Stop())
}

func TestController_Reset(t *testing.T) {
	store := &fakeStore{}
	controller, publisher, sessionStats := testController(t, stubAnalyzer{}, store)

	require.Equal(t, StatusStarted, controller.Start(10*time.Millisecond))
	require.Eventually(t, func() bool {
		return publisher.countByType(domain.EventTypeNewRecord) >= 1
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, StatusStopped, controller.Reset())
	assert.False(t, controller.Running())
	assert.Equal(t, uint64(0), sessionStats.Snapshot().Total)

	// Reset when already stopped still zeroes stats and reports not_running.
	assert.Equal(t, StatusNotRunning, controller.Reset())
}

func TestController_StateReportsInterval(t *testing.T) {
	controller, _, _ := testController(t, stubAnalyzer{}, &fakeStore{})

	state := controller.State()
	assert.False(t, state.Running)

	require.Equal(t, StatusStarted, controller.Start(2*time.Second))
	state = controller.State()
	assert.True(t, state.Running)
	assert.Equal(t, 2.0, state.IntervalSeconds)
	assert.NotNil(t, state.Stats.StartedAt)
}

func TestController_RestartAfterStop(t *testing.T) {
	store := &fakeStore{}
	controller, publisher, _ := testController(t, stubAnalyzer{}, store)

	require.Equal(t, StatusStarted, controller.Start(10*time.Millisecond))
	require.Eventually(t, func() bool {
		return publisher.countByType(domain.EventTypeNewRecord) >= 1
	}, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, StatusStopped, controller.Stop())

	before := publisher.countByType(domain.EventTypeNewRecord)
	require.Equal(t, StatusStarted, controller.Start(10*time.Millisecond))
	require.Eventually(t, func() bool {
		return publisher.countByType(domain.EventTypeNewRecord) > before
	}, 2*time.Second, 5*time.Millisecond)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 120))
	long := make([]rune, 0, 200)
	for i := 0; i < 200; i++ {
		long = append(long, 'x')
	}
	assert.Len(t, truncate(string(long), 120), 120)
}
