package domain

// Event type discriminators as sent on the wire.
const (
	EventTypeConnected     = "connected"
	EventTypeNewRecord     = "new_record"
	EventTypeStreamStarted = "stream_started"
	EventTypeStreamStopped = "stream_stopped"
)

// Event is one broadcast payload. Each event kind is a closed struct with a
// fixed type discriminator, serialized as JSON at the hub boundary.
type Event interface {
	EventType() string
}

// ConnectedEvent is the state snapshot sent to a subscriber immediately after
// it joins, so late joiners can reconstruct current state without replay.
type ConnectedEvent struct {
	Type    string        `json:"type"`
	Running bool          `json:"running"`
	Stats   StatsSnapshot `json:"stats"`
	Clients int           `json:"clients"`
}

func NewConnectedEvent(running bool, stats StatsSnapshot, clients int) ConnectedEvent {
	return ConnectedEvent{Type: EventTypeConnected, Running: running, Stats: stats, Clients: clients}
}

func (ConnectedEvent) EventType() string { return EventTypeConnected }

// NewRecordEvent carries one freshly analyzed record plus the session stats
// at publish time. Text fields are truncated for the wire.
type NewRecordEvent struct {
	Type       string        `json:"type"`
	ID         int64         `json:"id"`
	Text       string        `json:"text"`
	CleanText  string        `json:"clean_text"`
	Sentiment  string        `json:"sentiment"`
	Confidence float64       `json:"confidence"`
	Emotion    string        `json:"emotion"`
	Timestamp  string        `json:"timestamp"`
	Stats      StatsSnapshot `json:"stats"`
}

func (NewRecordEvent) EventType() string { return EventTypeNewRecord }

// StreamStartedEvent announces that the generation loop has started.
type StreamStartedEvent struct {
	Type            string  `json:"type"`
	IntervalSeconds float64 `json:"interval"`
}

func NewStreamStartedEvent(intervalSeconds float64) StreamStartedEvent {
	return StreamStartedEvent{Type: EventTypeStreamStarted, IntervalSeconds: intervalSeconds}
}

func (StreamStartedEvent) EventType() string { return EventTypeStreamStarted }

// StreamStoppedEvent announces that the generation loop has stopped.
type StreamStoppedEvent struct {
	Type string `json:"type"`
}

func NewStreamStoppedEvent() StreamStoppedEvent {
	return StreamStoppedEvent{Type: EventTypeStreamStopped}
}

func (StreamStoppedEvent) EventType() string { return EventTypeStreamStopped }

// Publisher fans an event out to every live subscriber. Best effort: a
// failing subscriber never blocks delivery to the others.
type Publisher interface {
	Publish(event Event)
}
