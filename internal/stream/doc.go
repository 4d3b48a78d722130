// Package stream runs the synthetic live-feed generation loop. A single
// controller owns the loop lifecycle: it draws texts from a rotating pool,
// pushes each through the analysis pipeline, persists the result, updates the
// session aggregate, and publishes a record event to live subscribers.
//
// The loop is cancelled cooperatively via context; start and stop are
// idempotent and report what actually happened.
package stream
