// Package broadcast implements the WebSocket fan-out hub using the actor pattern.
//
// A single goroutine owns the subscriber set and consumes typed commands (no mutexes).
// Publish serializes each event once and fans it out; per-connection write goroutines
// isolate slow or broken subscribers so one failing client never blocks the others.
package broadcast
