// Package jobs runs asynchronous bulk-ingestion work. A submitted batch gets
// a job ID immediately; a bounded worker pool analyzes the texts, replaces
// the stored dataset in chunks, and records progress so clients can poll.
// Terminal jobs are kept for a retention window, then evicted.
package jobs
