package domain

import "errors"

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrEmptyBatch       = errors.New("batch contains no texts")
	ErrQueueFull        = errors.New("ingestion queue is full")
	ErrStoreUnavailable = errors.New("record store unavailable")
)
