// Package report builds read-side aggregates for the dashboard and the
// insights summary. Concurrent identical requests collapse into a single
// round of store queries.
package report
