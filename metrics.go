package recallgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordIndexBuild is called after the reference index is built.
	// count is the number of reference vectors, duration the build time,
	// err is nil if successful.
	RecordIndexBuild(count int, duration time.Duration, err error)

	// RecordSearch is called after the batch search phase.
	// queries is the number of query vectors, k the neighbor count per query.
	RecordSearch(queries, k int, duration time.Duration, err error)

	// RecordEvaluate is called after each evaluation.
	RecordEvaluate(queries int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIndexBuild(int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEvaluate(int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IndexBuildCount      atomic.Int64
	IndexBuildErrors     atomic.Int64
	IndexBuildTotalNanos atomic.Int64

	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64

	EvaluateCount      atomic.Int64
	EvaluateErrors     atomic.Int64
	EvaluateTotalNanos atomic.Int64
}

func (m *BasicMetricsCollector) RecordIndexBuild(count int, duration time.Duration, err error) {
	m.IndexBuildCount.Add(1)
	m.IndexBuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		m.IndexBuildErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordSearch(queries, k int, duration time.Duration, err error) {
	m.SearchCount.Add(1)
	m.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		m.SearchErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordEvaluate(queries int, duration time.Duration, err error) {
	m.EvaluateCount.Add(1)
	m.EvaluateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		m.EvaluateErrors.Add(1)
	}
}

// MetricsStats is a point-in-time snapshot of collected metrics.
type MetricsStats struct {
	IndexBuildCount    int64
	IndexBuildErrors   int64
	IndexBuildAvgNanos int64

	SearchCount    int64
	SearchErrors   int64
	SearchAvgNanos int64

	EvaluateCount    int64
	EvaluateErrors   int64
	EvaluateAvgNanos int64
}

// GetStats returns a snapshot of the collected metrics.
func (m *BasicMetricsCollector) GetStats() MetricsStats {
	stats := MetricsStats{
		IndexBuildCount:  m.IndexBuildCount.Load(),
		IndexBuildErrors: m.IndexBuildErrors.Load(),
		SearchCount:      m.SearchCount.Load(),
		SearchErrors:     m.SearchErrors.Load(),
		EvaluateCount:    m.EvaluateCount.Load(),
		EvaluateErrors:   m.EvaluateErrors.Load(),
	}

	if stats.IndexBuildCount > 0 {
		stats.IndexBuildAvgNanos = m.IndexBuildTotalNanos.Load() / stats.IndexBuildCount
	}
	if stats.SearchCount > 0 {
		stats.SearchAvgNanos = m.SearchTotalNanos.Load() / stats.SearchCount
	}
	if stats.EvaluateCount > 0 {
		stats.EvaluateAvgNanos = m.EvaluateTotalNanos.Load() / stats.EvaluateCount
	}

	return stats
}
