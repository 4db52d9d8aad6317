package topogo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational
// metrics. Implement this interface to integrate with monitoring
// systems like Prometheus.
type MetricsCollector interface {
	// RecordSample is called after each per-sample unit of work
	// (landmark table build, if any, plus the engine call).
	// duration is the total time taken, err is nil if successful.
	RecordSample(duration time.Duration, err error)

	// RecordTransform is called after each whole-batch transform.
	// samples is the number of input samples, duration the total
	// time including alignment, err is nil if successful.
	RecordTransform(samples int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSample(time.Duration, error)         {}
func (NoopMetricsCollector) RecordTransform(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external
// dependencies.
type BasicMetricsCollector struct {
	SampleCount         atomic.Int64
	SampleErrors        atomic.Int64
	SampleTotalNanos    atomic.Int64
	TransformCount      atomic.Int64
	TransformErrors     atomic.Int64
	TransformSamples    atomic.Int64
	TransformTotalNanos atomic.Int64
}

func (c *BasicMetricsCollector) RecordSample(d time.Duration, err error) {
	c.SampleCount.Add(1)
	c.SampleTotalNanos.Add(int64(d))
	if err != nil {
		c.SampleErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordTransform(samples int, d time.Duration, err error) {
	c.TransformCount.Add(1)
	c.TransformSamples.Add(int64(samples))
	c.TransformTotalNanos.Add(int64(d))
	if err != nil {
		c.TransformErrors.Add(1)
	}
}
