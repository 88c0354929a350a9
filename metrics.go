package geoquad

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus (see examples/observability).
//
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordCreate is called after each single-coordinate encode.
	RecordCreate(err error)

	// RecordBatchCreate is called after each CreateBatch call.
	// count is the number of coordinates submitted.
	RecordBatchCreate(count int, duration time.Duration, err error)

	// RecordNeighbor is called after each directional move.
	RecordNeighbor(dir Direction, err error)

	// RecordNearby is called after each ring expansion.
	// cells is the number of cells returned (0 on error).
	RecordNearby(cells int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCreate(error)                           {}
func (NoopMetricsCollector) RecordBatchCreate(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordNeighbor(Direction, error)              {}
func (NoopMetricsCollector) RecordNearby(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CreateCount       atomic.Int64
	CreateErrors      atomic.Int64
	BatchCreateCount  atomic.Int64
	BatchCreateItems  atomic.Int64
	BatchCreateErrors atomic.Int64
	NeighborCount     atomic.Int64
	NeighborErrors    atomic.Int64
	NearbyCount       atomic.Int64
	NearbyErrors      atomic.Int64
	NearbyCells       atomic.Int64
	NearbyTotalNanos  atomic.Int64
}

// RecordCreate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCreate(err error) {
	b.CreateCount.Add(1)
	if err != nil {
		b.CreateErrors.Add(1)
	}
}

// RecordBatchCreate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchCreate(count int, duration time.Duration, err error) {
	b.BatchCreateCount.Add(1)
	b.BatchCreateItems.Add(int64(count))
	if err != nil {
		b.BatchCreateErrors.Add(1)
	}
}

// RecordNeighbor implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNeighbor(dir Direction, err error) {
	b.NeighborCount.Add(1)
	if err != nil {
		b.NeighborErrors.Add(1)
	}
}

// RecordNearby implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearby(cells int, duration time.Duration, err error) {
	b.NearbyCount.Add(1)
	b.NearbyCells.Add(int64(cells))
	b.NearbyTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.NearbyErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CreateCount:       b.CreateCount.Load(),
		CreateErrors:      b.CreateErrors.Load(),
		BatchCreateCount:  b.BatchCreateCount.Load(),
		BatchCreateItems:  b.BatchCreateItems.Load(),
		BatchCreateErrors: b.BatchCreateErrors.Load(),
		NeighborCount:     b.NeighborCount.Load(),
		NeighborErrors:    b.NeighborErrors.Load(),
		NearbyCount:       b.NearbyCount.Load(),
		NearbyErrors:      b.NearbyErrors.Load(),
		NearbyAvgCells:    b.avg(b.NearbyCells.Load()),
		NearbyAvgNanos:    b.avg(b.NearbyTotalNanos.Load()),
	}
}

func (b *BasicMetricsCollector) avg(total int64) int64 {
	count := b.NearbyCount.Load()
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CreateCount       int64
	CreateErrors      int64
	BatchCreateCount  int64
	BatchCreateItems  int64
	BatchCreateErrors int64
	NeighborCount     int64
	NeighborErrors    int64
	NearbyCount       int64
	NearbyErrors      int64
	NearbyAvgCells    int64
	NearbyAvgNanos    int64
}
