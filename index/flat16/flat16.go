// Package flat16 provides a half-precision exact search index.
//
// It is the accelerated counterpart of index/flat: vectors are stored as
// IEEE 754 binary16 codes, halving memory traffic during the scan, while all
// distance accumulation stays in float32. The search is still exhaustive and
// exact over the stored codes; the only deviation from the full-precision
// backend is the rounding applied when vectors are encoded, a small and
// documented precision trade-off.
//
// Backing memory is reserved from a resource.Controller so exhaustion is
// reported to the caller instead of silently degrading.
package flat16

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/recallgo/index"
	"github.com/hupe1980/recallgo/internal/queue"
	"github.com/hupe1980/recallgo/internal/simd"
	"github.com/hupe1980/recallgo/resource"
)

// Compile-time check to ensure Flat16 satisfies the index interface.
var _ index.Index = (*Flat16)(nil)

// Flat16 represents a half-precision exact search index.
type Flat16 struct {
	writeMu   sync.Mutex
	dimension int
	codes     []uint16 // flattened binary16 vectors, count*dimension
	count     int
	closed    bool

	rc       *resource.Controller
	reserved int64
}

// New creates a new half-precision index for vectors of the given dimension.
// rc may be nil, in which case no memory accounting is performed.
func New(dimension int, rc *resource.Controller) (*Flat16, error) {
	if err := index.ValidateDimension(dimension); err != nil {
		return nil, err
	}

	return &Flat16{dimension: dimension, rc: rc}, nil
}

func (*Flat16) name() string { return "Flat16" }

// Insert encodes and adds a vector to the index.
// Returns resource.ErrExhausted (wrapped) if the memory budget is exceeded.
func (f *Flat16) Insert(ctx context.Context, v []float32) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(v) == 0 {
		return 0, index.ErrEmptyVector
	}
	if len(v) != f.dimension {
		return 0, &index.ErrDimensionMismatch{Expected: f.dimension, Actual: len(v)}
	}

	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	if f.closed {
		return 0, index.ErrClosed
	}

	bytes := int64(f.dimension) * 2
	if err := f.rc.TryAcquireMemory(bytes); err != nil {
		return 0, fmt.Errorf("flat16: reserve %d bytes: %w", bytes, err)
	}
	f.reserved += bytes

	id := uint32(f.count)
	f.codes = simd.EncodeF16(f.codes, v)
	f.count++

	return id, nil
}

// KNNSearch returns the k nearest stored vectors to q by squared L2 distance.
// The query stays in full precision; stored codes are expanded on the fly.
func (f *Flat16) KNNSearch(ctx context.Context, q []float32, k int) ([]index.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, index.ErrInvalidK
	}
	if len(q) != f.dimension {
		return nil, &index.ErrDimensionMismatch{Expected: f.dimension, Actual: len(q)}
	}

	f.writeMu.Lock()
	if f.closed {
		f.writeMu.Unlock()
		return nil, index.ErrClosed
	}
	codes := f.codes
	count := f.count
	f.writeMu.Unlock()

	if count == 0 {
		return nil, nil
	}

	actualK := k
	if actualK > count {
		actualK = count
	}

	top := queue.NewMax(actualK)
	dim := f.dimension
	for i := 0; i < count; i++ {
		d := simd.SquaredL2F16(q, codes[i*dim:(i+1)*dim])
		top.PushBounded(queue.Item{ID: uint32(i), Distance: d}, actualK)
	}

	items := top.Drain()
	results := make([]index.SearchResult, len(items))
	for i, item := range items {
		results[i] = index.SearchResult{ID: item.ID, Distance: item.Distance}
	}
	return results, nil
}

// Stats returns metadata about the index.
func (f *Flat16) Stats() index.Stats {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	return index.Stats{
		Backend:   f.name(),
		Count:     f.count,
		Dimension: f.dimension,
		SizeBytes: int64(len(f.codes)) * 2,
	}
}

// Close releases the backing storage and returns the reserved memory to the
// controller. It is idempotent.
func (f *Flat16) Close() error {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	f.codes = nil
	f.count = 0
	f.rc.ReleaseMemory(f.reserved)
	f.reserved = 0
	return nil
}
