// Package flat provides a full-precision exact search index.
//
// Vectors are stored contiguously as float32 and scanned in full for every
// query. That makes search O(N*D) but guarantees exact results, which is the
// point: recall evaluation must reflect true nearest neighbors, not an
// approximation.
package flat

import (
	"context"
	"sync"

	"github.com/hupe1980/recallgo/distance"
	"github.com/hupe1980/recallgo/index"
	"github.com/hupe1980/recallgo/internal/queue"
)

// Compile-time check to ensure Flat satisfies the index interface.
var _ index.Index = (*Flat)(nil)

// Flat represents a full-precision exact search index.
// Reads are lock-free against a stable backing slice; writes are serialized.
type Flat struct {
	writeMu   sync.Mutex
	dimension int
	data      []float32 // flattened vectors, count*dimension
	count     int
	closed    bool

	// scratch buffers per search, pooled to avoid per-query allocations
	distPool sync.Pool
}

// New creates a new flat index for vectors of the given dimension.
func New(dimension int) (*Flat, error) {
	if err := index.ValidateDimension(dimension); err != nil {
		return nil, err
	}

	return &Flat{dimension: dimension}, nil
}

func (*Flat) name() string { return "Flat" }

// Insert adds a vector to the index.
func (f *Flat) Insert(ctx context.Context, v []float32) (uint32, error) {
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

	id := uint32(f.count)
	f.data = append(f.data, v...)
	f.count++

	return id, nil
}

// KNNSearch returns the k nearest vectors to q by squared L2 distance.
func (f *Flat) KNNSearch(ctx context.Context, q []float32, k int) ([]index.SearchResult, error) {
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
	data := f.data
	count := f.count
	f.writeMu.Unlock()

	if count == 0 {
		return nil, nil
	}

	dists := f.distBuf(count)
	defer f.distPool.Put(dists)

	distance.SquaredL2Batch(q, data, f.dimension, dists[:count])

	actualK := k
	if actualK > count {
		actualK = count
	}

	top := queue.NewMax(actualK)
	for i := 0; i < count; i++ {
		top.PushBounded(queue.Item{ID: uint32(i), Distance: dists[i]}, actualK)
	}

	items := top.Drain()
	results := make([]index.SearchResult, len(items))
	for i, item := range items {
		results[i] = index.SearchResult{ID: item.ID, Distance: item.Distance}
	}
	return results, nil
}

// Stats returns metadata about the index.
func (f *Flat) Stats() index.Stats {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	return index.Stats{
		Backend:   f.name(),
		Count:     f.count,
		Dimension: f.dimension,
		SizeBytes: int64(len(f.data)) * 4,
	}
}

// Close releases the backing storage. It is idempotent.
func (f *Flat) Close() error {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	f.closed = true
	f.data = nil
	f.count = 0
	return nil
}

func (f *Flat) distBuf(n int) []float32 {
	if buf, ok := f.distPool.Get().([]float32); ok && cap(buf) >= n {
		return buf[:n]
	}
	return make([]float32, n)
}
