// Package index provides interfaces and types for exact nearest-neighbor
// search backends.
package index

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrEmptyVector is returned when an empty vector is inserted or searched.
	ErrEmptyVector = errors.New("vector must not be empty")

	// ErrClosed is returned when operating on a closed index.
	ErrClosed = errors.New("index is closed")
)

// ErrDimensionMismatch is a named error type for dimension mismatch.
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

// Error returns the error message for an invalid dimension.
func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// SearchResult represents a search result.
type SearchResult struct {
	// ID is the identifier of the search result.
	ID uint32

	// Distance is the distance between the query vector and the result vector.
	Distance float32
}

// Stats contains metadata about an index.
type Stats struct {
	Backend   string // backend name ("Flat", "Flat16")
	Count     int    // total number of indexed vectors
	Dimension int    // dimensionality of vectors
	SizeBytes int64  // size of the stored vectors in bytes
}

// Index is an exact nearest-neighbor search backend over squared L2 distance.
//
// Both implementations return true nearest neighbors; they differ only in
// storage precision and resource accounting. Results are ordered
// nearest-first with ties broken by ascending id, so identical inputs always
// produce identical output.
type Index interface {
	// Insert adds a vector to the index and returns its id.
	// Ids are assigned densely in insertion order starting at 0.
	Insert(ctx context.Context, v []float32) (uint32, error)

	// KNNSearch returns the k nearest vectors to q, nearest-first.
	// If fewer than k vectors are indexed, all of them are returned.
	KNNSearch(ctx context.Context, q []float32, k int) ([]SearchResult, error)

	// Stats returns metadata about the index.
	Stats() Stats

	// Close releases the index's backing resources. The index must not be
	// used afterwards. Close is idempotent.
	Close() error
}

// ValidateDimension checks a configured dimension at construction time.
func ValidateDimension(dim int) error {
	if dim <= 0 {
		return &ErrInvalidDimension{Dimension: dim}
	}
	return nil
}
