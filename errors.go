package recallgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/recallgo/index"
	"github.com/hupe1980/recallgo/resource"
)

var (
	// ErrInvalidK is returned when a cutoff is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrNoKValues is returned when the cutoff list is empty.
	ErrNoKValues = errors.New("k values must not be empty")

	// ErrNoQueries is returned when the query matrix is empty.
	// Recall over zero queries is undefined.
	ErrNoQueries = errors.New("queries must not be empty")

	// ErrResourceExhausted is returned when the search index's backing
	// resources cannot be acquired. Callers must opt out of the
	// accelerated backend explicitly; there is no silent fallback.
	ErrResourceExhausted = errors.New("index resources exhausted")
)

// ErrDimensionMismatch indicates a reference/query dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInsufficientReferences indicates that the largest requested cutoff
// exceeds the number of reference vectors. This is a hard error: clamping
// would silently truncate results and mislead recall figures.
type ErrInsufficientReferences struct {
	References int
	MaxK       int
}

func (e *ErrInsufficientReferences) Error() string {
	return fmt.Sprintf("insufficient references: have %d, largest k is %d", e.References, e.MaxK)
}

// ErrGroundTruthMismatch indicates that the ground truth does not have one
// entry per query.
type ErrGroundTruthMismatch struct {
	Queries int
	Entries int
}

func (e *ErrGroundTruthMismatch) Error() string {
	return fmt.Sprintf("ground truth length mismatch: %d queries, %d entries", e.Queries, e.Entries)
}

// translateError normalizes backend errors into the package's taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dm *index.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	if errors.Is(err, index.ErrInvalidK) {
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	}
	if errors.Is(err, resource.ErrExhausted) {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}

	return err
}
