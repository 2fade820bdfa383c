// Package dataset loads benchmark retrieval datasets (reference vectors,
// query vectors, ground truth) from a blob store.
//
// Files use the fvecs/ivecs formats common to nearest neighbor benchmarks.
// Compressed files are decompressed transparently based on the file
// extension (.zst, .zstd, .lz4).
package dataset

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/recallgo/blobstore"
	"github.com/hupe1980/recallgo/resource"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithResourceController rate limits dataset reads through the given
// controller. A nil controller disables limiting.
func WithResourceController(rc *resource.Controller) LoaderOption {
	return func(l *Loader) {
		l.rc = rc
	}
}

// Loader reads vector files from a blob store.
type Loader struct {
	store blobstore.BlobStore
	rc    *resource.Controller
}

// NewLoader creates a new Loader backed by the given store.
func NewLoader(store blobstore.BlobStore, optFns ...LoaderOption) *Loader {
	l := &Loader{store: store}

	for _, fn := range optFns {
		fn(l)
	}

	return l
}

// Vectors loads an fvecs file (optionally compressed) as float32 vectors.
func (l *Loader) Vectors(ctx context.Context, name string) ([][]float32, error) {
	var vectors [][]float32

	err := l.withReader(ctx, name, func(r io.Reader) error {
		var err error
		vectors, err = DecodeFVecs(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	return vectors, nil
}

// GroundTruth loads an ivecs file (optionally compressed) as per-query
// neighbor id lists.
func (l *Loader) GroundTruth(ctx context.Context, name string) ([][]uint32, error) {
	var records [][]uint32

	err := l.withReader(ctx, name, func(r io.Reader) error {
		var err error
		records, err = DecodeIVecs(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (l *Loader) withReader(ctx context.Context, name string, fn func(io.Reader) error) error {
	blob, err := l.store.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("open %q: %w", name, err)
	}
	defer func() { _ = blob.Close() }()

	rc, err := blob.ReadRange(ctx, 0, blob.Size())
	if err != nil {
		return fmt.Errorf("read %q: %w", name, err)
	}
	defer func() { _ = rc.Close() }()

	var r io.Reader = rc
	if l.rc != nil {
		r = resource.NewRateLimitedReader(ctx, r, l.rc)
	}

	r, closeFn, err := decompressor(name, r)
	if err != nil {
		return fmt.Errorf("decompress %q: %w", name, err)
	}
	defer closeFn()

	if err := fn(r); err != nil {
		return fmt.Errorf("decode %q: %w", name, err)
	}

	return nil
}

// decompressor wraps r based on the outermost file extension.
func decompressor(name string, r io.Reader) (io.Reader, func(), error) {
	switch {
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case strings.HasSuffix(name, ".lz4"):
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}
