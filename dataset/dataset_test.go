package dataset

import (
	"bytes"
	"context"
	"testing"

	"github.com/hupe1980/recallgo/blobstore"
	"github.com/hupe1980/recallgo/resource"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFVecs(t *testing.T) {
	vectors := [][]float32{
		{1, 2, 3},
		{4.5, -6.25, 0},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeFVecs(&buf, vectors))

	decoded, err := DecodeFVecs(&buf)
	require.NoError(t, err)
	assert.Equal(t, vectors, decoded)

	t.Run("empty input", func(t *testing.T) {
		decoded, err := DecodeFVecs(bytes.NewReader(nil))
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})

	t.Run("truncated record", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeFVecs(&buf, vectors))

		data := buf.Bytes()
		_, err := DecodeFVecs(bytes.NewReader(data[:len(data)-2]))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("garbage dimension", func(t *testing.T) {
		_, err := DecodeFVecs(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff}))
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestDecodeIVecs(t *testing.T) {
	records := [][]uint32{
		{7, 3, 9},
		{0},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeIVecs(&buf, records))

	decoded, err := DecodeIVecs(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestLoader(t *testing.T) {
	ctx := context.Background()

	vectors := [][]float32{
		{0.5, 1.5, -2},
		{3, 4, 5},
	}
	truth := [][]uint32{{1}, {0}}

	var fvecs, ivecs bytes.Buffer
	require.NoError(t, EncodeFVecs(&fvecs, vectors))
	require.NoError(t, EncodeIVecs(&ivecs, truth))

	store := blobstore.NewMemoryStore()
	store.Put("base.fvecs", fvecs.Bytes())
	store.Put("gt.ivecs", ivecs.Bytes())

	t.Run("vectors", func(t *testing.T) {
		loader := NewLoader(store)
		got, err := loader.Vectors(ctx, "base.fvecs")
		require.NoError(t, err)
		assert.Equal(t, vectors, got)
	})

	t.Run("ground truth", func(t *testing.T) {
		loader := NewLoader(store)
		got, err := loader.GroundTruth(ctx, "gt.ivecs")
		require.NoError(t, err)
		assert.Equal(t, truth, got)
	})

	t.Run("missing blob", func(t *testing.T) {
		loader := NewLoader(store)
		_, err := loader.Vectors(ctx, "nope.fvecs")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("zstd", func(t *testing.T) {
		var compressed bytes.Buffer
		zw, err := zstd.NewWriter(&compressed)
		require.NoError(t, err)
		_, err = zw.Write(fvecs.Bytes())
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		store.Put("base.fvecs.zst", compressed.Bytes())

		loader := NewLoader(store)
		got, err := loader.Vectors(ctx, "base.fvecs.zst")
		require.NoError(t, err)
		assert.Equal(t, vectors, got)
	})

	t.Run("lz4", func(t *testing.T) {
		var compressed bytes.Buffer
		lw := lz4.NewWriter(&compressed)
		_, err := lw.Write(ivecs.Bytes())
		require.NoError(t, err)
		require.NoError(t, lw.Close())

		store.Put("gt.ivecs.lz4", compressed.Bytes())

		loader := NewLoader(store)
		got, err := loader.GroundTruth(ctx, "gt.ivecs.lz4")
		require.NoError(t, err)
		assert.Equal(t, truth, got)
	})

	t.Run("rate limited", func(t *testing.T) {
		rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})
		loader := NewLoader(store, WithResourceController(rc))

		got, err := loader.Vectors(ctx, "base.fvecs")
		require.NoError(t, err)
		assert.Equal(t, vectors, got)
	})
}
