package recallgo

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/recallgo/index"
	"github.com/hupe1980/recallgo/index/flat"
	"github.com/hupe1980/recallgo/index/flat16"
)

// Result holds the outcome of one evaluation.
type Result struct {
	// DatasetLabel is the cosmetic name used in the report title.
	DatasetLabel string

	// KValues are the cutoffs in the caller-supplied order.
	KValues []int

	// Recalls maps each cutoff to a recall fraction in [0, 1].
	Recalls map[int]float64

	// Predictions holds, per query, the ids of the top-max(KValues)
	// references ordered nearest-first.
	Predictions [][]uint32
}

// At returns the recall at cutoff k, or 0 if k was not requested.
func (r *Result) At(k int) float64 {
	return r.Recalls[k]
}

// Evaluate computes Recall@K for the query embeddings against the reference
// embeddings.
//
// An exact squared-L2 index is built over references (ids are 0-based
// positions), the top-max(kValues) neighbors are retrieved per query, and a
// query counts as a hit at cutoff k if any of its top-k predictions is in
// its relevant set. A hit at k is a hit at every larger cutoff; permuting
// kValues changes only the report order, never the values.
//
// The index lives only for the duration of the call and is released on every
// return path, including failures. All errors are returned immediately; no
// partial results.
func Evaluate(ctx context.Context, references, queries [][]float32, kValues []int, truth GroundTruth, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)

	evalStart := time.Now()
	result, err := evaluate(ctx, references, queries, kValues, truth, &o)

	o.metricsCollector.RecordEvaluate(len(queries), time.Since(evalStart), err)
	o.logger.LogEvaluate(ctx, o.datasetLabel, len(queries), kValues, time.Since(evalStart), err)

	if err != nil {
		return nil, err
	}

	if o.report {
		if err := result.WriteReport(o.reportWriter); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
	}

	return result, nil
}

func evaluate(ctx context.Context, references, queries [][]float32, kValues []int, truth GroundTruth, o *options) (*Result, error) {
	if len(kValues) == 0 {
		return nil, ErrNoKValues
	}
	for _, k := range kValues {
		if k <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
		}
	}
	if len(queries) == 0 {
		return nil, ErrNoQueries
	}
	if len(truth) != len(queries) {
		return nil, &ErrGroundTruthMismatch{Queries: len(queries), Entries: len(truth)}
	}

	maxK := slices.Max(kValues)
	if maxK > len(references) {
		return nil, &ErrInsufficientReferences{References: len(references), MaxK: maxK}
	}

	dim := len(references[0])

	idx, err := newIndex(dim, o)
	if err != nil {
		return nil, translateError(err)
	}
	defer func() { _ = idx.Close() }()

	// Build: reference i gets id i.
	buildStart := time.Now()
	for _, ref := range references {
		if _, err := idx.Insert(ctx, ref); err != nil {
			err = translateError(err)
			o.metricsCollector.RecordIndexBuild(len(references), time.Since(buildStart), err)
			return nil, err
		}
	}
	stats := idx.Stats()
	o.metricsCollector.RecordIndexBuild(stats.Count, time.Since(buildStart), nil)
	o.logger.LogIndexBuild(ctx, stats.Backend, stats.Count, stats.Dimension, time.Since(buildStart), nil)

	predictions, err := searchAll(ctx, idx, queries, maxK, o)
	if err != nil {
		return nil, err
	}

	recalls := recallAtK(predictions, truth, kValues)

	return &Result{
		DatasetLabel: o.datasetLabel,
		KValues:      slices.Clone(kValues),
		Recalls:      recalls,
		Predictions:  predictions,
	}, nil
}

func newIndex(dim int, o *options) (index.Index, error) {
	if o.accelerated {
		return flat16.New(dim, o.controller)
	}
	return flat.New(dim)
}

// searchAll retrieves the top-k neighbors for every query. Queries are
// independent, so they fan out across a bounded worker group; each result
// lands in its own slot, keeping the output order deterministic.
func searchAll(ctx context.Context, idx index.Index, queries [][]float32, k int, o *options) ([][]uint32, error) {
	searchStart := time.Now()
	predictions := make([][]uint32, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.searchConcurrency)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			results, err := idx.KNNSearch(gctx, q, k)
			if err != nil {
				return err
			}

			ids := make([]uint32, len(results))
			for j, r := range results {
				ids[j] = r.ID
			}
			predictions[i] = ids
			return nil
		})
	}

	err := translateError(g.Wait())
	o.metricsCollector.RecordSearch(len(queries), k, time.Since(searchStart), err)
	o.logger.LogSearch(ctx, len(queries), k, time.Since(searchStart), err)
	if err != nil {
		return nil, err
	}

	return predictions, nil
}

// recallAtK aggregates per-query hits into a recall fraction per cutoff.
//
// Cutoffs are processed in ascending order so a hit at the smallest matching
// cutoff propagates to every larger one; the caller-supplied order only
// affects reporting.
func recallAtK(predictions [][]uint32, truth GroundTruth, kValues []int) map[int]float64 {
	sorted := slices.Clone(kValues)
	slices.Sort(sorted)
	maxK := sorted[len(sorted)-1]

	hits := make([]int, len(sorted))
	for qi, pred := range predictions {
		rank := firstRelevantRank(pred, truth[qi], maxK)
		if rank < 0 {
			continue
		}
		for ci, k := range sorted {
			if rank < k {
				hits[ci]++
			}
		}
	}

	m := float64(len(predictions))
	recalls := make(map[int]float64, len(sorted))
	for ci, k := range sorted {
		recalls[k] = float64(hits[ci]) / m
	}
	return recalls
}

// firstRelevantRank returns the 0-based rank of the first relevant
// prediction within the top maxK, or -1 if none is relevant.
func firstRelevantRank(pred []uint32, relevant RelevantSet, maxK int) int {
	limit := maxK
	if limit > len(pred) {
		limit = len(pred)
	}
	for j := 0; j < limit; j++ {
		if relevant.Contains(pred[j]) {
			return j
		}
	}
	return -1
}
