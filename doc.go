// Package recallgo computes Recall@K for query embeddings against reference
// embeddings using exact nearest-neighbor search and a ground-truth
// relevance mapping.
//
// Recall@K is the fraction of queries for which at least one relevant
// reference appears among the top-K retrieved references. Evaluation uses
// exact squared-L2 search by design: measuring recall through an
// approximate index would bias the numbers the metric exists to expose.
//
// Basic usage:
//
//	result, err := recallgo.Evaluate(ctx, references, queries,
//		[]int{1, 5, 10}, recallgo.SingleRelevant(gt),
//		recallgo.WithDatasetLabel("pitts30k-val"),
//	)
//	if err != nil {
//		return err
//	}
//	fmt.Println(result.At(1))
//
// The half-precision backend (WithAcceleratedIndex) halves index memory at
// the cost of float16 rounding during encoding; search remains exhaustive
// and results on well-separated data are identical.
package recallgo
