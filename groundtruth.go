package recallgo

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// RelevantSet is the set of reference ids considered relevant to one query.
// It wraps a roaring bitmap, which keeps membership tests cheap for both the
// single-id case (place recognition) and dense relevance lists.
type RelevantSet struct {
	rb *roaring.Bitmap
}

// NewRelevantSet creates a relevant set from the given reference ids.
func NewRelevantSet(ids ...uint32) RelevantSet {
	rb := roaring.New()
	rb.AddMany(ids)
	return RelevantSet{rb: rb}
}

// Contains checks if a reference id is in the set.
func (s RelevantSet) Contains(id uint32) bool {
	return s.rb != nil && s.rb.Contains(id)
}

// IsEmpty returns true if the set has no ids.
func (s RelevantSet) IsEmpty() bool {
	return s.rb == nil || s.rb.IsEmpty()
}

// Cardinality returns the number of ids in the set.
func (s RelevantSet) Cardinality() uint64 {
	if s.rb == nil {
		return 0
	}
	return s.rb.GetCardinality()
}

// ToArray returns the ids in ascending order.
func (s RelevantSet) ToArray() []uint32 {
	if s.rb == nil {
		return nil
	}
	return s.rb.ToArray()
}

// GroundTruth holds one relevant set per query; entry i corresponds to
// query i.
type GroundTruth []RelevantSet

// NewGroundTruth creates a ground truth from per-query id lists.
func NewGroundTruth(relevant [][]uint32) GroundTruth {
	gt := make(GroundTruth, len(relevant))
	for i, ids := range relevant {
		gt[i] = NewRelevantSet(ids...)
	}
	return gt
}

// SingleRelevant creates a ground truth where each query has exactly one
// relevant reference.
func SingleRelevant(ids []uint32) GroundTruth {
	gt := make(GroundTruth, len(ids))
	for i, id := range ids {
		gt[i] = NewRelevantSet(id)
	}
	return gt
}
