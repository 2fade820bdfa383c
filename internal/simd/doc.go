// Package simd provides the low-level numeric kernels used for distance
// computation.
//
// The kernels are written so the Go compiler can auto-vectorize the hot
// loops (straight-line accumulation over contiguous float32 slices). They
// deliberately skip per-element bounds checks on the assumption that callers
// validated slice lengths; see the SAFETY notes on the exported functions.
package simd
