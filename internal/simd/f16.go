package simd

import "math"

// Half-precision (IEEE 754 binary16) conversion and distance kernels.
//
// The float16 path trades storage precision for memory footprint: vectors
// are stored as 16-bit codes and expanded to float32 on the fly, with all
// accumulation done in float32. Conversion rounds to nearest-even.

// F32ToF16 converts a float32 value to its binary16 bit pattern.
// Values outside the half range overflow to +/-Inf; tiny values flush
// through the subnormal range down to signed zero.
func F32ToF16(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp32 := int32(bits>>23) & 0xFF
	mant := bits & 0x7FFFFF

	if bits&0x7FFFFFFF == 0 {
		return sign
	}

	if exp32 == 0xFF {
		if mant != 0 {
			return sign | 0x7E00 // NaN
		}
		return sign | 0x7C00 // Inf
	}

	exp := exp32 - 127 + 15
	if exp >= 0x1F {
		return sign | 0x7C00 // overflow to Inf
	}

	if exp <= 0 {
		if exp < -10 {
			return sign // underflow to zero
		}
		// Subnormal: shift the implicit leading bit into the mantissa.
		mant |= 0x800000
		shift := uint32(14 - exp)
		half := mant >> shift
		rem := mant & ((uint32(1) << shift) - 1)
		halfway := uint32(1) << (shift - 1)
		if rem > halfway || (rem == halfway && half&1 == 1) {
			half++
		}
		return sign | uint16(half)
	}

	half := uint16(exp)<<10 | uint16(mant>>13)
	rem := mant & 0x1FFF
	// Rounding may carry into the exponent; the bit layout makes that correct.
	if rem > 0x1000 || (rem == 0x1000 && half&1 == 1) {
		half++
	}
	return sign | half
}

// F16ToF32 converts a binary16 bit pattern to float32. The conversion is
// exact: every half value is representable in float32.
func F16ToF32(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h & 0x3FF)

	switch {
	case exp == 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: renormalize into the float32 range.
		e := uint32(113)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x3FF
		return math.Float32frombits(sign | e<<23 | mant<<13)
	case exp == 0x1F:
		return math.Float32frombits(sign | 0xFF<<23 | mant<<13) // Inf/NaN
	default:
		return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
	}
}

// EncodeF16 converts src to binary16 codes, appending to dst.
// Returns the extended slice.
func EncodeF16(dst []uint16, src []float32) []uint16 {
	for _, v := range src {
		dst = append(dst, F32ToF16(v))
	}
	return dst
}

// DecodeF16 expands binary16 codes into dst.
//
// SAFETY: assumes len(dst) >= len(codes).
func DecodeF16(dst []float32, codes []uint16) {
	for i, c := range codes {
		dst[i] = F16ToF32(c)
	}
}

// SquaredL2F16 calculates the squared L2 distance between a float32 query
// and a binary16-encoded vector. Codes are expanded per element; the sum is
// accumulated in float32.
//
// SAFETY: assumes len(q) == len(codes).
func SquaredL2F16(q []float32, codes []uint16) float32 {
	var distance float32
	for i := range q {
		d := q[i] - F16ToF32(codes[i])
		distance += d * d
	}

	return distance
}
