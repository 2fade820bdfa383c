package dataset

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrMalformed is returned when a vector file violates the fvecs/ivecs
// framing (non-positive dimension, truncated record, inconsistent width).
var ErrMalformed = errors.New("dataset: malformed vector file")

// maxDimension guards against reading garbage as a dimension header.
const maxDimension = 1 << 20

// DecodeFVecs reads vectors in fvecs format: each record is a little-endian
// int32 dimension followed by that many float32 components.
func DecodeFVecs(r io.Reader) ([][]float32, error) {
	br := bufio.NewReader(r)

	var vectors [][]float32
	for {
		dim, err := readDimension(br, len(vectors))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return vectors, nil
			}
			return nil, err
		}

		buf := make([]byte, dim*4)
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("%w: record %d truncated: %v", ErrMalformed, len(vectors), err)
		}

		vec := make([]float32, dim)
		for i := range vec {
			vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		}
		vectors = append(vectors, vec)
	}
}

// DecodeIVecs reads vectors in ivecs format: each record is a little-endian
// int32 dimension followed by that many int32 values. Used for ground truth
// neighbor id lists.
func DecodeIVecs(r io.Reader) ([][]uint32, error) {
	br := bufio.NewReader(r)

	var records [][]uint32
	for {
		dim, err := readDimension(br, len(records))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, err
		}

		buf := make([]byte, dim*4)
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("%w: record %d truncated: %v", ErrMalformed, len(records), err)
		}

		ids := make([]uint32, dim)
		for i := range ids {
			ids[i] = binary.LittleEndian.Uint32(buf[i*4:])
		}
		records = append(records, ids)
	}
}

func readDimension(br *bufio.Reader, record int) (int, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("%w: record %d header truncated: %v", ErrMalformed, record, err)
	}

	dim := int(int32(binary.LittleEndian.Uint32(hdr[:])))
	if dim <= 0 || dim > maxDimension {
		return 0, fmt.Errorf("%w: record %d has dimension %d", ErrMalformed, record, dim)
	}

	return dim, nil
}

// EncodeFVecs writes vectors in fvecs format. Used to produce test fixtures
// and synthetic datasets.
func EncodeFVecs(w io.Writer, vectors [][]float32) error {
	bw := bufio.NewWriter(w)

	var hdr [4]byte
	for _, vec := range vectors {
		binary.LittleEndian.PutUint32(hdr[:], uint32(len(vec)))
		if _, err := bw.Write(hdr[:]); err != nil {
			return err
		}
		for _, v := range vec {
			binary.LittleEndian.PutUint32(hdr[:], math.Float32bits(v))
			if _, err := bw.Write(hdr[:]); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// EncodeIVecs writes id lists in ivecs format.
func EncodeIVecs(w io.Writer, records [][]uint32) error {
	bw := bufio.NewWriter(w)

	var hdr [4]byte
	for _, ids := range records {
		binary.LittleEndian.PutUint32(hdr[:], uint32(len(ids)))
		if _, err := bw.Write(hdr[:]); err != nil {
			return err
		}
		for _, id := range ids {
			binary.LittleEndian.PutUint32(hdr[:], id)
			if _, err := bw.Write(hdr[:]); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
