package resource

import (
	"context"
	"io"
)

// RateLimitedReader wraps an io.Reader with the controller's IO budget.
// Dataset loaders use it to keep large embedding reads from starving
// co-located workloads.
type RateLimitedReader struct {
	r   io.Reader
	rc  *Controller
	ctx context.Context
}

// NewRateLimitedReader creates a new RateLimitedReader.
// A nil controller passes reads through unthrottled.
func NewRateLimitedReader(ctx context.Context, r io.Reader, rc *Controller) *RateLimitedReader {
	return &RateLimitedReader{
		r:   r,
		rc:  rc,
		ctx: ctx,
	}
}

func (r *RateLimitedReader) Read(p []byte) (n int, err error) {
	n, err = r.r.Read(p)
	if n > 0 {
		// Charge for what was actually read; charging len(p) upfront
		// overbills short reads.
		if ioErr := r.rc.AcquireIO(r.ctx, n); ioErr != nil {
			return n, ioErr
		}
	}
	return n, err
}
