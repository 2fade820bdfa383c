// Package blobstore provides read-only access to immutable dataset blobs.
//
// Implementations cover the common places benchmark datasets live:
// in-memory (tests), the local filesystem (memory mapped), and
// S3-compatible object storage (see the s3 and minio subpackages).
package blobstore
