package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage reads seed documents from S3-compatible object stores.
// The service never writes objects; the interface is read-only.

// ErrObjectNotFound is returned when the requested key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Storage is a read-only, S3-compatible object storage client.
type Storage interface {
	// Get retrieves an object's content as a streaming reader alongside its info.
	// The caller must close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Stat returns the object's info without reading its content.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
}
