// Package fsx abstracts the object storage used for uploaded documents.
package fsx

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by ReadFile when the path does not exist
var ErrNotFound = errors.New("fsx: file not found")

// FileSystem is a flat, path-addressed blob store
type FileSystem interface {
	// Join builds a storage path from its segments
	Join(elem ...string) string

	WriteFile(ctx context.Context, path string, data []byte) error

	// WriteFileStream stores everything read from r
	WriteFileStream(ctx context.Context, path string, r io.Reader) error

	ReadFile(ctx context.Context, path string) ([]byte, error)

	DeleteFile(ctx context.Context, path string) error
}
