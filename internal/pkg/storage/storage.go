package storage

import (
	"context"
	"io"
)

// FileStore persists generated report artifacts (payslip PDFs, sheet
// exports) and serves them back by relative path.
type FileStore interface {
	// Save writes the content and returns the normalized relative path
	Save(ctx context.Context, content io.Reader, path string) (string, error)

	// Open retrieves a stored file
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Remove deletes a stored file; missing files are not an error
	Remove(ctx context.Context, path string) error

	// URL returns the public URL for a stored path
	URL(path string) string

	// Exists checks whether a path is present
	Exists(ctx context.Context, path string) (bool, error)
}
