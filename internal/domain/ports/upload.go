package ports

import "context"

// Uploader populates a backend store from a source file. Unlike the query
// ports, upload failures are reported as errors: bulk loading is an
// operator-facing action, not part of the degrade-to-empty query path.
type Uploader interface {
	// Push reads the file at path and loads its contents into the store.
	Push(ctx context.Context, path string) error
}
