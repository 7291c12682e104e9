package ingest

import "errors"

var (
	// ErrProgramRepositoryRequired indicates a nil program repository was provided.
	ErrProgramRepositoryRequired = errors.New("program repository is required")

	// ErrDocRepositoryRequired indicates a nil doc repository was provided.
	ErrDocRepositoryRequired = errors.New("doc repository is required")

	// ErrEmbedderRequired indicates a nil embedder was provided.
	ErrEmbedderRequired = errors.New("embedder is required")
)
