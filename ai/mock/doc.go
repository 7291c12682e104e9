// Package mock provides a deterministic ai.Embedder test double.
// The default behavior derives a stable pseudo-random unit vector from the
// input text, so identical texts always land at the same point in vector
// space and tests stay reproducible without a live embedding service.
package mock
