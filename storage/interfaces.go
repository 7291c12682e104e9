package storage

import (
	"context"

	"github.com/majormentor/unigo/core"
)

// ProgramRepository provides lookups over the program catalog.
// The catalog is written during ingestion and read-only afterwards.
type ProgramRepository interface {
	// AddPrograms stores one or more program records. Record ids are derived
	// from ProgramID, so re-adding the same program overwrites it.
	AddPrograms(ctx context.Context, records ...*core.ProgramRecord) error

	// GetProgram retrieves a single program by id.
	// Returns ErrNotFound if the program doesn't exist.
	GetProgram(ctx context.Context, id core.ID) (*core.ProgramRecord, error)

	// GetPrograms retrieves multiple programs by id.
	// Returns only the programs that exist (no error for missing ids).
	GetPrograms(ctx context.Context, ids ...core.ID) ([]*core.ProgramRecord, error)

	// GetProgramByName retrieves the program whose display name matches the
	// query exactly (whitespace- and case-insensitive key comparison).
	// Returns ErrNotFound if no program matches.
	GetProgramByName(ctx context.Context, name string) (*core.ProgramRecord, error)

	// FindByAlias retrieves the first program carrying the query as one of
	// its alias strings. Returns ErrNotFound if no program matches.
	FindByAlias(ctx context.Context, alias string) (*core.ProgramRecord, error)

	// FindByNameContains retrieves up to limit programs whose display name
	// contains the token as a substring.
	FindByNameContains(ctx context.Context, token string, limit int) ([]*core.ProgramRecord, error)

	// FindByOfferingContains retrieves programs whose serialized
	// offering-institution payload contains the whitespace-stripped token.
	FindByOfferingContains(ctx context.Context, token string) ([]*core.ProgramRecord, error)

	// ListNames returns all program display names, sorted, up to limit.
	// A limit <= 0 returns every name.
	ListNames(ctx context.Context, limit int) ([]string, error)

	// Count returns the total number of programs in the catalog.
	Count(ctx context.Context) (int, error)

	// Close closes the repository.
	Close() error
}

// InstitutionRepository provides lookups over the institution admission
// directory.
type InstitutionRepository interface {
	// AddInstitutions stores one or more institution records, keyed by the
	// normalized institution name.
	AddInstitutions(ctx context.Context, records ...*core.InstitutionRecord) error

	// Lookup retrieves an institution by name. The comparison ignores
	// internal whitespace, letter case and bracketed campus suffixes.
	// Returns ErrNotFound if no institution matches.
	Lookup(ctx context.Context, name string) (*core.InstitutionRecord, error)

	// All returns every institution in the directory.
	All(ctx context.Context) ([]*core.InstitutionRecord, error)

	// Close closes the repository.
	Close() error
}

// DocRepository stores embedded per-program documents and answers
// nearest-neighbor queries over them. It is the vector index collaborator.
type DocRepository interface {
	// PutDocs stores embedded documents, keyed by (program id, doc type).
	PutDocs(ctx context.Context, docs ...*SearchDoc) error

	// FindNearest returns up to topK hits ordered by similarity score
	// descending. Vectors are assumed unit length, so the score is the dot
	// product.
	FindNearest(ctx context.Context, vector []float32, topK int) ([]core.SearchHit, error)

	// Close closes the repository.
	Close() error
}

// SearchDoc is one embedded document of a program.
type SearchDoc struct {
	Program core.ID
	Doc     core.DocType
	Vector  []float32
}
