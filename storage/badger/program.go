package badger

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/majormentor/unigo/core"
	"github.com/majormentor/unigo/storage"
)

// ProgramRepository implements storage.ProgramRepository on BadgerDB.
//
// Only the exact-name lookup is index-backed. Alias, substring and offering
// lookups scan the catalog: it holds on the order of a thousand records, the
// same scale at which the vector search already iterates every document.
type ProgramRepository struct {
	backend *Backend
	logger  *slog.Logger
}

// NewProgramRepository creates a program repository on the given backend.
func NewProgramRepository(backend *Backend) (storage.ProgramRepository, error) {
	return &ProgramRepository{
		backend: backend,
		logger:  slog.Default().With("component", "program-repository"),
	}, nil
}

// AddPrograms stores program records, keyed by the content hash of ProgramID.
func (r *ProgramRepository) AddPrograms(ctx context.Context, records ...*core.ProgramRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if err := core.ValidateProgram(record); err != nil {
				return err
			}
			record.Id = core.IDFromContent(record.ProgramID)

			value, err := storage.MarshalProgram(record)
			if err != nil {
				return err
			}
			if err := tx.Set(makeProgramKey(record.Id), value); err != nil {
				return err
			}

			nameKey := makeProgramNameKey(core.NormalizeKey(record.Name))
			if err := tx.Set(nameKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetProgram retrieves a single program by id.
func (r *ProgramRepository) GetProgram(ctx context.Context, id core.ID) (*core.ProgramRecord, error) {
	var record *core.ProgramRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProgramKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = storage.UnmarshalProgram(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetPrograms retrieves multiple programs by id, skipping missing ones.
func (r *ProgramRepository) GetPrograms(ctx context.Context, ids ...core.ID) ([]*core.ProgramRecord, error) {
	records := make([]*core.ProgramRecord, 0, len(ids))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			item, err := tx.Get(makeProgramKey(id))
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					continue
				}
				return err
			}
			err = item.Value(func(val []byte) error {
				record, err := storage.UnmarshalProgram(val)
				if err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetProgramByName retrieves the program whose name matches exactly,
// after key folding (whitespace and case insensitive).
func (r *ProgramRepository) GetProgramByName(ctx context.Context, name string) (*core.ProgramRecord, error) {
	nameKey := core.NormalizeKey(name)
	if nameKey == "" {
		return nil, storage.ErrInvalidQuery
	}

	var id core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProgramNameKey(nameKey))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			id, err = storage.UnmarshalID(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return r.GetProgram(ctx, id)
}

// FindByAlias retrieves the first program carrying the query as an alias.
func (r *ProgramRepository) FindByAlias(ctx context.Context, alias string) (*core.ProgramRecord, error) {
	aliasKey := core.NormalizeKey(alias)
	if aliasKey == "" {
		return nil, storage.ErrInvalidQuery
	}

	var found *core.ProgramRecord
	err := r.forEachProgram(func(record *core.ProgramRecord) (bool, error) {
		for _, a := range record.Aliases {
			if core.NormalizeKey(a) == aliasKey {
				found = record
				return false, nil
			}
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, storage.ErrNotFound
	}
	return found, nil
}

// FindByNameContains retrieves up to limit programs whose name contains the
// token. Matches are returned in name order so results are stable.
func (r *ProgramRepository) FindByNameContains(ctx context.Context, token string, limit int) ([]*core.ProgramRecord, error) {
	tokenKey := core.NormalizeKey(token)
	if tokenKey == "" {
		return nil, storage.ErrInvalidQuery
	}

	var matches []*core.ProgramRecord
	err := r.forEachProgram(func(record *core.ProgramRecord) (bool, error) {
		if strings.Contains(core.NormalizeKey(record.Name), tokenKey) {
			matches = append(matches, record)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Name < matches[j].Name
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// FindByOfferingContains retrieves programs whose offering payload mentions
// the token, compared with all whitespace stripped.
func (r *ProgramRepository) FindByOfferingContains(ctx context.Context, token string) ([]*core.ProgramRecord, error) {
	tokenKey := core.NormalizeKey(token)
	if tokenKey == "" {
		return nil, storage.ErrInvalidQuery
	}

	var matches []*core.ProgramRecord
	err := r.forEachProgram(func(record *core.ProgramRecord) (bool, error) {
		if len(record.Offerings) == 0 {
			return true, nil
		}
		if strings.Contains(core.NormalizeKey(string(record.Offerings)), tokenKey) {
			matches = append(matches, record)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// ListNames returns all program names, sorted, up to limit.
func (r *ProgramRepository) ListNames(ctx context.Context, limit int) ([]string, error) {
	var names []string
	err := r.forEachProgram(func(record *core.ProgramRecord) (bool, error) {
		if record.Name != "" {
			names = append(names, record.Name)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	names = core.DedupPreserveOrder(names)
	sort.Strings(names)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// Count returns the total number of programs in the catalog.
func (r *ProgramRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(programRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Close closes the repository.
func (r *ProgramRepository) Close() error {
	return nil
}

// forEachProgram iterates every program record until fn returns false.
func (r *ProgramRepository) forEachProgram(fn func(record *core.ProgramRecord) (bool, error)) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(programRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.ProgramRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalProgram(val)
				return err
			})
			if err != nil {
				return err
			}

			keep, err := fn(record)
			if err != nil {
				return err
			}
			if !keep {
				return nil
			}
		}
		return nil
	}, false)
}
