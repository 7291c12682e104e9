package badger

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/majormentor/unigo/core"
	"github.com/majormentor/unigo/storage"
)

// InstitutionRepository implements storage.InstitutionRepository on BadgerDB.
// Records are keyed by the folded institution name, so lookups are already
// insensitive to whitespace, case and bracketed campus suffixes.
type InstitutionRepository struct {
	backend *Backend
	logger  *slog.Logger
}

// NewInstitutionRepository creates an institution repository on the given backend.
func NewInstitutionRepository(backend *Backend) (storage.InstitutionRepository, error) {
	return &InstitutionRepository{
		backend: backend,
		logger:  slog.Default().With("component", "institution-repository"),
	}, nil
}

// AddInstitutions stores institution records.
func (r *InstitutionRepository) AddInstitutions(ctx context.Context, records ...*core.InstitutionRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if err := core.ValidateInstitution(record); err != nil {
				return err
			}
			key := makeInstitutionKey(core.InstitutionKey(record.Name))
			if err := tx.Set(key, storage.MarshalInstitution(record)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Lookup retrieves an institution by name.
func (r *InstitutionRepository) Lookup(ctx context.Context, name string) (*core.InstitutionRecord, error) {
	nameKey := core.InstitutionKey(name)
	if nameKey == "" {
		return nil, storage.ErrInvalidQuery
	}

	var record *core.InstitutionRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeInstitutionKey(nameKey))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = storage.UnmarshalInstitution(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// All returns every institution in the directory, sorted by name.
func (r *InstitutionRepository) All(ctx context.Context) ([]*core.InstitutionRecord, error) {
	var records []*core.InstitutionRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(institutionPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, err := storage.UnmarshalInstitution(val)
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

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records, nil
}

// Close closes the repository.
func (r *InstitutionRepository) Close() error {
	return nil
}
