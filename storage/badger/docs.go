package badger

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/majormentor/unigo/core"
	"github.com/majormentor/unigo/storage"
)

// DocRepository implements storage.DocRepository on BadgerDB.
// FindNearest scans every stored document; the catalog holds a few thousand
// documents at most, so a flat scan stays well under a millisecond.
type DocRepository struct {
	backend *Backend
	logger  *slog.Logger
}

// NewDocRepository creates a search-doc repository on the given backend.
func NewDocRepository(backend *Backend) (storage.DocRepository, error) {
	return &DocRepository{
		backend: backend,
		logger:  slog.Default().With("component", "doc-repository"),
	}, nil
}

// PutDocs stores embedded documents, keyed by (program id, doc type).
func (r *DocRepository) PutDocs(ctx context.Context, docs ...*storage.SearchDoc) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, doc := range docs {
			key := makeSearchDocKey(doc.Program, doc.Doc)
			if err := tx.Set(key, storage.MarshalSearchDoc(doc)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// FindNearest returns up to topK hits ordered by similarity score descending.
func (r *DocRepository) FindNearest(ctx context.Context, vector []float32, topK int) ([]core.SearchHit, error) {
	var hits []core.SearchHit

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(searchDocPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var doc *storage.SearchDoc
			err := iter.Item().Value(func(val []byte) error {
				var err error
				doc, err = storage.UnmarshalSearchDoc(val)
				return err
			})
			if err != nil {
				return err
			}
			if doc == nil || len(doc.Vector) == 0 {
				continue
			}

			// Cosine similarity (dot product for normalized vectors)
			hits = append(hits, core.SearchHit{
				Program: doc.Program,
				Doc:     doc.Doc,
				Score:   dotProduct(vector, doc.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(hits, func(a, b core.SearchHit) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

// Close closes the repository.
func (r *DocRepository) Close() error {
	return nil
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
