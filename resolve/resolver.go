// Copyright 2025 Major Mentor
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package resolve

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/majormentor/unigo/ai"
	"github.com/majormentor/unigo/core"
	"github.com/majormentor/unigo/storage"
	"github.com/majormentor/unigo/taxonomy"
)

const (
	// DefaultLimit is the result count used when the caller passes none.
	DefaultLimit = 10

	// neighborMultiplier over-fetches vector neighbors so that per-program
	// aggregation across the three document types still fills the limit.
	neighborMultiplier = 3
)

// defaultDocTypeWeights bias aggregation toward the summary document. The
// subject and job documents support a match but should not outvote it.
var defaultDocTypeWeights = map[core.DocType]float32{
	core.DocSummary:  1.2,
	core.DocSubjects: 0.8,
	core.DocJobs:     0.8,
}

// Resolver turns a free-form query into the program records a person asking
// it would expect. It cascades through four stages: exact name-or-alias
// match, per-token lookup after taxonomy expansion, vector similarity
// search, and a substring fallback. The vector stage always runs, even
// after an exact hit: a literal title match can hide the results the user
// actually wanted.
//
// A Resolver is stateless between calls and safe for concurrent use.
type Resolver struct {
	programs storage.ProgramRepository
	docs     storage.DocRepository
	embedder ai.Embedder
	taxonomy *taxonomy.Taxonomy
	weights  map[core.DocType]float32
	logger   *slog.Logger
}

// Option is a functional option for configuring a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used by the resolver.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithDocTypeWeights overrides the per-document-type aggregation weights
// used by the vector stage.
func WithDocTypeWeights(weights map[core.DocType]float32) Option {
	return func(r *Resolver) {
		r.weights = weights
	}
}

// NewResolver creates a resolver over the given collaborators.
func NewResolver(programs storage.ProgramRepository, docs storage.DocRepository, embedder ai.Embedder, tax *taxonomy.Taxonomy, opts ...Option) *Resolver {
	r := &Resolver{
		programs: programs,
		docs:     docs,
		embedder: embedder,
		taxonomy: tax,
		weights:  defaultDocTypeWeights,
		logger:   slog.Default().With("component", "resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns up to limit program records for the query, best first.
// A limit of zero or less falls back to DefaultLimit. Collaborator
// failures (store, embedder, index) propagate to the caller unretried;
// an exhausted cascade returns an empty slice, not an error.
func (r *Resolver) Resolve(ctx context.Context, query string, limit int) ([]*core.ProgramRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	acc := newAccumulator(limit)

	// Stage 1: exact name-or-alias match on the whole query.
	direct, err := r.lookupByName(ctx, query)
	if err != nil {
		return nil, err
	}
	if direct != nil {
		acc.add(direct)
	}

	tokens, embedText := r.taxonomy.Expand(query)

	// Stage 2: per-token lookups, only when stage 1 came up empty.
	if acc.empty() && len(tokens) > 0 {
		for _, token := range tokens {
			match, err := r.lookupByName(ctx, token)
			if err != nil {
				return nil, err
			}
			if match != nil {
				acc.add(match)
			}
		}
	}

	// Stage 3: vector similarity, always.
	searchText := embedText
	if searchText == "" {
		searchText = query
	}
	neighbors, err := r.searchByVector(ctx, searchText, limit)
	if err != nil {
		return nil, err
	}
	for _, record := range neighbors {
		acc.add(record)
		if acc.full() {
			break
		}
	}

	// Stage 4: substring fallback over program names.
	if !acc.full() && len(tokens) > 0 {
		for _, token := range tokens {
			partial, err := r.programs.FindByNameContains(ctx, token, limit)
			if err != nil && !errors.Is(err, storage.ErrInvalidQuery) {
				return nil, err
			}
			for _, record := range partial {
				acc.add(record)
				if acc.full() {
					break
				}
			}
			if acc.full() {
				break
			}
		}
	}

	records := acc.records()
	r.logger.Debug("query resolved",
		"query", query, "tokens", len(tokens), "matches", len(records))
	return records, nil
}

// lookupByName tries an exact program-name match, then an alias match.
// A miss returns (nil, nil); only real store failures surface.
func (r *Resolver) lookupByName(ctx context.Context, name string) (*core.ProgramRecord, error) {
	record, err := r.programs.GetProgramByName(ctx, name)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrInvalidQuery) {
		return nil, err
	}

	record, err = r.programs.FindByAlias(ctx, name)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrInvalidQuery) {
		return nil, err
	}
	return nil, nil
}

// searchByVector embeds the text, over-fetches nearest neighbors and
// aggregates their scores per program with the document-type weights.
// Results come back as full records, best aggregate score first.
func (r *Resolver) searchByVector(ctx context.Context, text string, limit int) ([]*core.ProgramRecord, error) {
	vectorLimit := max(limit, DefaultLimit)

	vector, err := r.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	hits, err := r.docs.FindNearest(ctx, vector, vectorLimit*neighborMultiplier)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}

	aggregated := make(map[core.ID]float32, len(hits))
	for _, hit := range hits {
		aggregated[hit.Program] += r.weights[hit.Doc] * hit.Score
	}

	type scored struct {
		id    core.ID
		score float32
	}
	ranked := make([]scored, 0, len(aggregated))
	for id, score := range aggregated {
		ranked = append(ranked, scored{id, score})
	}
	slices.SortFunc(ranked, func(a, b scored) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		// Tie-break on id so equal scores stay deterministic.
		if a.id < b.id {
			return -1
		}
		if a.id > b.id {
			return 1
		}
		return 0
	})
	if len(ranked) > vectorLimit {
		ranked = ranked[:vectorLimit]
	}

	ids := make([]core.ID, len(ranked))
	for i, s := range ranked {
		ids[i] = s.id
	}
	return r.programs.GetPrograms(ctx, ids...)
}

// accumulator collects records across stages, deduplicating on record id.
type accumulator struct {
	limit   int
	seen    map[core.ID]struct{}
	matches []*core.ProgramRecord
}

func newAccumulator(limit int) *accumulator {
	return &accumulator{
		limit: limit,
		seen:  make(map[core.ID]struct{}, limit),
	}
}

func (a *accumulator) add(record *core.ProgramRecord) {
	if _, dup := a.seen[record.Id]; dup {
		return
	}
	a.seen[record.Id] = struct{}{}
	a.matches = append(a.matches, record)
}

func (a *accumulator) empty() bool { return len(a.matches) == 0 }
func (a *accumulator) full() bool  { return len(a.matches) >= a.limit }

func (a *accumulator) records() []*core.ProgramRecord {
	if len(a.matches) > a.limit {
		return a.matches[:a.limit]
	}
	return a.matches
}
