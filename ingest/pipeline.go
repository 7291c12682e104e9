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


package ingest

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/majormentor/unigo/ai"
	"github.com/majormentor/unigo/core"
	"github.com/majormentor/unigo/extract"
	"github.com/majormentor/unigo/storage"
	"github.com/panjf2000/ants/v2"
)

// Pipeline seeds program records and their embedded search documents.
// Embedding calls run concurrently through a bounded worker pool; storage
// writes happen once all embeddings for a batch are in.
type Pipeline struct {
	programs storage.ProgramRepository
	docs     storage.DocRepository
	embedder ai.Embedder
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a seeding pipeline over the given collaborators.
func NewPipeline(programs storage.ProgramRepository, docs storage.DocRepository, embedder ai.Embedder, opts ...Option) (*Pipeline, error) {
	if programs == nil {
		return nil, ErrProgramRepositoryRequired
	}
	if docs == nil {
		return nil, ErrDocRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		programs: programs,
		docs:     docs,
		embedder: embedder,
		pool:     pool,
		logger:   slog.Default().With("component", "ingest-pipeline"),
	}
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}
	return p, nil
}

// IngestPrograms stores the records and embeds a summary, subject and job
// document for each one that has the text to support it. The first
// embedding failure aborts the batch.
func (p *Pipeline) IngestPrograms(ctx context.Context, records ...*core.ProgramRecord) error {
	if err := p.programs.AddPrograms(ctx, records...); err != nil {
		return err
	}

	type docJob struct {
		program core.ID
		doc     core.DocType
		text    string
	}
	var jobs []docJob
	for _, record := range records {
		for doc, text := range documentTexts(record) {
			jobs = append(jobs, docJob{program: record.Id, doc: doc, text: text})
		}
	}
	if len(jobs) == 0 {
		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	searchDocs := make([]*storage.SearchDoc, len(jobs))

	for i, job := range jobs {
		wg.Add(1)
		if err := p.pool.Submit(func() {
			defer wg.Done()

			vector, err := p.embedder.EmbedText(ctx, job.text)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			searchDocs[i] = &storage.SearchDoc{
				Program: job.program,
				Doc:     job.doc,
				Vector:  vector,
			}
		}); err != nil {
			wg.Done()
			return err
		}
	}
	wg.Wait()

	if firstErr != nil {
		p.logger.Error("embedding batch failed", "err", firstErr)
		return firstErr
	}

	if err := p.docs.PutDocs(ctx, searchDocs...); err != nil {
		return err
	}

	p.logger.Info("programs ingested", "programs", len(records), "docs", len(searchDocs))
	return nil
}

// Release releases the worker pool. The pipeline must not be used after.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// documentTexts builds the embeddable document per type for a record,
// omitting types the record has no text for.
func documentTexts(record *core.ProgramRecord) map[core.DocType]string {
	texts := make(map[core.DocType]string, 3)

	summary := strings.TrimSpace(core.StripMarkup(record.Summary) + " " + core.StripMarkup(record.Interests))
	if summary != "" {
		texts[core.DocSummary] = summary
	}

	var subjectParts []string
	for _, subject := range extract.Subjects(record.Subjects) {
		part := strings.TrimSpace(subject.Name + " " + subject.Summary)
		if part != "" {
			subjectParts = append(subjectParts, part)
		}
	}
	if len(subjectParts) > 0 {
		texts[core.DocSubjects] = strings.Join(subjectParts, "\n")
	}

	if jobs := extract.Jobs(record.JobText); len(jobs) > 0 {
		texts[core.DocJobs] = strings.Join(jobs, ", ")
	}

	return texts
}
