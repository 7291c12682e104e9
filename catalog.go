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


// Package unigo resolves free-form Korean queries about academic programs,
// departments and institutions against a local catalog.
package unigo

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/majormentor/unigo/ai"
	"github.com/majormentor/unigo/ai/openai"
	"github.com/majormentor/unigo/core"
	"github.com/majormentor/unigo/extract"
	"github.com/majormentor/unigo/format"
	"github.com/majormentor/unigo/ingest"
	"github.com/majormentor/unigo/match"
	"github.com/majormentor/unigo/resolve"
	"github.com/majormentor/unigo/storage"
	"github.com/majormentor/unigo/storage/badger"
	"github.com/majormentor/unigo/taxonomy"
)

const (
	// maxUniversityResults caps the offering rows a department query
	// aggregates across matched programs.
	maxUniversityResults = 50

	// universityExampleCount is how many "institution department" samples
	// a department listing shows per department.
	universityExampleCount = 3
)

// ErrNoResults indicates a query matched nothing in the catalog. It is an
// exhausted search, distinguishable from collaborator failures.
var ErrNoResults = errors.New("no results")

// careerInfoNotice warns that career data describes the standard catalog
// program, not any specific institution's curriculum.
const careerInfoNotice = "⚠️ 주의: 이 정보는 '커리어넷'에서 제공하는 [표준 학과]에 대한 일반적인 정보입니다. " +
	"특정 대학의 실제 커리큘럼이나 진로와는 다를 수 있음을 사용자에게 반드시 고지하세요."

// Catalog is the top-level entry point. It owns the storage backend, the
// embedding client and the immutable taxonomy, and wires the resolver and
// matcher on top of them.
type Catalog struct {
	backend      *badger.Backend
	programs     storage.ProgramRepository
	institutions storage.InstitutionRepository
	docs         storage.DocRepository
	embedder     ai.Embedder
	taxonomy     *taxonomy.Taxonomy
	resolver     *resolve.Resolver
	matcher      *match.Matcher
	logger       *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	aiConfig     *ai.Config
	taxonomyPath string
	embedder     ai.Embedder
	inMemory     bool
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) CatalogOption {
	return func(o *catalogOptions) {
		o.aiConfig = config
	}
}

// WithTaxonomyPath sets the category taxonomy file. Without it (or with a
// broken file) category expansion degrades to delimiter splitting.
func WithTaxonomyPath(path string) CatalogOption {
	return func(o *catalogOptions) {
		o.taxonomyPath = path
	}
}

// WithEmbedder injects an embedder directly, bypassing the OpenAI client.
func WithEmbedder(embedder ai.Embedder) CatalogOption {
	return func(o *catalogOptions) {
		o.embedder = embedder
	}
}

// WithInMemory keeps all storage in memory. Intended for tests.
func WithInMemory() CatalogOption {
	return func(o *catalogOptions) {
		o.inMemory = true
	}
}

// NewCatalog opens a catalog at filePath.
func NewCatalog(filePath string, opts ...CatalogOption) (*Catalog, error) {
	options := &catalogOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	programs, err := badger.NewProgramRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	institutions, err := badger.NewInstitutionRepository(backend)
	if err != nil {
		programs.Close()
		backend.Close()
		return nil, err
	}

	docs, err := badger.NewDocRepository(backend)
	if err != nil {
		institutions.Close()
		programs.Close()
		backend.Close()
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			docs.Close()
			institutions.Close()
			programs.Close()
			backend.Close()
			return nil, err
		}
	}

	logger := slog.Default()
	tax := taxonomy.New(nil)
	if options.taxonomyPath != "" {
		tax = taxonomy.Load(options.taxonomyPath, logger)
	}

	return &Catalog{
		backend:      backend,
		programs:     programs,
		institutions: institutions,
		docs:         docs,
		embedder:     embedder,
		taxonomy:     tax,
		resolver:     resolve.NewResolver(programs, docs, embedder, tax),
		matcher:      match.NewMatcher(programs, institutions),
		logger:       logger,
	}, nil
}

// Close closes the repositories and the backend.
func (c *Catalog) Close() error {
	if err := c.docs.Close(); err != nil {
		c.logger.Error("error closing doc repository", "err", err)
		return err
	}
	if err := c.institutions.Close(); err != nil {
		c.logger.Error("error closing institution repository", "err", err)
		return err
	}
	if err := c.programs.Close(); err != nil {
		c.logger.Error("error closing program repository", "err", err)
		return err
	}
	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ProgramRepository returns the program store.
func (c *Catalog) ProgramRepository() storage.ProgramRepository {
	return c.programs
}

// InstitutionRepository returns the institution directory.
func (c *Catalog) InstitutionRepository() storage.InstitutionRepository {
	return c.institutions
}

// Resolver returns the program resolver.
func (c *Catalog) Resolver() *resolve.Resolver {
	return c.resolver
}

// Matcher returns the institution/department matcher.
func (c *Catalog) Matcher() *match.Matcher {
	return c.matcher
}

// NewIngestPipeline creates a seeding pipeline bound to this catalog.
func (c *Catalog) NewIngestPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(c.programs, c.docs, c.embedder, opts...)
}

// Seed loads the program catalog and institution directory files and stores
// their contents, embedding search documents along the way.
func (c *Catalog) Seed(ctx context.Context, programsPath, institutionsPath string) error {
	records, err := ingest.LoadPrograms(programsPath, c.logger)
	if err != nil {
		return err
	}

	pipeline, err := c.NewIngestPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	if err := pipeline.IngestPrograms(ctx, records...); err != nil {
		return err
	}

	if institutionsPath == "" {
		return nil
	}
	institutions, err := ingest.LoadInstitutions(institutionsPath, c.logger)
	if err != nil {
		return err
	}
	return c.institutions.AddInstitutions(ctx, institutions...)
}

// ListDepartments renders a department listing for the query. An empty
// query or the literal "전체" lists the whole catalog alphabetically; any
// other query goes through the resolver cascade.
func (c *Catalog) ListDepartments(ctx context.Context, query string, topK int) (string, error) {
	query = strings.TrimSpace(query)
	if topK <= 0 {
		topK = resolve.DefaultLimit
	}

	if query == "" || query == "전체" {
		return c.listAllDepartments(ctx, topK)
	}

	fetchLimit := topK
	if fetchLimit < resolve.DefaultLimit {
		fetchLimit = resolve.DefaultLimit
	}
	records, err := c.resolver.Resolve(ctx, query, fetchLimit)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(records))
	examples := make(map[string][]string)
	for _, record := range records {
		if record.Name == "" {
			continue
		}
		names = append(names, record.Name)
		if pairs := extract.UniversityPairs(record, universityExampleCount); len(pairs) > 0 {
			examples[record.Name] = pairs
		}
	}
	if len(names) == 0 {
		return format.NoResults, nil
	}
	if len(names) > topK {
		names = names[:topK]
	}
	return format.DepartmentList(query, names, -1, examples), nil
}

func (c *Catalog) listAllDepartments(ctx context.Context, topK int) (string, error) {
	total, err := c.programs.Count(ctx)
	if err != nil {
		return "", err
	}
	names, err := c.programs.ListNames(ctx, topK)
	if err != nil {
		return "", err
	}

	examples := make(map[string][]string, len(names))
	for _, name := range names {
		record, err := c.programs.GetProgramByName(ctx, name)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return "", err
		}
		if pairs := extract.UniversityPairs(record, universityExampleCount); len(pairs) > 0 {
			examples[name] = pairs
		}
	}
	return format.DepartmentList("전체", names, total, examples), nil
}

// CareerInfo is the career profile of one program.
type CareerInfo struct {
	Major             string
	Jobs              []string
	JobSummary        string
	CareerFields      []extract.CareerField
	Activities        []extract.Activity
	Subjects          []extract.Subject
	Qualifications    string
	QualificationList []string
	GenderRatio       string
	Satisfaction      string
	EmploymentRate    float64
	AcceptanceRate    float64

	// AnnualSalary is twelve times the catalog's monthly figure; zero
	// means the record carried none.
	AnnualSalary float64

	// Notice must be surfaced with the data: it describes the standard
	// catalog program, not a specific institution's curriculum.
	Notice string
}

// CareerInfo returns the career profile for the best-matching program.
func (c *Catalog) CareerInfo(ctx context.Context, majorName string) (*CareerInfo, error) {
	records, err := c.resolver.Resolve(ctx, majorName, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoResults
	}
	record := records[0]

	qualificationsText, qualificationList := extract.Qualifications(record.Qualifications)
	gender, satisfaction := extract.ChartStats(record.ChartData)
	annualSalary, _ := extract.AnnualSalary(record.Salary)

	return &CareerInfo{
		Major:             record.Name,
		Jobs:              extract.Jobs(record.JobText),
		JobSummary:        strings.TrimSpace(record.JobText),
		CareerFields:      extract.CareerFields(record.CareerFields),
		Activities:        extract.Activities(record.Activities),
		Subjects:          extract.Subjects(record.Subjects),
		Qualifications:    qualificationsText,
		QualificationList: qualificationList,
		GenderRatio:       gender,
		Satisfaction:      satisfaction,
		EmploymentRate:    record.EmploymentRate,
		AcceptanceRate:    record.AcceptanceRate,
		AnnualSalary:      annualSalary,
		Notice:            careerInfoNotice,
	}, nil
}

// UniversitiesByDepartment returns the institutions offering a department,
// exact name-or-alias match first, then resolver matches, capped at
// maxUniversityResults rows.
func (c *Catalog) UniversitiesByDepartment(ctx context.Context, departmentName string) ([]extract.Offering, error) {
	departmentName = strings.TrimSpace(departmentName)
	if departmentName == "" {
		return nil, resolve.ErrEmptyQuery
	}

	var records []*core.ProgramRecord
	direct, err := c.lookupByName(ctx, departmentName)
	if err != nil {
		return nil, err
	}
	if direct != nil {
		records = []*core.ProgramRecord{direct}
	} else {
		records, err = c.resolver.Resolve(ctx, departmentName, 5)
		if err != nil {
			return nil, err
		}
	}

	var aggregated []extract.Offering
	for _, record := range records {
		aggregated = append(aggregated, extract.Offerings(record)...)
		if len(aggregated) >= maxUniversityResults {
			aggregated = aggregated[:maxUniversityResults]
			break
		}
	}
	if len(aggregated) == 0 {
		return nil, ErrNoResults
	}
	return aggregated, nil
}

// AdmissionInfo is an institution's admission-page pointer, with the
// department verification verdict when a department was asked about.
type AdmissionInfo struct {
	Institution *core.InstitutionRecord
	Department  string

	// Verification is nil when no department was given.
	Verification *match.Result

	// SuggestedDepartments carries near-miss department names the caller
	// should offer to the user.
	SuggestedDepartments []string

	Message string
	Guide   string
}

// AdmissionInfo resolves an institution's admission link, verifying the
// department at that institution when one is named. An unresolvable
// institution surfaces as match.ErrInstitutionNotFound.
func (c *Catalog) AdmissionInfo(ctx context.Context, institutionName, departmentName string) (*AdmissionInfo, error) {
	institutionName = strings.TrimSpace(institutionName)
	if institutionName == "" {
		return nil, match.ErrEmptyInstitution
	}
	departmentName = strings.TrimSpace(departmentName)

	if departmentName == "" {
		institution, err := c.matcher.ResolveInstitution(ctx, institutionName)
		if err != nil {
			return nil, err
		}
		return &AdmissionInfo{
			Institution: institution,
			Message:     format.AdmissionLink(institution.Name, "", institution.URL),
			Guide:       format.AdmissionGuide,
		}, nil
	}

	result, err := c.matcher.VerifyDepartment(ctx, institutionName, departmentName)
	if err != nil {
		return nil, err
	}

	var suggested []string
	switch result.Outcome {
	case match.Suggested:
		for _, candidate := range result.Candidates {
			suggested = append(suggested, candidate.Name)
		}
	case match.GlobalFallback:
		suggested = []string{result.FallbackName}
	}

	return &AdmissionInfo{
		Institution:          result.Institution,
		Department:           departmentName,
		Verification:         result,
		SuggestedDepartments: suggested,
		Message:              format.AdmissionMessage(result, departmentName),
		Guide:                format.AdmissionGuide,
	}, nil
}

// SearchInstitutions ranks directory institutions similar to the name, for
// suggesting corrections when an institution lookup fails.
func (c *Catalog) SearchInstitutions(ctx context.Context, name string) ([]core.Candidate, error) {
	return c.matcher.SearchInstitutions(ctx, name)
}

// SearchHelp returns the user-facing guide describing what can be asked.
func (c *Catalog) SearchHelp() string {
	return format.SearchGuide()
}

// lookupByName is the exact name-then-alias lookup; a miss is (nil, nil).
func (c *Catalog) lookupByName(ctx context.Context, name string) (*core.ProgramRecord, error) {
	record, err := c.programs.GetProgramByName(ctx, name)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrInvalidQuery) {
		return nil, err
	}
	record, err = c.programs.FindByAlias(ctx, name)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrInvalidQuery) {
		return nil, err
	}
	return nil, nil
}
