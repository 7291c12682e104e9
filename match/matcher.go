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


package match

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/majormentor/unigo/core"
	"github.com/majormentor/unigo/extract"
	"github.com/majormentor/unigo/storage"
)

const (
	// DefaultThreshold is the minimum combined score a department
	// candidate needs to be suggested. Below it, short generic fragments
	// produce false positives.
	DefaultThreshold = 0.4

	// DefaultContainmentBoost is added when one folded name contains the
	// other ("소프트웨어" inside "소프트웨어학부"). Containment is strong
	// evidence the names describe the same unit even when edit distance
	// is poor.
	DefaultContainmentBoost = 0.2

	maxSuggestions = 3
)

// Outcome classifies a department verification result.
type Outcome uint8

const (
	// Confirmed means the department exists at the institution under
	// exactly that name (after key folding).
	Confirmed Outcome = iota + 1
	// Suggested means no exact match existed but similar department
	// names at the institution cleared the threshold.
	Suggested
	// GlobalFallback means the institution's own labels failed, but the
	// catalog-wide program entry for the query revealed the label the
	// institution actually uses.
	GlobalFallback
	// NotFound means every strategy was exhausted.
	NotFound
)

// String returns the outcome label used in logs.
func (o Outcome) String() string {
	switch o {
	case Confirmed:
		return "confirmed"
	case Suggested:
		return "suggested"
	case GlobalFallback:
		return "global-fallback"
	case NotFound:
		return "not-found"
	}
	return "unknown"
}

// Result is the outcome of verifying a department at an institution.
type Result struct {
	Outcome     Outcome
	Institution *core.InstitutionRecord

	// Candidates holds the top similar department names when the outcome
	// is Suggested, best first.
	Candidates []core.Candidate

	// FallbackName is the institution's own department label when the
	// outcome is GlobalFallback.
	FallbackName string
}

// Matcher verifies that a department exists at an institution, suggesting
// near-miss department names when it does not. Department names differ
// between the standard catalog phrasing and an institution's actual
// administrative unit name, so a pure substring or pure edit-distance test
// alone misfires both ways; the matcher combines them.
type Matcher struct {
	programs     storage.ProgramRepository
	institutions storage.InstitutionRepository
	threshold    float64
	boost        float64
	logger       *slog.Logger
}

// Option is a functional option for configuring a Matcher.
type Option func(*Matcher)

// WithLogger sets the logger used by the matcher.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// WithThreshold overrides the minimum candidate score.
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.threshold = threshold
	}
}

// WithContainmentBoost overrides the score boost for name containment.
func WithContainmentBoost(boost float64) Option {
	return func(m *Matcher) {
		m.boost = boost
	}
}

// NewMatcher creates a matcher over the given repositories.
func NewMatcher(programs storage.ProgramRepository, institutions storage.InstitutionRepository, opts ...Option) *Matcher {
	m := &Matcher{
		programs:     programs,
		institutions: institutions,
		threshold:    DefaultThreshold,
		boost:        DefaultContainmentBoost,
		logger:       slog.Default().With("component", "matcher"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// VerifyDepartment checks whether departmentName exists at the named
// institution. It returns ErrInstitutionNotFound when the institution
// itself cannot be resolved; an unverifiable department is a NotFound
// result, not an error.
func (m *Matcher) VerifyDepartment(ctx context.Context, institutionName, departmentName string) (*Result, error) {
	institutionName = strings.TrimSpace(institutionName)
	if institutionName == "" {
		return nil, ErrEmptyInstitution
	}
	departmentName = strings.TrimSpace(departmentName)
	if departmentName == "" {
		return nil, ErrEmptyDepartment
	}

	institution, err := m.ResolveInstitution(ctx, institutionName)
	if err != nil {
		return nil, err
	}

	departments, err := m.departmentsAt(ctx, institution.Name)
	if err != nil {
		return nil, err
	}

	targetKey := core.NormalizeKey(departmentName)
	for _, department := range departments {
		if core.NormalizeKey(department) == targetKey {
			m.logger.Debug("department confirmed",
				"institution", institution.Name, "department", department)
			return &Result{Outcome: Confirmed, Institution: institution}, nil
		}
	}

	if candidates := m.scoreCandidates(targetKey, departments); len(candidates) > 0 {
		return &Result{
			Outcome:     Suggested,
			Institution: institution,
			Candidates:  candidates,
		}, nil
	}

	fallback, err := m.globalLookup(ctx, departmentName, institution.Name)
	if err != nil {
		return nil, err
	}
	if fallback != "" {
		m.logger.Debug("department found via global lookup",
			"institution", institution.Name, "department", fallback)
		return &Result{
			Outcome:      GlobalFallback,
			Institution:  institution,
			FallbackName: fallback,
		}, nil
	}

	return &Result{Outcome: NotFound, Institution: institution}, nil
}

// ResolveInstitution finds an institution by exact key, falling back to the
// closest fuzzy candidate above the threshold.
func (m *Matcher) ResolveInstitution(ctx context.Context, name string) (*core.InstitutionRecord, error) {
	institution, err := m.institutions.Lookup(ctx, name)
	if err == nil {
		return institution, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	candidates, err := m.SearchInstitutions(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrInstitutionNotFound
	}
	return m.institutions.Lookup(ctx, candidates[0].Name)
}

// SearchInstitutions ranks directory institutions by name similarity to the
// query, keeping those above the threshold.
func (m *Matcher) SearchInstitutions(ctx context.Context, name string) ([]core.Candidate, error) {
	all, err := m.institutions.All(ctx)
	if err != nil {
		return nil, err
	}

	targetKey := core.InstitutionKey(name)
	if targetKey == "" {
		return nil, ErrEmptyInstitution
	}

	var candidates []core.Candidate
	for _, institution := range all {
		score := m.combinedScore(targetKey, core.InstitutionKey(institution.Name))
		if score > m.threshold {
			candidates = append(candidates, core.Candidate{Name: institution.Name, Score: score})
		}
	}
	sortCandidates(candidates)
	return candidates, nil
}

// departmentsAt collects every department label offered at the institution,
// derived from program offering entries whose institution name contains the
// target (whitespace-insensitive). The target key has its bracketed campus
// suffix stripped so "한양대학교[본교]" still matches entries that say just
// "한양대학교", while entry keys keep theirs.
func (m *Matcher) departmentsAt(ctx context.Context, institutionName string) ([]string, error) {
	targetKey := core.InstitutionKey(institutionName)
	records, err := m.programs.FindByOfferingContains(ctx, targetKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	seen := make(map[string]struct{})
	var departments []string
	for _, record := range records {
		for _, offering := range extract.Offerings(record) {
			if !strings.Contains(core.NormalizeKey(offering.Institution), targetKey) {
				continue
			}
			if offering.Department == "" {
				continue
			}
			if _, dup := seen[offering.Department]; dup {
				continue
			}
			seen[offering.Department] = struct{}{}
			departments = append(departments, offering.Department)
		}
	}
	sort.Strings(departments)
	return departments, nil
}

// scoreCandidates ranks the institution's department labels against the
// query key and keeps the top suggestions above the threshold.
func (m *Matcher) scoreCandidates(targetKey string, departments []string) []core.Candidate {
	var candidates []core.Candidate
	for _, department := range departments {
		score := m.combinedScore(targetKey, core.NormalizeKey(department))
		if score > m.threshold {
			candidates = append(candidates, core.Candidate{Name: department, Score: score})
		}
	}
	sortCandidates(candidates)
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	return candidates
}

// combinedScore is the edit-distance ratio of two folded keys, boosted when
// one contains the other.
func (m *Matcher) combinedScore(a, b string) float64 {
	score := similarity(a, b)
	if a != "" && b != "" && (strings.Contains(a, b) || strings.Contains(b, a)) {
		score += m.boost
	}
	return score
}

// globalLookup searches the whole catalog for the department as a program
// name or alias, then checks whether that program's offerings include the
// target institution. It returns the department label the institution uses,
// or "" when nothing matches.
func (m *Matcher) globalLookup(ctx context.Context, departmentName, institutionName string) (string, error) {
	record, err := m.programs.GetProgramByName(ctx, departmentName)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return "", err
		}
		record, err = m.programs.FindByAlias(ctx, departmentName)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return "", nil
			}
			return "", err
		}
	}

	targetKey := core.InstitutionKey(institutionName)
	for _, offering := range extract.Offerings(record) {
		offeringKey := core.NormalizeKey(offering.Institution)
		if strings.Contains(offeringKey, targetKey) || strings.Contains(targetKey, offeringKey) {
			return offering.Department, nil
		}
	}
	return "", nil
}

// sortCandidates orders candidates by score descending, then name, so equal
// scores stay deterministic.
func sortCandidates(candidates []core.Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Name < candidates[j].Name
	})
}
