package taxonomy

import (
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/majormentor/unigo/core"
)

// tokenDelims are the delimiters that break taxonomy strings and queries
// into atomic keywords.
const tokenDelims = "/,()"

// Taxonomy is an immutable broad-category to sub-category mapping.
// Construct it once with New or Load and share it by reference.
type Taxonomy struct {
	categories map[string][]string
	order      []string // sorted category keys
}

// New builds a Taxonomy from an in-memory mapping. The input is copied, so
// later mutation of the argument does not affect the taxonomy.
func New(categories map[string][]string) *Taxonomy {
	t := &Taxonomy{
		categories: make(map[string][]string, len(categories)),
		order:      make([]string, 0, len(categories)),
	}
	for key, values := range categories {
		t.categories[key] = append([]string(nil), values...)
		t.order = append(t.order, key)
	}
	sort.Strings(t.order)
	return t
}

// Load reads a taxonomy JSON document: an object mapping broad-category
// labels to lists of sub-category strings.
//
// A missing or malformed file is not fatal: Load logs a warning and returns
// an empty taxonomy, which degrades Expand to delimiter-only splitting.
func Load(path string, logger *slog.Logger) *Taxonomy {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("taxonomy file not readable, expansion degrades to delimiter splitting", "path", path, "err", err)
		return New(nil)
	}

	var categories map[string][]string
	if err := json.Unmarshal(data, &categories); err != nil {
		logger.Warn("taxonomy file malformed, expansion degrades to delimiter splitting", "path", path, "err", err)
		return New(nil)
	}

	return New(categories)
}

// Len returns the number of broad categories.
func (t *Taxonomy) Len() int {
	return len(t.categories)
}

// Categories returns the broad-category labels in sorted order.
func (t *Taxonomy) Categories() []string {
	return append([]string(nil), t.order...)
}

// SubCategories returns the sub-category strings of a broad category,
// or nil when the label is not a broad category.
func (t *Taxonomy) SubCategories(category string) []string {
	values, ok := t.categories[category]
	if !ok {
		return nil
	}
	return append([]string(nil), values...)
}

// Expand turns a raw query into search tokens plus an embedding-ready string.
//
// Rules, first match wins:
//  1. The query equals a broad-category label: every sub-category string of
//     that category is split into atomic tokens.
//  2. The query equals, or is contained in, any sub-category string: that
//     query is split into atomic tokens.
//  3. Otherwise the query is split on "/" and ",". With no delimiter present
//     the query itself is the sole token.
//
// Tokens are deduplicated preserving order. The embed text is the
// space-joined token sequence, falling back to the raw query when no tokens
// survive. A blank query yields (nil, "").
func (t *Taxonomy) Expand(query string) (tokens []string, embedText string) {
	raw := strings.TrimSpace(query)
	if raw == "" {
		return nil, ""
	}

	switch {
	case t.categories[raw] != nil:
		for _, item := range t.categories[raw] {
			tokens = append(tokens, core.SplitAny(item, tokenDelims)...)
		}
	case t.matchesSubCategory(raw):
		// Split on whitespace as well: a sub-category matched through its
		// space-joined token form must expand to the same token set as the
		// slash-joined original.
		tokens = core.SplitAny(raw, tokenDelims+" \t\n")
	default:
		tokens = core.SplitAny(raw, "/,")
		if len(tokens) == 0 {
			tokens = []string{raw}
		}
	}

	tokens = core.DedupPreserveOrder(tokens)

	embedText = strings.Join(tokens, " ")
	if embedText == "" {
		embedText = raw
	}
	return tokens, embedText
}

// matchesSubCategory reports whether raw equals or occurs inside any
// sub-category string of any category. The comparison also runs on
// whitespace-stripped keys so "컴퓨터 소프트웨어 인공지능" still matches
// "컴퓨터 / 소프트웨어 / 인공지능".
func (t *Taxonomy) matchesSubCategory(raw string) bool {
	rawKey := tokenKey(raw)
	for _, values := range t.categories {
		for _, v := range values {
			if strings.Contains(v, raw) || strings.Contains(tokenKey(v), rawKey) {
				return true
			}
		}
	}
	return false
}

// tokenKey folds a taxonomy string for containment checks: delimiters and
// whitespace are dropped so only the keyword sequence remains.
func tokenKey(s string) string {
	return core.NormalizeKey(strings.Map(func(r rune) rune {
		if strings.ContainsRune(tokenDelims, r) {
			return -1
		}
		return r
	}, s))
}
