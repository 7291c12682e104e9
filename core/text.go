package core

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	markupTag     = regexp.MustCompile(`<[^>]+>`)
	bracketSuffix = regexp.MustCompile(`\[[^\]]*\]`)
)

// StripMarkup removes angle-bracket tags from text and collapses the
// whitespace runs they leave behind. Empty input yields "". It never fails.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(markupTag.ReplaceAllString(s, " ")), " ")
}

// NormalizeKey converts a name to the form used for identity comparison:
// NFKC folded (full-width forms collapse to their canonical ones), all
// whitespace removed, lowercased. Never use the result for display.
func NormalizeKey(s string) string {
	if s == "" {
		return ""
	}
	folded := norm.NFKC.String(s)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// InstitutionKey normalizes an institution name for lookup. Bracketed campus
// suffixes ("OO대학교[본교]" vs "OO대학교") are dropped before key folding.
func InstitutionKey(s string) string {
	return NormalizeKey(bracketSuffix.ReplaceAllString(s, ""))
}

// DedupPreserveOrder removes later duplicates from items, keeping the first
// occurrence and the original relative order. Empty entries are dropped.
func DedupPreserveOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	ordered := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		ordered = append(ordered, item)
	}
	return ordered
}

// SplitAny splits s on any of the delimiter runes, trims each part and
// drops empty parts.
func SplitAny(s, delims string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
