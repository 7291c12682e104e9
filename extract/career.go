package extract

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/majormentor/unigo/core"
)

// CareerField is one career destination category with its description.
type CareerField struct {
	Category    string
	Description string
}

// Activity is one recommended preparation activity.
type Activity struct {
	Name        string
	Description string
}

// Subject is one core subject taught in the program.
type Subject struct {
	Name    string
	Summary string
}

// Jobs splits free job text on comma, slash and newline, dropping tokens of
// a single character and duplicates.
func Jobs(jobText string) []string {
	if jobText == "" {
		return nil
	}
	parts := core.SplitAny(jobText, ",/\n")
	jobs := make([]string, 0, len(parts))
	for _, part := range parts {
		if utf8.RuneCountInString(part) > 1 {
			jobs = append(jobs, part)
		}
	}
	return core.DedupPreserveOrder(jobs)
}

// CareerFields decodes the career-destination payload. The category key is
// misspelled "gradeuate" in most source records, with "graduate" appearing
// in newer ones; both are accepted. Entries with neither category nor
// description are dropped.
func CareerFields(raw json.RawMessage) []CareerField {
	items := decodeObjectList(raw)
	if len(items) == 0 {
		return nil
	}

	fields := make([]CareerField, 0, len(items))
	for _, item := range items {
		category := strings.TrimSpace(firstString(item, "gradeuate", "graduate"))
		description := core.StripMarkup(firstString(item, "description"))
		if category == "" && description == "" {
			continue
		}
		fields = append(fields, CareerField{Category: category, Description: description})
	}
	return fields
}

// Activities decodes the recommended-activity payload. Markup is stripped
// from descriptions only; activity names are kept verbatim.
func Activities(raw json.RawMessage) []Activity {
	items := decodeObjectList(raw)
	if len(items) == 0 {
		return nil
	}

	activities := make([]Activity, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(firstString(item, "act_name"))
		description := core.StripMarkup(firstString(item, "act_description"))
		if name == "" && description == "" {
			continue
		}
		activities = append(activities, Activity{Name: name, Description: description})
	}
	return activities
}

// Subjects decodes the core-subject payload, accepting both the upstream
// SBJECT_NM/SBJECT_SUMRY keys and the subject_name/subject_description
// convention some records use instead.
func Subjects(raw json.RawMessage) []Subject {
	items := decodeObjectList(raw)
	if len(items) == 0 {
		return nil
	}

	subjects := make([]Subject, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(firstString(item, "SBJECT_NM", "subject_name"))
		summary := core.StripMarkup(firstString(item, "SBJECT_SUMRY", "subject_description"))
		if name == "" && summary == "" {
			continue
		}
		subjects = append(subjects, Subject{Name: name, Summary: summary})
	}
	return subjects
}

// Qualifications normalizes the qualifications payload, which arrives as
// either a JSON list or a delimited string. It returns both a comma-joined
// string and the deduplicated token list; null input yields ("", nil).
func Qualifications(raw json.RawMessage) (string, []string) {
	if isEmptyJSON(raw) {
		return "", nil
	}

	var tokens []string

	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, item := range list {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					tokens = append(tokens, s)
				}
			}
		}
	} else {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", nil
		}
		tokens = core.SplitAny(text, ",/\n")
	}

	tokens = core.DedupPreserveOrder(tokens)
	if len(tokens) == 0 {
		return "", nil
	}
	return strings.Join(tokens, ", "), tokens
}

// decodeObjectList decodes a raw payload as a list of JSON objects.
// Non-object elements are skipped; malformed payloads yield nil.
func decodeObjectList(raw json.RawMessage) []map[string]any {
	if isEmptyJSON(raw) {
		return nil
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	items := make([]map[string]any, 0, len(list))
	for _, element := range list {
		if item, ok := element.(map[string]any); ok {
			items = append(items, item)
		}
	}
	return items
}

// firstString returns the first non-empty string value among the given keys.
func firstString(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := item[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}
