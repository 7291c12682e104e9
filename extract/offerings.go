package extract

import (
	"strings"

	"github.com/majormentor/unigo/core"
)

// Offering is one institution that teaches a program, with the department
// label that institution actually uses.
type Offering struct {
	Institution string
	College     string // campus or area, whichever the source provides
	Department  string
	Area        string
	Campus      string
	URL         string

	// StandardMajorName carries the canonical catalog name, set only when
	// the institution's own department label differs from it.
	StandardMajorName string
}

// Offerings decodes the offering-institution payload of a record. Entries
// without an institution name are dropped and duplicates collapse on the
// (institution, department, campus) triple. The department label falls back
// to the record's canonical program name when the entry carries none.
func Offerings(record *core.ProgramRecord) []Offering {
	items := decodeObjectList(record.Offerings)
	if len(items) == 0 {
		return nil
	}

	type dedupKey struct {
		institution, department, campus string
	}
	seen := make(map[dedupKey]struct{}, len(items))

	offerings := make([]Offering, 0, len(items))
	for _, item := range items {
		institution := strings.TrimSpace(firstString(item, "schoolName"))
		if institution == "" {
			continue
		}
		campus := strings.TrimSpace(firstString(item, "campus_nm", "campusNm"))
		area := strings.TrimSpace(firstString(item, "area"))
		url := strings.TrimSpace(firstString(item, "schoolURL"))

		department := strings.TrimSpace(firstString(item, "majorName"))
		if department == "" {
			department = record.Name
		}

		key := dedupKey{institution, department, campus}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		college := campus
		if college == "" {
			college = area
		}

		offering := Offering{
			Institution: institution,
			College:     college,
			Department:  department,
			Area:        area,
			Campus:      campus,
			URL:         url,
		}
		if record.Name != "" && record.Name != department {
			offering.StandardMajorName = record.Name
		}
		offerings = append(offerings, offering)
	}
	return offerings
}

// UniversityPairs renders up to limit "institution department" labels from a
// record's offerings, for use as examples in list output.
func UniversityPairs(record *core.ProgramRecord, limit int) []string {
	offerings := Offerings(record)
	if limit > 0 && len(offerings) > limit {
		offerings = offerings[:limit]
	}

	pairs := make([]string, 0, len(offerings))
	for _, offering := range offerings {
		label := strings.TrimSpace(offering.Institution + " " + offering.Department)
		if label != "" {
			pairs = append(pairs, label)
		}
	}
	return core.DedupPreserveOrder(pairs)
}
