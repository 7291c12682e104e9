package core

import (
	"encoding/binary"
	"encoding/json"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog entities.
// It is derived from stable source identifiers using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DocType identifies which document of a program a vector search hit came from.
type DocType uint8

const (
	// DocSummary is the program summary document.
	DocSummary DocType = iota + 1
	// DocSubjects is the document built from the program's core subject list.
	DocSubjects
	// DocJobs is the document built from the program's career text.
	DocJobs
)

// String returns the document type label used in logs and stored keys.
func (d DocType) String() string {
	switch d {
	case DocSummary:
		return "summary"
	case DocSubjects:
		return "subjects"
	case DocJobs:
		return "jobs"
	}
	return "unknown"
}

// ProgramRecord is one academic-program catalog entry.
//
// Scalar fields are fully typed. The nested payloads keep the JSON they
// arrived with from the source catalog: their shapes drift between records
// (key misspellings, string-or-list fields, HTML in descriptions), so they
// are decoded tolerantly by the extract package rather than at load time.
type ProgramRecord struct {
	Id        ID
	ProgramID string // stable source key, unique across the catalog
	Name      string // display name, primary identity for exact match
	Aliases   []string
	Summary   string
	Interests string
	JobText   string // free text, comma/slash/newline separated job names

	Qualifications json.RawMessage // string or list in the source data
	CareerFields   json.RawMessage // [{category, description}, ...]
	Activities     json.RawMessage // [{act_name, act_description}, ...]
	Subjects       json.RawMessage // [{SBJECT_NM, SBJECT_SUMRY}, ...] with key drift
	Offerings      json.RawMessage // [{schoolName, campus_nm, majorName, area, schoolURL}, ...]
	ChartData      json.RawMessage // chart blob holding gender ratio and satisfaction
	Salary         json.RawMessage // monthly amount, number or numeric string

	EmploymentRate float64
	AcceptanceRate float64
}

// InstitutionRecord identifies one institution in the admission directory.
type InstitutionRecord struct {
	Name string // unique display name, may carry a bracketed campus suffix
	Code string
	URL  string // admission info page
}

// SearchHit is a single nearest-neighbor hit from the vector index.
// Hits are transient: they are aggregated per program id and discarded.
type SearchHit struct {
	Program ID
	Doc     DocType
	Score   float32
}

// Candidate is a scored department-name suggestion.
type Candidate struct {
	Name  string
	Score float64
}
