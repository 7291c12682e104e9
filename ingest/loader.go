package ingest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/majormentor/unigo/core"
)

// sourceProgram mirrors one entry of the source catalog file. The nested
// payloads stay raw; the extract package decodes them on demand.
type sourceProgram struct {
	MajorID           string          `json:"major_id"`
	MajorName         string          `json:"major_name"`
	Summary           string          `json:"summary"`
	Interest          string          `json:"interest"`
	Job               string          `json:"job"`
	DepartmentAliases []string        `json:"department_aliases"`
	EnterField        json.RawMessage `json:"enter_field"`
	CareerAct         json.RawMessage `json:"career_act"`
	Qualifications    json.RawMessage `json:"qualifications"`
	MainSubject       json.RawMessage `json:"main_subject"`
	University        json.RawMessage `json:"university"`
	ChartData         json.RawMessage `json:"chart_data"`
	Salary            json.RawMessage `json:"salary"`
	EmploymentRate    json.RawMessage `json:"employment_rate"`
	AcceptanceRate    json.RawMessage `json:"acceptance_rate"`
}

// sourceInstitution mirrors one entry of the institution directory file.
type sourceInstitution struct {
	University string `json:"university"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	URL        string `json:"url"`
}

// LoadPrograms reads the program catalog file. Entries missing an id or a
// name are skipped with a warning; a broken file is an error.
func LoadPrograms(path string, logger *slog.Logger) ([]*core.ProgramRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program catalog: %w", err)
	}

	var sources []sourceProgram
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("parsing program catalog: %w", err)
	}

	records := make([]*core.ProgramRecord, 0, len(sources))
	for _, src := range sources {
		if strings.TrimSpace(src.MajorID) == "" || strings.TrimSpace(src.MajorName) == "" {
			logger.Warn("skipping program entry without id or name",
				"id", src.MajorID, "name", src.MajorName)
			continue
		}
		records = append(records, &core.ProgramRecord{
			ProgramID:      src.MajorID,
			Name:           src.MajorName,
			Aliases:        src.DepartmentAliases,
			Summary:        src.Summary,
			Interests:      src.Interest,
			JobText:        src.Job,
			Qualifications: src.Qualifications,
			CareerFields:   src.EnterField,
			Activities:     src.CareerAct,
			Subjects:       src.MainSubject,
			Offerings:      src.University,
			ChartData:      src.ChartData,
			Salary:         src.Salary,
			EmploymentRate: parseRate(src.EmploymentRate),
			AcceptanceRate: parseRate(src.AcceptanceRate),
		})
	}

	logger.Info("program catalog loaded", "path", path, "programs", len(records))
	return records, nil
}

// LoadInstitutions reads the institution directory file. Entries without a
// name are skipped.
func LoadInstitutions(path string, logger *slog.Logger) ([]*core.InstitutionRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading institution directory: %w", err)
	}

	var sources []sourceInstitution
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("parsing institution directory: %w", err)
	}

	records := make([]*core.InstitutionRecord, 0, len(sources))
	for _, src := range sources {
		name := strings.TrimSpace(src.University)
		if name == "" {
			name = strings.TrimSpace(src.Name)
		}
		if name == "" {
			logger.Warn("skipping institution entry without name", "code", src.Code)
			continue
		}
		records = append(records, &core.InstitutionRecord{
			Name: name,
			Code: src.Code,
			URL:  src.URL,
		})
	}

	logger.Info("institution directory loaded", "path", path, "institutions", len(records))
	return records, nil
}

// parseRate reads a percentage that arrives as either a number or a numeric
// string; anything else counts as absent.
func parseRate(raw json.RawMessage) float64 {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return 0
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err == nil {
		return value
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return value
}
