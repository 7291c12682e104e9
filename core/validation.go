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


package core

import "fmt"

// ValidateProgram validates a ProgramRecord according to domain rules.
//
// Validation rules:
//   - ProgramID must not be empty (it is the only field safe for deduplication)
//   - Name must not be empty
//
// NOT validated (heterogeneous source payloads):
//   - Nested JSON fields (parsed tolerantly by the extract package)
//   - Id (derived from ProgramID when stored)
func ValidateProgram(record *ProgramRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidProgram)
	}

	if record.ProgramID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProgram, ErrEmptyProgramID)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProgram, ErrEmptyProgramName)
	}

	return nil
}

// ValidateInstitution validates an InstitutionRecord according to domain rules.
func ValidateInstitution(record *InstitutionRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidInstitution)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInstitution, ErrEmptyInstitutionName)
	}

	return nil
}
