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


package badger

import "github.com/majormentor/unigo/storage"

// NewMemoryCatalog creates in-memory program, institution and doc
// repositories for testing.
// Caller must close the repositories and the backend when done.
func NewMemoryCatalog() (storage.ProgramRepository, storage.InstitutionRepository, storage.DocRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	programs, err := NewProgramRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, nil, err
	}

	institutions, err := NewInstitutionRepository(backend)
	if err != nil {
		programs.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	docs, err := NewDocRepository(backend)
	if err != nil {
		institutions.Close()
		programs.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	return programs, institutions, docs, backend, nil
}
