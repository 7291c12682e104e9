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


// Package storage provides the storage abstraction layer for the program
// catalog.
//
// This package defines repository interfaces that decouple storage
// implementation from the resolution logic. The resolver and matcher only
// see these interfaces; the BadgerDB implementation lives in storage/badger
// and alternative backends can be substituted without touching callers.
//
// # Constructor Return Type Pattern
//
// Public constructors in implementation packages return these interfaces
// rather than concrete types:
//
//	programs, err := badger.NewProgramRepository(backend)  // storage.ProgramRepository
//
// This keeps consumers decoupled from BadgerDB specifics and lets tests use
// in-memory repositories without modification.
//
// # Repositories
//
//   - ProgramRepository: the program catalog (exact, alias, substring and
//     batch lookups; the catalog is read-only from the resolver's side)
//   - InstitutionRepository: the institution admission directory
//   - DocRepository: embedded per-program documents and nearest-neighbor
//     queries over them
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific timeout
// requirements.
package storage
