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


// Package match verifies institution/department pairs against the catalog.
//
// A department a user names often exists at the institution under a
// different administrative label. The matcher resolves the institution
// (exactly, then fuzzily), checks the institution's own department labels,
// suggests near-misses by combined edit-distance and containment score,
// and as a last resort searches the whole catalog for the department to
// recover the label the institution actually uses.
package match
