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


// Package extract pulls structured fields out of the heterogeneous JSON
// payloads carried by program records.
//
// The source catalog is messy: keys are misspelled ("gradeuate"), the same
// field appears under two naming conventions (SBJECT_NM vs subject_name,
// campus_nm vs campusNm), string fields sometimes arrive as lists, and
// descriptions contain HTML fragments. Every extractor here is defensive:
// a missing or malformed payload yields an empty result, never an error,
// so one bad field can never abort processing of a record.
package extract
