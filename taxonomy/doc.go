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


// Package taxonomy holds the two-level category map used to expand broad
// queries into fine-grained search tokens.
//
// The taxonomy maps a broad category label ("공학계열") to an ordered list of
// sub-category strings, each itself a slash/comma-joined composite of finer
// keywords ("컴퓨터 / 소프트웨어 / 인공지능"). A Taxonomy is loaded once during
// process initialization, is immutable afterwards, and is safe for unlimited
// concurrent reads.
package taxonomy
